package training

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/throwlab/backend/internal/auth"
	"github.com/throwlab/backend/internal/telemetry/tracing"
	"github.com/throwlab/backend/internal/throwlog"
	"github.com/throwlab/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=training_test

type trainingService interface {
	CreateSession(ctx context.Context, actor auth.Actor, session TrainingSession) (_ *TrainingSession, err error)
	GetSession(ctx context.Context, actor auth.Actor, id string) (_ *TrainingSession, err error)
	ListSessions(ctx context.Context, actor auth.Actor, params ListSessionsParams) (_ []TrainingSession, err error)
	LogThrow(ctx context.Context, actor auth.Actor, sessionID string, throwLog throwlog.ThrowLog) (_ *throwlog.ThrowLog, err error)
	CompleteSession(ctx context.Context, actor auth.Actor, sessionID string, sessionRPE int, notes string, throws []CompletedThrow) (_ *CompletionPayload, err error)
	CancelSession(ctx context.Context, actor auth.Actor, sessionID string) (err error)
}

type Handler struct {
	service trainingService
}

func NewHandler(service trainingService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", handler.HandleCreate).Methods("POST", "OPTIONS").Name("session-create")
	router.HandleFunc("", handler.HandleList).Methods("GET", "OPTIONS").Name("session-list")
	router.HandleFunc("/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("session-get")
	router.HandleFunc("/{id}/log", handler.HandleCompleteSession).Methods("POST", "OPTIONS").Name("session-log")
	router.HandleFunc("/{id}/throw", handler.HandleLogThrow).Methods("POST", "OPTIONS").Name("session-throw")
	router.HandleFunc("/{id}/cancel", handler.HandleCancel).Methods("POST", "OPTIONS").Name("session-cancel")
}

type NewDrillRequest struct {
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	ImplementWeight string  `json:"implementWeight"`
	TargetReps      int     `json:"targetReps"`
	Notes           *string `json:"notes"`
}

type NewSessionRequest struct {
	AthleteID   string            `json:"athleteId"`
	Title       string            `json:"title"`
	ScheduledAt time.Time         `json:"scheduledAt"`
	Drills      []NewDrillRequest `json:"drills"`
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.create")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req NewSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("new session, unmarshal json params: %s", err)
		http.Error(w, "create session failed", http.StatusBadRequest)
		return
	}

	if req.AthleteID == "" || req.Title == "" {
		http.Error(w, "error, athlete id and title are required", http.StatusBadRequest)
		return
	}

	session := TrainingSession{
		AthleteID:   req.AthleteID,
		Title:       req.Title,
		ScheduledAt: req.ScheduledAt,
	}
	for _, drill := range req.Drills {
		session.Drills = append(session.Drills, Drill{
			Name:            drill.Name,
			Type:            DrillType(drill.Type),
			ImplementWeight: drill.ImplementWeight,
			TargetReps:      drill.TargetReps,
			Notes:           drill.Notes,
		})
	}

	created, err := handler.service.CreateSession(ctx, actor, session)
	if err != nil {
		writeServiceError(w, "create session", err)
		return
	}

	sessionJson, err := json.Marshal(created)
	if err != nil {
		log.Errorf("marshal created session: %s", err)
		http.Error(w, "create session failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new session created: %s", created.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.list")
	defer span.End()

	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	sessions, err := handler.service.ListSessions(ctx, actor, ListSessionsParams{
		Status: r.URL.Query().Get("status"),
	})
	if err != nil {
		writeServiceError(w, "list sessions", err)
		return
	}

	sessionsJson, err := json.Marshal(sessions)
	if err != nil {
		log.Errorf("marshal sessions: %s", err)
		http.Error(w, "list sessions failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, sessionsJson)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.get")
	defer span.End()

	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	session, err := handler.service.GetSession(ctx, actor, id)
	if err != nil {
		writeServiceError(w, "get session", err)
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("marshal session: %s", err)
		http.Error(w, "get session failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, sessionJson)
}

type CompleteSessionRequest struct {
	SessionRPE int              `json:"sessionRPE"`
	Notes      string           `json:"notes"`
	Throws     []CompletedThrow `json:"throws"`
}

func (handler *Handler) HandleCompleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.completeSession")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var req CompleteSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("complete session, unmarshal json params: %s", err)
		http.Error(w, "complete session failed", http.StatusBadRequest)
		return
	}

	payload, err := handler.service.CompleteSession(ctx, actor, id, req.SessionRPE, req.Notes, req.Throws)
	if err != nil {
		writeServiceError(w, "complete session", err)
		return
	}

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal completion payload: %s", err)
		http.Error(w, "complete session failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("session completed: %s", id)
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, payloadJson)
}

type LogThrowRequest struct {
	DrillID     string               `json:"drillId"`
	ThrowNumber int                  `json:"throwNumber"`
	Distance    *float64             `json:"distance"`
	IsFoul      bool                 `json:"isFoul"`
	FoulReason  *throwlog.FoulReason `json:"foulReason"`
	Notes       *string              `json:"notes"`
}

func (handler *Handler) HandleLogThrow(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.logThrow")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var req LogThrowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("log throw, unmarshal json params: %s", err)
		http.Error(w, "log throw failed", http.StatusBadRequest)
		return
	}

	if req.DrillID == "" || req.ThrowNumber < 1 {
		http.Error(w, "error, drill id and throw number are required", http.StatusBadRequest)
		return
	}
	if req.FoulReason != nil && !req.FoulReason.IsValid() {
		http.Error(w, "error, invalid foul reason", http.StatusBadRequest)
		return
	}

	added, err := handler.service.LogThrow(ctx, actor, id, throwlog.ThrowLog{
		DrillID:     req.DrillID,
		ThrowNumber: req.ThrowNumber,
		Distance:    req.Distance,
		IsFoul:      req.IsFoul,
		FoulReason:  req.FoulReason,
		Notes:       req.Notes,
	})
	if err != nil {
		writeServiceError(w, "log throw", err)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal logged throw: %s", err)
		http.Error(w, "log throw failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.cancel")
	defer span.End()

	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.service.CancelSession(ctx, actor, id); err != nil {
		writeServiceError(w, "cancel session", err)
		return
	}

	log.Debugf("session cancelled: %s", id)
	w.WriteHeader(http.StatusNoContent)
}

func writeServiceError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, ErrForbidden):
		http.Error(w, action+" failed - not allowed", http.StatusForbidden)
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, action+" failed - not found", http.StatusNotFound)
	case errors.Is(err, ErrSessionIncomplete),
		errors.Is(err, ErrInvalidRPE),
		errors.Is(err, ErrFoulReasonMissing),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrAthleteNotLinked),
		errors.Is(err, ErrNoDrills),
		errors.Is(err, ErrInvalidDrill),
		errors.Is(err, ErrThrowLimitReached):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", action, err)
		http.Error(w, action+" failed", http.StatusInternalServerError)
	}
}
