package training

import (
	"context"
	"errors"
	"fmt"

	"github.com/throwlab/backend/internal/auth"
	"github.com/throwlab/backend/internal/telemetry/metrics"
	"github.com/throwlab/backend/internal/telemetry/tracing"
	"github.com/throwlab/backend/internal/throwlog"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrForbidden         = errors.New("actor not allowed")
	ErrInvalidTransition = errors.New("invalid session status transition")
	ErrAthleteNotLinked  = errors.New("athlete not linked to coach")
	ErrInvalidDrill      = errors.New("invalid drill")
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=training_test

type sessionsRepo interface {
	Create(ctx context.Context, session TrainingSession) (_ *TrainingSession, err error)
	Get(ctx context.Context, id string) (_ *TrainingSession, err error)
	List(ctx context.Context, params ListSessionsParams) (_ []TrainingSession, err error)
	UpdateStatus(ctx context.Context, id string, status SessionStatus) (err error)
	Complete(ctx context.Context, id string, sessionRPE int, notes *string) (err error)
}

type throwLogsStore interface {
	Add(ctx context.Context, throwLog throwlog.ThrowLog) (_ *throwlog.ThrowLog, err error)
	GetForSession(ctx context.Context, sessionID string) (_ []throwlog.ThrowLog, err error)
	UpsertForSession(ctx context.Context, sessionID string, throwLogs []throwlog.ThrowLog) (err error)
	DeleteForSession(ctx context.Context, sessionID string) (deleted int64, err error)
}

type athleteLinks interface {
	LinkExists(ctx context.Context, coachID, athleteID string) (_ bool, err error)
}

type Service struct {
	repo      sessionsRepo
	throwLogs throwLogsStore
	links     athleteLinks
	metrics   *metrics.Manager
}

func NewService(
	repo sessionsRepo,
	throwLogs throwLogsStore,
	links athleteLinks,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:      repo,
		throwLogs: throwLogs,
		links:     links,
		metrics:   metricsManager,
	}
}

// CreateSession plans a new session for a linked athlete. Coach only.
func (s *Service) CreateSession(ctx context.Context, actor auth.Actor, session TrainingSession) (_ *TrainingSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.createSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !auth.Allowed(actor, auth.Resource{
		Type:      auth.ResourceTrainingSession,
		CoachID:   actor.ID,
		AthleteID: session.AthleteID,
	}, auth.ActionCreate) {
		return nil, ErrForbidden
	}
	session.CoachID = actor.ID

	linked, err := s.links.LinkExists(ctx, session.CoachID, session.AthleteID)
	if err != nil {
		return nil, fmt.Errorf("check athlete link: %w", err)
	}
	if !linked {
		return nil, ErrAthleteNotLinked
	}

	if len(session.Drills) == 0 {
		return nil, ErrNoDrills
	}
	for _, drill := range session.Drills {
		if drill.Name == "" || !drill.Type.IsValid() || drill.TargetReps < 1 {
			return nil, ErrInvalidDrill
		}
	}

	session.Status = StatusPlanned
	created, err := s.repo.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	span.SetAttributes(attribute.String("session.id", created.ID))
	return created, nil
}

func (s *Service) GetSession(ctx context.Context, actor auth.Actor, id string) (_ *TrainingSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.getSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !auth.Allowed(actor, auth.Resource{
		Type:      auth.ResourceTrainingSession,
		CoachID:   session.CoachID,
		AthleteID: session.AthleteID,
	}, auth.ActionRead) {
		return nil, ErrForbidden
	}

	return session, nil
}

// ListSessions returns the actor's sessions: all sessions planned by a
// coach, or all sessions of an athlete.
func (s *Service) ListSessions(ctx context.Context, actor auth.Actor, params ListSessionsParams) (_ []TrainingSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.listSessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	switch actor.Role {
	case auth.RoleCoach:
		params.CoachID = actor.ID
	case auth.RoleAthlete:
		params.AthleteID = actor.ID
	default:
		return nil, ErrForbidden
	}

	return s.repo.List(ctx, params)
}

// LogThrow records a single throw during a live session. The first
// logged throw moves a planned session to in progress.
func (s *Service) LogThrow(ctx context.Context, actor auth.Actor, sessionID string, throwLog throwlog.ThrowLog) (_ *throwlog.ThrowLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.logThrow")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID))

	session, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !auth.Allowed(actor, auth.Resource{
		Type:      auth.ResourceTrainingSession,
		CoachID:   session.CoachID,
		AthleteID: session.AthleteID,
	}, auth.ActionUpdate) {
		return nil, ErrForbidden
	}

	if session.Status != StatusPlanned && session.Status != StatusInProgress {
		return nil, ErrInvalidTransition
	}

	if session.Status == StatusPlanned {
		if err := s.repo.UpdateStatus(ctx, sessionID, StatusInProgress); err != nil {
			return nil, fmt.Errorf("update session status: %w", err)
		}
	}

	throwLog.SessionID = sessionID
	throwLog.AthleteID = session.AthleteID

	added, err := s.throwLogs.Add(ctx, throwLog)
	if err != nil {
		return nil, fmt.Errorf("add throw log: %w", err)
	}

	s.metrics.CounterThrowsLogged.Inc()
	return added, nil
}

// CompleteSession validates the submitted throws against the session
// plan and, if valid, atomically overwrites the persisted throw logs
// and marks the session completed. Re-completing a completed session
// overwrites its logs (idempotent). The payload is validated before
// any write, a failed persist leaves the session untouched.
func (s *Service) CompleteSession(
	ctx context.Context,
	actor auth.Actor,
	sessionID string,
	sessionRPE int,
	notes string,
	throws []CompletedThrow,
) (_ *CompletionPayload, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.completeSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID))

	session, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !auth.Allowed(actor, auth.Resource{
		Type:      auth.ResourceTrainingSession,
		CoachID:   session.CoachID,
		AthleteID: session.AthleteID,
	}, auth.ActionUpdate) {
		return nil, ErrForbidden
	}

	if !session.Status.CanTransitionTo(StatusCompleted) {
		return nil, ErrInvalidTransition
	}

	throwLogs := make([]throwlog.ThrowLog, 0, len(throws))
	for _, throw := range throws {
		throwLogs = append(throwLogs, throwlog.ThrowLog{
			SessionID:   sessionID,
			DrillID:     throw.DrillID,
			AthleteID:   session.AthleteID,
			ThrowNumber: throw.ThrowNumber,
			Distance:    throw.Distance,
			IsFoul:      throw.IsFoul,
			FoulReason:  throw.FoulReason,
			Notes:       throw.Notes,
		})
	}

	tracker, err := NewProgressTracker(session, throwLogs)
	if err != nil {
		return nil, err
	}
	payload, err := tracker.Finalize(sessionRPE, notes)
	if err != nil {
		return nil, err
	}

	// persist the finalized payload, its throw numbers are dense per drill
	finalLogs := make([]throwlog.ThrowLog, 0, len(payload.Throws))
	for _, throw := range payload.Throws {
		finalLogs = append(finalLogs, throwlog.ThrowLog{
			SessionID:   sessionID,
			DrillID:     throw.DrillID,
			AthleteID:   session.AthleteID,
			ThrowNumber: throw.ThrowNumber,
			Distance:    throw.Distance,
			IsFoul:      throw.IsFoul,
			FoulReason:  throw.FoulReason,
			Notes:       throw.Notes,
		})
	}

	if err := s.throwLogs.UpsertForSession(ctx, sessionID, finalLogs); err != nil {
		return nil, fmt.Errorf("upsert throw logs: %w", err)
	}
	if err := s.repo.Complete(ctx, sessionID, sessionRPE, payload.Notes); err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}

	s.metrics.CounterSessionsCompleted.Inc()
	s.metrics.CounterThrowsLogged.Add(float64(len(finalLogs)))

	return payload, nil
}

// CancelSession cancels a planned or in-progress session.
func (s *Service) CancelSession(ctx context.Context, actor auth.Actor, sessionID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.cancelSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID))

	session, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	if !auth.Allowed(actor, auth.Resource{
		Type:      auth.ResourceTrainingSession,
		CoachID:   session.CoachID,
		AthleteID: session.AthleteID,
	}, auth.ActionUpdate) {
		return ErrForbidden
	}

	if !session.Status.CanTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, sessionID, StatusCancelled); err != nil {
		return fmt.Errorf("update session status: %w", err)
	}

	// throws of a cancelled session must not leak into the reports
	deleted, err := s.throwLogs.DeleteForSession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("delete throw logs: %w", err)
	}
	if deleted > 0 {
		log.Debugf("session %s cancelled, %d throw logs discarded", sessionID, deleted)
	}

	s.metrics.CounterSessionsCancelled.Inc()
	return nil
}
