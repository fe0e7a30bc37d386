package throwlog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/throwlab/backend/internal/auth"
	"github.com/throwlab/backend/internal/telemetry/tracing"
	"github.com/throwlab/backend/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	defaultWindowDays    = 30
	reportCacheExpireSec = 60
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=throwlog_test

type analyzer interface {
	DailyBest(ctx context.Context, params FilterParams) (_ []DailyBestEntry, err error)
	FoulHistogram(ctx context.Context, params FilterParams) (_ map[FoulReason]int, err error)
	WeeklyVolume(ctx context.Context, params FilterParams) (_ []WeeklyVolumeEntry, err error)
	Summary(ctx context.Context, params FilterParams) (_ *Summary, err error)
	Report(ctx context.Context, params FilterParams) (_ *Report, err error)
}

type handlerRepo interface {
	ListAll(ctx context.Context, params ListParams) (_ []ThrowLog, err error)
	Count(ctx context.Context, params ListParams) (_ int, err error)
}

type ListResponse struct {
	Throws []ThrowLog `json:"throws"`
	Total  int        `json:"total"`
}

type Handler struct {
	analyzer analyzer
	repo     handlerRepo
	cache    *freecache.Cache
}

func NewHandler(analyzer analyzer, repo handlerRepo, cache *freecache.Cache) *Handler {
	return &Handler{
		analyzer: analyzer,
		repo:     repo,
		cache:    cache,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/report", handler.HandleReport).Methods("GET", "OPTIONS").Name("throwlog-report")
	router.HandleFunc("/report/summary", handler.HandleSummary).Methods("GET", "OPTIONS").Name("throwlog-summary")
	router.HandleFunc("/report/daily-best", handler.HandleDailyBest).Methods("GET", "OPTIONS").Name("throwlog-daily-best")
	router.HandleFunc("/report/fouls", handler.HandleFoulHistogram).Methods("GET", "OPTIONS").Name("throwlog-fouls")
	router.HandleFunc("/report/weekly-volume", handler.HandleWeeklyVolume).Methods("GET", "OPTIONS").Name("throwlog-weekly-volume")
	router.HandleFunc("/list", handler.HandleList).Methods("GET", "OPTIONS").Name("throwlog-list")
}

// filterParams reads the report filters from query params. Athletes are
// always scoped to their own logs, regardless of the athleteId param.
func filterParams(r *http.Request) (FilterParams, error) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		return FilterParams{}, fmt.Errorf("no actor in request context")
	}

	params := FilterParams{
		AthleteID:  r.URL.Query().Get("athleteId"),
		WindowDays: defaultWindowDays,
	}
	if actor.Role == auth.RoleAthlete {
		params.AthleteID = actor.ID
	}

	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		days, err := strconv.Atoi(daysParam)
		if err != nil || days < 0 {
			return FilterParams{}, fmt.Errorf("invalid days param: %s", daysParam)
		}
		params.WindowDays = days
	}

	return params, nil
}

func (handler *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.throwlog.report")
	defer span.End()

	params, err := filterParams(r)
	if err != nil {
		http.Error(w, "invalid report params", http.StatusBadRequest)
		return
	}

	cacheKey := []byte(fmt.Sprintf("report||%s||%d", params.AthleteID, params.WindowDays))
	if cached, err := handler.cache.Get(cacheKey); err == nil {
		log.Tracef("report cache hit: %s", cacheKey)
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	report, err := handler.analyzer.Report(ctx, params)
	if err != nil {
		log.Errorf("get throw report: %s", err)
		http.Error(w, "get report failed", http.StatusInternalServerError)
		return
	}

	reportJson, err := json.Marshal(report)
	if err != nil {
		log.Errorf("marshal throw report: %s", err)
		http.Error(w, "get report failed", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set(cacheKey, reportJson, reportCacheExpireSec); err != nil {
		log.Errorf("cache throw report: %s", err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, reportJson)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.throwlog.summary")
	defer span.End()

	params, err := filterParams(r)
	if err != nil {
		http.Error(w, "invalid report params", http.StatusBadRequest)
		return
	}

	summary, err := handler.analyzer.Summary(ctx, params)
	if err != nil {
		log.Errorf("get throw summary: %s", err)
		http.Error(w, "get summary failed", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal throw summary: %s", err)
		http.Error(w, "get summary failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, summaryJson)
}

func (handler *Handler) HandleDailyBest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.throwlog.dailyBest")
	defer span.End()

	params, err := filterParams(r)
	if err != nil {
		http.Error(w, "invalid report params", http.StatusBadRequest)
		return
	}

	entries, err := handler.analyzer.DailyBest(ctx, params)
	if err != nil {
		log.Errorf("get daily best: %s", err)
		http.Error(w, "get daily best failed", http.StatusInternalServerError)
		return
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("marshal daily best: %s", err)
		http.Error(w, "get daily best failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, entriesJson)
}

func (handler *Handler) HandleFoulHistogram(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.throwlog.foulHistogram")
	defer span.End()

	params, err := filterParams(r)
	if err != nil {
		http.Error(w, "invalid report params", http.StatusBadRequest)
		return
	}

	histogram, err := handler.analyzer.FoulHistogram(ctx, params)
	if err != nil {
		log.Errorf("get foul histogram: %s", err)
		http.Error(w, "get foul histogram failed", http.StatusInternalServerError)
		return
	}

	histogramJson, err := json.Marshal(histogram)
	if err != nil {
		log.Errorf("marshal foul histogram: %s", err)
		http.Error(w, "get foul histogram failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, histogramJson)
}

func (handler *Handler) HandleWeeklyVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.throwlog.weeklyVolume")
	defer span.End()

	params, err := filterParams(r)
	if err != nil {
		http.Error(w, "invalid report params", http.StatusBadRequest)
		return
	}

	entries, err := handler.analyzer.WeeklyVolume(ctx, params)
	if err != nil {
		log.Errorf("get weekly volume: %s", err)
		http.Error(w, "get weekly volume failed", http.StatusInternalServerError)
		return
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("marshal weekly volume: %s", err)
		http.Error(w, "get weekly volume failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, entriesJson)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.throwlog.list")
	defer span.End()

	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	params := ListParams{
		AthleteID: r.URL.Query().Get("athleteId"),
		SessionID: r.URL.Query().Get("sessionId"),
		DrillID:   r.URL.Query().Get("drillId"),
	}
	if actor.Role == auth.RoleAthlete {
		params.AthleteID = actor.ID
	}

	throwLogs, err := handler.repo.ListAll(ctx, params)
	if err != nil {
		log.Errorf("list throw logs: %s", err)
		http.Error(w, "list throw logs failed", http.StatusInternalServerError)
		return
	}

	total, err := handler.repo.Count(ctx, params)
	if err != nil {
		log.Errorf("count throw logs: %s", err)
		http.Error(w, "list throw logs failed", http.StatusInternalServerError)
		return
	}

	throwLogsJson, err := json.Marshal(ListResponse{
		Throws: throwLogs,
		Total:  total,
	})
	if err != nil {
		log.Errorf("marshal throw logs: %s", err)
		http.Error(w, "list throw logs failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, throwLogsJson)
}
