package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/throwlab/backend/internal/auth"
	"github.com/throwlab/backend/internal/config"
	"github.com/throwlab/backend/internal/db"
	"github.com/throwlab/backend/internal/middleware"
	"github.com/throwlab/backend/internal/telemetry/metrics"
	"github.com/throwlab/backend/internal/telemetry/tracing"
	"github.com/throwlab/backend/internal/throwlog"
	"github.com/throwlab/backend/internal/training"
	"github.com/throwlab/backend/internal/users"
	"github.com/throwlab/backend/internal/videos"
	"github.com/throwlab/backend/internal/workouts"
	"github.com/throwlab/backend/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/coocood/freecache"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

// 10 MB in-memory cache for throw log reports
const reportsCacheSize = 10 * 1024 * 1024

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config     *config.Config
	dbPool     *pgxpool.Pool
	videoStore *videos.DiskStore

	redisClient *redis.Client
	authService *auth.Service

	reportsCache *freecache.Cache

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	RedisPassword           string
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	promRegistry := metrics.SetupPrometheus()
	promRegistry.MustRegister(pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	))
	metricsManager := metrics.NewManager("throwlab", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "throwlab-backend", rdb)
	if err != nil {
		return nil, err
	}

	videoStore, err := videos.NewDiskStore(params.Config.VideosDiskRootPath)
	if err != nil {
		return nil, fmt.Errorf("new video disk store: %w", err)
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		videoStore:  videoStore,
		versionInfo: params.VersionInfo,

		redisClient: rdb,
		authService: authService,

		reportsCache: freecache.NewCache(reportsCacheSize),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("throwlab-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, "throwlab backend")
	}).Methods("GET").Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")

	usersRepo := users.NewRepo(s.dbPool)
	usersHandler := users.NewHandler(usersRepo, s.authService)

	// login goes through the rate limiter
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	authRouter := r.PathPrefix("/a").Subrouter()
	authRouter.Use(middleware.RateLimit(
		reqRateLimiter, "auth-router", s.config.LoginRateLimitAllowedPerMin,
	))
	usersHandler.SetupAuthRoutes(authRouter)
	usersHandler.SetupRoutes(r.PathPrefix("/users").Subrouter())

	throwLogsRepo := throwlog.NewRepo(s.dbPool)
	throwlogHandler := throwlog.NewHandler(
		throwlog.NewAnalyzer(throwLogsRepo),
		throwLogsRepo,
		s.reportsCache,
	)
	throwlogHandler.SetupRoutes(r.PathPrefix("/throws").Subrouter())

	trainingHandler := training.NewHandler(training.NewService(
		training.NewRepo(s.dbPool),
		throwLogsRepo,
		usersRepo,
		s.metricsManager,
	))
	trainingHandler.SetupRoutes(r.PathPrefix("/sessions").Subrouter())

	workoutsHandler := workouts.NewHandler(workouts.NewService(
		workouts.NewRepo(s.dbPool),
		usersRepo,
	))
	workoutsHandler.SetupRoutes(r.PathPrefix("/workouts").Subrouter())

	videosHandler := videos.NewHandler(
		videos.NewRepo(s.dbPool),
		s.videoStore,
		usersRepo,
		s.metricsManager,
	)
	videosHandler.SetupRoutes(r.PathPrefix("/videos").Subrouter())

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.authService)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(host, strconv.Itoa(s.config.PrometheusMetricsPort))
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
