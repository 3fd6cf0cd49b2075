package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/trainingtracker/internal/config"
	"github.com/2beens/trainingtracker/internal/db"
	"github.com/2beens/trainingtracker/internal/middleware"
	"github.com/2beens/trainingtracker/internal/telemetry/metrics"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"
	"github.com/2beens/trainingtracker/internal/training/catalog"
	"github.com/2beens/trainingtracker/internal/training/goals"
	"github.com/2beens/trainingtracker/internal/training/history"
	"github.com/2beens/trainingtracker/internal/training/logs"
	"github.com/2beens/trainingtracker/internal/training/profiles"
	"github.com/2beens/trainingtracker/internal/training/programs"
	"github.com/2beens/trainingtracker/internal/training/records"
	"github.com/2beens/trainingtracker/internal/training/stats"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"
)

// largest accepted request body, a full 8 week log fill is well below it
const maxRequestBodyBytes = 1 << 20

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	analyticsCache   *stats.Cache
	muscleGroupCache *catalog.MuscleGroupCache

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	DBPassword              string
	RedisPassword           string
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
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}
	if err := db.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	catalogRepo := catalog.NewRepo(dbPool)
	seeded, err := catalogRepo.Seed(ctx, catalog.DefaultExercises)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("seed exercise catalog: %w", err)
	}
	log.Debugf("exercise catalog seeded with %d exercises", seeded)

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("training", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0,
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "training-service", rdb)
	if err != nil {
		if closeErr := closeStores(dbPool, rdb); closeErr != nil {
			log.Errorf("failed to release stores: %s", closeErr)
		}
		return nil, fmt.Errorf("tracing setup: %w", err)
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		redisClient: rdb,

		analyticsCache: stats.NewCache(rdb, params.Config.AnalyticsCacheTTL.Duration),
		muscleGroupCache: catalog.NewMuscleGroupCache(
			catalogRepo,
			params.Config.CatalogCacheSizeMB,
			params.Config.MuscleGroupCacheTTL.Duration,
		),

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("training-router"))

	profilesRepo := profiles.NewRepo(s.dbPool)
	profilesHandler := profiles.NewHandler(profilesRepo, s.analyticsCache)
	r.HandleFunc("/profiles", profilesHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-profile")
	r.HandleFunc("/profiles", profilesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-profiles")
	r.HandleFunc("/profiles/{id}", profilesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profiles/{id}", profilesHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-profile")
	r.HandleFunc("/profiles/{id}", profilesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-profile")

	catalogHandler := catalog.NewHandler(catalog.NewRepo(s.dbPool), s.muscleGroupCache, s.analyticsCache)
	r.HandleFunc("/exercises", catalogHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises", catalogHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercises/{id}", catalogHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")

	logsRepo := logs.NewRepo(s.dbPool)
	logsHandler := logs.NewHandler(logsRepo, s.analyticsCache)
	r.HandleFunc("/profiles/{id}/logs", logsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-log")
	r.HandleFunc("/profiles/{id}/logs", logsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-logs")
	r.HandleFunc("/profiles/{id}/exercises", logsHandler.HandleExercises).Methods("GET", "OPTIONS").Name("list-profile-exercises")
	r.HandleFunc("/logs/{id}/entry", logsHandler.HandleSetEntry).Methods("PUT", "OPTIONS").Name("set-log-entry")
	r.HandleFunc("/logs/{id}/fill", logsHandler.HandleFill).Methods("POST", "OPTIONS").Name("fill-log")
	r.HandleFunc("/logs/{id}", logsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-log")

	statsService := stats.NewService(profilesRepo, logsRepo, s.muscleGroupCache, s.analyticsCache, s.metricsManager)
	statsHandler := stats.NewHandler(statsService, s.metricsManager)
	r.HandleFunc("/profiles/{id}/analytics", statsHandler.HandleAnalytics).Methods("GET", "OPTIONS").Name("get-analytics")
	r.HandleFunc("/profiles/{id}/charts", statsHandler.HandleCharts).Methods("GET", "OPTIONS").Name("get-charts")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	oneRMRouter := r.PathPrefix("/onerm").Subrouter()
	oneRMRouter.HandleFunc("/calculate", statsHandler.HandleCalculateOneRM).Methods("POST", "OPTIONS").Name("calculate-onerm")
	oneRMRouter.Use(middleware.RateLimit(
		reqRateLimiter,
		"onerm-calculate",
		s.config.OneRMRateLimitAllowedPerMin,
		s.metricsManager,
	))

	programsHandler := programs.NewHandler(programs.NewRepo(s.dbPool))
	r.HandleFunc("/programs", programsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-program")
	r.HandleFunc("/profiles/{id}/programs", programsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-programs")
	r.HandleFunc("/programs/{id}", programsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-program")
	r.HandleFunc("/programs/{id}", programsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-program")
	r.HandleFunc("/programs/{id}", programsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-program")
	r.HandleFunc("/programs/{id}/activate", programsHandler.HandleActivate).Methods("POST", "OPTIONS").Name("activate-program")
	r.HandleFunc("/programs/{id}/exercises", programsHandler.HandleAddExercise).Methods("POST", "OPTIONS").Name("new-program-exercise")
	r.HandleFunc("/programs/{id}/exercises", programsHandler.HandleListExercises).Methods("GET", "OPTIONS").Name("list-program-exercises")
	r.HandleFunc("/programs/{id}/exercises/{exid}", programsHandler.HandleUpdateExercise).Methods("PUT", "OPTIONS").Name("update-program-exercise")
	r.HandleFunc("/programs/{id}/exercises/{exid}", programsHandler.HandleDeleteExercise).Methods("DELETE", "OPTIONS").Name("delete-program-exercise")
	r.HandleFunc("/programs/{id}/plan", programsHandler.HandlePlan).Methods("GET", "OPTIONS").Name("get-plan")
	r.HandleFunc("/programs/{id}/plan-days", programsHandler.HandlePlanDays).Methods("GET", "OPTIONS").Name("get-plan-days")
	r.HandleFunc("/programs/{id}/sessions", programsHandler.HandleUpsertSession).Methods("PUT", "OPTIONS").Name("upsert-session")
	r.HandleFunc("/programs/{id}/sessions", programsHandler.HandleListSessions).Methods("GET", "OPTIONS").Name("list-sessions")
	r.HandleFunc("/programs/{id}/sessions/{date}", programsHandler.HandleDeleteSession).Methods("DELETE", "OPTIONS").Name("delete-session")

	goalsHandler := goals.NewHandler(goals.NewRepo(s.dbPool))
	r.HandleFunc("/profiles/{id}/goals", goalsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-goal")
	r.HandleFunc("/profiles/{id}/goals", goalsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-goals")
	r.HandleFunc("/goals/{id}/progress", goalsHandler.HandleUpdateProgress).Methods("PUT", "OPTIONS").Name("update-goal-progress")
	r.HandleFunc("/goals/{id}", goalsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-goal")
	r.HandleFunc("/goals/{id}", goalsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-goal")

	recordsHandler := records.NewHandler(records.NewRepo(s.dbPool))
	r.HandleFunc("/profiles/{id}/records", recordsHandler.HandleAddRecord).Methods("POST", "OPTIONS").Name("new-record")
	r.HandleFunc("/profiles/{id}/records", recordsHandler.HandleListRecords).Methods("GET", "OPTIONS").Name("list-records")
	r.HandleFunc("/profiles/{id}/records/{recordId}", recordsHandler.HandleDeleteRecord).Methods("DELETE", "OPTIONS").Name("delete-record")
	r.HandleFunc("/profiles/{id}/body-weight", recordsHandler.HandleUpsertBodyWeight).Methods("PUT", "OPTIONS").Name("upsert-body-weight")
	r.HandleFunc("/profiles/{id}/body-weight", recordsHandler.HandleListBodyWeight).Methods("GET", "OPTIONS").Name("list-body-weight")
	r.HandleFunc("/profiles/{id}/body-weight/{weightId}", recordsHandler.HandleUpdateBodyWeight).Methods("PUT", "OPTIONS").Name("update-body-weight")
	r.HandleFunc("/profiles/{id}/body-weight/{weightId}", recordsHandler.HandleDeleteBodyWeight).Methods("DELETE", "OPTIONS").Name("delete-body-weight")

	historyHandler := history.NewHandler(history.NewRepo(s.dbPool))
	r.HandleFunc("/profiles/{id}/sessions", historyHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-training-session")
	r.HandleFunc("/profiles/{id}/sessions/page/{page}/size/{size}", historyHandler.HandleList).Methods("GET", "OPTIONS").Name("list-training-sessions")
	r.HandleFunc("/profiles/{id}/sessions/{sessionId}", historyHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-training-session")
	r.HandleFunc("/profiles/{id}/sessions/{sessionId}", historyHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-training-session")
	r.HandleFunc("/profiles/{id}/sessions/{sessionId}", historyHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-training-session")
	r.HandleFunc("/profiles/{id}/sessions/{sessionId}/exercises", historyHandler.HandleAddExercise).Methods("POST", "OPTIONS").Name("new-session-exercise")
	r.HandleFunc("/profiles/{id}/sessions/{sessionId}/exercises/{position}", historyHandler.HandleUpdateExercise).Methods("PUT", "OPTIONS").Name("update-session-exercise")
	r.HandleFunc("/profiles/{id}/sessions/{sessionId}/exercises/{position}", historyHandler.HandleDeleteExercise).Methods("DELETE", "OPTIONS").Name("delete-session-exercise")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest(maxRequestBodyBytes))

	return r
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
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

func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var err error
	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown http server: %w", shutdownErr))
		}
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		if shutdownErr := s.metricsHttpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown metrics server: %w", shutdownErr))
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if closeErr := closeStores(s.dbPool, s.redisClient); closeErr != nil {
		err = multierr.Append(err, closeErr)
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	return err
}

// closeStores releases the redis client and the db pool, either may be nil.
func closeStores(dbPool *pgxpool.Pool, rdb *redis.Client) error {
	var err error
	if rdb != nil {
		if closeErr := rdb.Close(); closeErr != nil {
			err = fmt.Errorf("close redis client: %w", closeErr)
		}
	}

	if dbPool != nil {
		log.Debugln("closing db pool ...")
		dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	return err
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
