package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"

	_ "github.com/sbilibin2017/gw-vacancies/docs"
	"github.com/sbilibin2017/gw-vacancies/internal/handlers"
	"github.com/sbilibin2017/gw-vacancies/internal/health"
	"github.com/sbilibin2017/gw-vacancies/internal/logger"
	"github.com/sbilibin2017/gw-vacancies/internal/middlewares"
	"github.com/sbilibin2017/gw-vacancies/internal/scheduler"
	"github.com/sbilibin2017/gw-vacancies/internal/services"
)

const (
	healthInterval  = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

// run starts the HTTP API, the gRPC health server and the schedulers,
// and blocks until a shutdown signal arrives.
func run(ctx context.Context, cfg appConfig) error {
	db, err := openPostgres(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	rdb, err := openRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer rdb.Close()

	// Services
	authService := newAuthService(cfg, db, rdb)
	vacancyService := newVacancyService(cfg, db)

	orchestrator, closePublisher, err := newOrchestrator(cfg, db)
	if err != nil {
		return err
	}
	defer func() {
		if err := closePublisher(); err != nil {
			logger.Log.Errorw("failed to close publisher", "err", err)
		}
	}()

	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Schedulers
	sched := scheduler.New(orchestrator, vacancyService, cfg.IngestSchedule, cfg.CleanupSchedule, schedulerOptions(cfg)...)
	if err := sched.Start(ctxShutdown); err != nil {
		return err
	}
	defer sched.Stop()

	// Health
	monitor := health.NewMonitor(buildVersion, healthInterval, map[string]health.Check{
		"postgres": db.PingContext,
		"redis": func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		},
	})
	go monitor.Run(ctxShutdown)

	grpcServer := grpc.NewServer()
	monitor.Register(grpcServer)

	router := newRouter(cfg, routerDeps{
		auth:      authService,
		vacancies: vacancyService,
		monitor:   monitor,
		txMiddle:  middlewares.TxMiddleware(db),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: router,
	}

	errChan := make(chan error, 2)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.AppHost, cfg.GRPCPort)
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			errChan <- fmt.Errorf("gRPC listen failed: %w", err)
			return
		}
		logger.Log.Infof("gRPC health server listening on %s", addr)
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcServer.GracefulStop()

	logger.Log.Info("servers stopped")
	return serveErr
}

func schedulerOptions(cfg appConfig) []scheduler.Option {
	var opts []scheduler.Option
	if len(cfg.IngestSources) > 0 {
		opts = append(opts, scheduler.WithSources(cfg.IngestSources...))
	}
	if cfg.IngestOnStart {
		opts = append(opts, scheduler.WithRunOnStart())
	}
	return opts
}

type routerDeps struct {
	auth      *services.AuthService
	vacancies *services.VacancyService
	monitor   *health.Monitor
	txMiddle  func(http.Handler) http.Handler
}

func newRouter(cfg appConfig, deps routerDeps) chi.Router {
	tokenGetter := func(ctx context.Context) (string, bool) {
		id, ok := middlewares.IdentityFromContext(ctx)
		return id.Token, ok
	}
	isAuthenticated := func(ctx context.Context) bool {
		_, ok := middlewares.IdentityFromContext(ctx)
		return ok
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/health", deps.monitor.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(deps.auth))

		handlers.RegisterPublicVacancyHandlers(r,
			handlers.NewListPublicVacanciesHandler(deps.vacancies),
			handlers.NewGetPublicVacancyHandler(deps.vacancies),
			handlers.NewCreatePublicVacancyHandler(deps.vacancies),
		)
		handlers.RegisterSearchVacanciesHandler(r,
			handlers.NewSearchVacanciesHandler(deps.vacancies, isAuthenticated),
		)
		handlers.RegisterAuthHandlers(r,
			handlers.NewLoginHandler(deps.auth),
			handlers.NewLogoutHandler(deps.auth, tokenGetter),
			handlers.NewResetPasswordHandler(deps.auth),
			middlewares.RequireAuthenticated,
		)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAuthenticated)
			handlers.RegisterPrivateVacancyHandlers(r, handlers.PrivateVacancyHandlers{
				List:    handlers.NewListPrivateVacanciesHandler(deps.vacancies),
				Get:     handlers.NewGetPrivateVacancyHandler(deps.vacancies),
				Create:  handlers.NewCreatePrivateVacancyHandler(deps.vacancies),
				Replace: handlers.NewReplaceVacancyHandler(deps.vacancies),
				Patch:   handlers.NewPatchVacancyHandler(deps.vacancies),
				Delete:  handlers.NewDeleteVacancyHandler(deps.vacancies),
			}, deps.txMiddle)
		})
	})

	return r
}
