package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/archiveone/bookingcore/internal/config"
	"github.com/archiveone/bookingcore/internal/handler"
	"github.com/archiveone/bookingcore/internal/middleware"
	"github.com/archiveone/bookingcore/internal/notification"
	"github.com/archiveone/bookingcore/internal/repository"
	"github.com/archiveone/bookingcore/internal/router"
	"github.com/archiveone/bookingcore/internal/scheduler"
	"github.com/archiveone/bookingcore/internal/service"
	"github.com/archiveone/bookingcore/internal/webhook"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	dispatcher *notification.AMQPDispatcher
	httpServer *http.Server
	sweeper    *scheduler.Sweeper
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"bookingcore",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	itemRepo := repository.NewItemRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	commissionRepo := repository.NewCommissionRepo(a.db)
	webhookEventRepo := repository.NewWebhookEventRepo(a.db)

	dispatcher, err := notification.NewAMQPDispatcher(a.cfg.AMQP.URL, a.cfg.AMQP.Exchange, a.log)
	if err != nil {
		return fmt.Errorf("init dispatcher: %w", err)
	}
	a.dispatcher = dispatcher

	verifier := webhook.NewHMACVerifier(a.cfg.Webhook.Secret)

	availabilityService := service.NewAvailabilityService(itemRepo, bookingRepo)
	bookingService := service.NewBookingService(
		bookingRepo, itemRepo, userRepo, dispatcher,
		a.cfg.Sweeper.PendingTTL, a.log,
	)
	webhookService := service.NewWebhookService(verifier, webhookEventRepo, itemRepo, dispatcher, a.log)
	commissionService := service.NewCommissionService(commissionRepo, itemRepo, userRepo, dispatcher, a.log)
	itemService := service.NewItemService(itemRepo)
	userService := service.NewUserService(userRepo)

	a.sweeper = scheduler.New(
		bookingService,
		a.cfg.Sweeper.Interval,
		a.log,
	)

	h := handler.NewHandler(availabilityService, bookingService, commissionService, itemService, userService)
	wh := handler.NewWebhookHandler(webhookService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		wh,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.sweeper.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.dispatcher.Close(); err != nil {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "dispatcher close",
			logger.String("error", err.Error()),
		)
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
