package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/Hack4Good/internal/config"
	"github.com/stpnv0/Hack4Good/internal/domain"
	"github.com/stpnv0/Hack4Good/internal/handler"
	"github.com/stpnv0/Hack4Good/internal/kv"
	"github.com/stpnv0/Hack4Good/internal/middleware"
	"github.com/stpnv0/Hack4Good/internal/notification"
	"github.com/stpnv0/Hack4Good/internal/pubsub"
	"github.com/stpnv0/Hack4Good/internal/repository"
	"github.com/stpnv0/Hack4Good/internal/router"
	"github.com/stpnv0/Hack4Good/internal/scheduler"
	"github.com/stpnv0/Hack4Good/internal/service"
	"github.com/stpnv0/Hack4Good/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type kvStore interface {
	ports.KVStore
	Close() error
}

type repositories struct {
	events  ports.EventRepo
	users   ports.UserRepo
	signups ports.SignupRepo
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	kv         kvStore
	hub        *pubsub.Hub
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"Hack4Good",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	repos, err := app.initRepositories()
	if err != nil {
		return nil, fmt.Errorf("init repositories: %w", err)
	}

	if err = app.initKV(); err != nil {
		return nil, fmt.Errorf("init kv: %w", err)
	}

	if err = app.initServices(repos); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initRepositories() (*repositories, error) {
	if a.cfg.Storage.Backend == config.StoragePostgres {
		if err := a.runMigrations(); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
		if err := a.initDB(); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}

		return &repositories{
			events:  repository.NewEventRepo(a.db),
			users:   repository.NewUserRepo(a.db),
			signups: repository.NewSignupRepo(a.db),
		}, nil
	}

	seed := repository.DemoSeed(time.Now())
	a.log.Info("using in-memory storage with demo data",
		logger.Int("events", len(seed.Events)),
		logger.Int("signups", len(seed.Signups)),
	)

	return &repositories{
		events:  repository.NewMemEventRepo(seed.Events...),
		users:   repository.NewMemUserRepo(seed.Users...),
		signups: repository.NewMemSignupRepo(seed.Signups...),
	}, nil
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
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initKV() error {
	ctx := context.Background()

	switch a.cfg.KV.Backend {
	case config.KVRedis:
		store := kv.NewRedisStore(a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB, a.cfg.Redis.Prefix)
		// an unreachable redis degrades rosters and the role override to empty
		if err := store.Ping(ctx); err != nil {
			a.log.Warn("redis unavailable, kv reads will come back empty",
				logger.String("addr", a.cfg.Redis.Addr),
				logger.String("error", err.Error()),
			)
		}
		a.kv = store

	case config.KVSQLite:
		store, err := kv.NewSQLiteStore(ctx, a.cfg.SQLite.Path)
		if err != nil {
			return fmt.Errorf("open sqlite kv: %w", err)
		}
		a.kv = store

	default:
		a.kv = kv.NewMemoryStore()
	}

	a.log.Info("kv store ready", logger.String("backend", a.cfg.KV.Backend))
	return nil
}

func (a *App) initServices(repos *repositories) error {
	ctx := context.Background()

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	a.hub = pubsub.NewHub(0)

	rosterService := service.NewRosterService(a.kv, repos.events, repos.signups, a.hub, a.log)
	signupService := service.NewSignupService(repos.signups, repos.events, repos.users, rosterService, n, a.log)
	eventService := service.NewEventService(repos.events, repos.signups, repos.users, rosterService)
	userService := service.NewUserService(repos.users, a.kv, a.cfg.Session.UserID, a.log)

	if err = a.ensureSessionUser(ctx, repos.users); err != nil {
		return fmt.Errorf("session user: %w", err)
	}

	if err = rosterService.InitAll(ctx); err != nil {
		a.log.Warn("roster initialisation failed", logger.String("error", err.Error()))
	}

	a.scheduler = scheduler.New(
		rosterService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(eventService, signupService, userService, rosterService, a.hub)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
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

// ensureSessionUser creates the mock identity when the store does not know it.
func (a *App) ensureSessionUser(ctx context.Context, users ports.UserRepo) error {
	_, err := users.GetByID(ctx, a.cfg.Session.UserID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	user := &domain.User{
		ID:        a.cfg.Session.UserID,
		Name:      a.cfg.Session.UserName,
		Role:      domain.RoleParticipant,
		CreatedAt: time.Now().UTC(),
	}
	if err = users.Create(ctx, user); err != nil {
		return err
	}

	a.log.Info("session user created",
		logger.String("user_id", user.ID),
		logger.String("name", user.Name),
	)
	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
		a.cfg.Server.ShutdownTimeout,
	)
	defer cancel()

	// open activity streams only end once their subscriptions close
	a.hub.Close()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.kv.Close(); err != nil {
		return fmt.Errorf("close kv: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "kv store closed")

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

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
