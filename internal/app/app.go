package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ArthurHoang15/notification-server/internal/config"
	"github.com/ArthurHoang15/notification-server/internal/push"
	"github.com/ArthurHoang15/notification-server/internal/scheduler"
	"github.com/ArthurHoang15/notification-server/internal/server"
	"github.com/ArthurHoang15/notification-server/internal/store"
	"github.com/ArthurHoang15/notification-server/internal/sweep"
)

type App struct {
	cfg  config.Config
	log  *zap.Logger
	repo store.Repo
	cron *scheduler.Scheduler
	srv  *http.Server
}

func New(cfg config.Config, log *zap.Logger) *App {
	return &App{cfg: cfg, log: log}
}

// Run wires the components, starts the minute scheduler and the HTTP
// server, and blocks until a shutdown signal arrives.
func (a *App) Run(ctx context.Context) error {
	a.log.Info("starting safemed notification server",
		zap.String("http", a.cfg.HTTPAddr),
		zap.String("defaultTZ", a.cfg.DefaultTZ),
	)

	repo, err := store.OpenSQLite(ctx, a.cfg.DBPath, a.cfg.DefaultTZ)
	if err != nil {
		a.log.Error("open sqlite failed", zap.Error(err))
		return err
	}
	a.repo = repo
	a.log.Info("sqlite ready", zap.String("path", a.cfg.DBPath))

	transport, err := push.NewFCMTransport(ctx, []byte(a.cfg.ServiceAccountJSON), a.cfg.CredentialsFile)
	if err != nil {
		a.log.Error("firebase init failed", zap.Error(err))
		_ = repo.Close()
		return err
	}
	a.log.Info("firebase messaging ready")

	dispatcher := push.NewDispatcher(transport, a.log)
	sweeper := sweep.New(repo, dispatcher, a.log, a.cfg.SweepConcurrency, a.cfg.SendTimeout)

	cron, err := scheduler.New(sweeper, a.log)
	if err != nil {
		_ = repo.Close()
		return err
	}
	a.cron = cron

	engine := server.New(repo, sweeper, dispatcher, a.log)
	a.srv = &http.Server{
		Addr:         a.cfg.HTTPAddr,
		Handler:      engine,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 120 * time.Second, // /trigger waits for a full sweep
	}

	a.cron.Start()
	go func() {
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	a.log.Info("shutdown signal received")
	return a.shutdown()
}

func (a *App) shutdown() error {
	if err := a.cron.Shutdown(); err != nil {
		a.log.Warn("scheduler shutdown error", zap.Error(err))
	}

	shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.srv.Shutdown(shCtx); err != nil {
		a.log.Warn("http server shutdown error", zap.Error(err))
	}

	if a.repo != nil {
		_ = a.repo.Close()
	}
	return nil
}
