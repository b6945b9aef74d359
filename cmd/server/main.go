package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/smartinventory/pos-admin/internal/api"
	"github.com/smartinventory/pos-admin/internal/api/metrics"
	"github.com/smartinventory/pos-admin/internal/core/domain"
	"github.com/smartinventory/pos-admin/internal/core/service"
	"github.com/smartinventory/pos-admin/internal/infrastructure/backend"
	"github.com/smartinventory/pos-admin/internal/infrastructure/config"
	"github.com/smartinventory/pos-admin/internal/infrastructure/notify"
	"github.com/smartinventory/pos-admin/internal/infrastructure/session"
	"github.com/smartinventory/pos-admin/internal/invoice"
	"github.com/smartinventory/pos-admin/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load(zerolog.New(os.Stderr).With().Timestamp().Logger())
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	rdb, err := session.Connect(ctx, session.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	client := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, log)
	store := session.NewRedisStore(rdb, cfg.SessionTTL)

	sessions := service.NewSessionManager(client, store, log)
	if err := sessions.Hydrate(ctx); err != nil {
		log.Warn().Err(err).Msg("session hydration failed, starting empty")
	}

	notifier := notify.NewUserNotifier(log)
	notifier.Subscribe(func(u domain.User) {
		log.Info().Int64("user_id", u.ID).Str("username", u.Username).Msg("user account created")
	})
	notifier.Subscribe(func(domain.User) {
		metrics.UsersCreatedTotal.Inc()
	})
	notifier.Start(ctx)

	products := service.NewProductManager(client, log)
	deps := api.Deps{
		Logger:     log,
		Redis:      rdb,
		Backend:    client,
		Sessions:   sessions,
		Categories: service.NewCategoryManager(client, log),
		Products:   products,
		Purchases:  service.NewPurchaseManager(client, log),
		Users:      service.NewUserManager(client, notifier, log),
		Cart:       service.NewCartManager(client, products, invoice.NewRenderer(), log),
		Dashboards: service.NewDashboardBuilder(client, client, client, log),
	}

	e := api.NewRouter(deps)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("console listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server error")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("shutdown complete")
}
