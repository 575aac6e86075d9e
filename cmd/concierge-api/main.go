// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"concierge/internal/config"
	httptransport "concierge/internal/http"
	"concierge/internal/infra"
	"concierge/internal/modules/dialogue"
	"concierge/internal/modules/inventory"
	"concierge/internal/modules/reservation"
	"concierge/internal/modules/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatal("postgres init", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer func() { _ = redisClient.Close() }()

	dialogueSvc := dialogue.NewService(dialogue.DefaultVocabulary())

	inventorySvc := inventory.NewService(inventory.Latency{
		Search: cfg.Latency.Search,
		Detail: cfg.Latency.Detail,
	})

	reservationStore := reservation.NewStore(dbPool)
	reservationSvc := reservation.NewService(reservationStore, cfg.Latency.Confirm, logger)

	sessionStore := session.NewStore(redisClient, cfg.Session.TTL)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Dialogue:      dialogueSvc,
		Inventory:     inventorySvc,
		Reservation:   reservationSvc,
		Sessions:      sessionStore,
		Logger:        logger,
		RatePerMinute: cfg.RateLimit.PerMinute,
		RateBurst:     cfg.RateLimit.Burst,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("server starting", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server", zap.Error(err))
	}
}
