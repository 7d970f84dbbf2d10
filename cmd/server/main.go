package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/washbay-pos/api/internal/config"
	"github.com/washbay-pos/api/internal/journal"
	"github.com/washbay-pos/api/internal/refdata"
	"github.com/washbay-pos/api/internal/router"
	"github.com/washbay-pos/api/internal/service"
	"github.com/washbay-pos/api/internal/session"
	"github.com/washbay-pos/api/internal/upstream"
	"github.com/washbay-pos/api/internal/ws"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.Load()

	api := upstream.New(cfg.UpstreamURL, cfg.UpstreamAPIKey, cfg.UpstreamTimeout, log)

	cache := refdata.New(api, log)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := cache.Refresh(ctx); err != nil {
		// The terminal can start with an empty snapshot; the refresher and
		// on-demand refreshes will fill it once the back office is reachable.
		log.Warn("initial reference data refresh failed", zap.Error(err))
	}
	cancel()

	stopRefresher, err := cache.StartRefresher(cfg.RefreshSpec)
	if err != nil {
		log.Fatal("invalid refresh spec", zap.String("spec", cfg.RefreshSpec), zap.Error(err))
	}
	defer stopRefresher()

	spool, err := journal.Open(cfg.JournalPath)
	if err != nil {
		log.Fatal("open order journal", zap.String("path", cfg.JournalPath), zap.Error(err))
	}
	defer spool.Close()

	hub := ws.NewHub()
	go hub.Run()

	sessions := session.NewStore()
	submit := service.NewSubmitService(api, api, cache, spool, hub, log)

	r := router.New(cfg, cache, sessions, submit, hub, log)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}
