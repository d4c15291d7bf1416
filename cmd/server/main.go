package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OvidioSandoval/peluqueria-sub000/internal/config"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/infra"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/notify"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/repository"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/router"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/service"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Background refresher for open cajas. Wired here (composition root) so
	// it shares the same repositories and calculator as the HTTP surface.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cajaRepo := repository.NewCajaRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	movimientoRepo := repository.NewMovimientoRepository(db)
	arqueoSvc := service.NewArqueoService(cajaRepo, ventaRepo, movimientoRepo, cfg.CierreDescuentaDescuentos)

	refresher := worker.NewRefresher(arqueoSvc, notify.NewLogNotifier(), cfg.RefreshInterval)
	if err := refresher.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start refresher")
	}

	r := router.New(cfg, db, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("peluqueria backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
