package worker

// refresher.go
// Background job that periodically recomputes the totals of every open caja
// so the reported balances never drift far from the recorded sales and
// movements, even when mutations happen outside the HTTP surface.

import (
	"context"
	"fmt"
	"time"

	"github.com/OvidioSandoval/peluqueria-sub000/internal/notify"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/service"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Refresher owns the cron scheduler that drives the periodic recompute.
type Refresher struct {
	arqueo   service.ArqueoService
	notifier notify.Notifier
	interval time.Duration
	cron     *cron.Cron
}

func NewRefresher(arqueo service.ArqueoService, notifier notify.Notifier, interval time.Duration) *Refresher {
	return &Refresher{
		arqueo:   arqueo,
		notifier: notifier,
		interval: interval,
		cron:     cron.New(),
	}
}

// Start schedules the recompute job and launches the scheduler. It respects
// the context for graceful shutdown.
func (r *Refresher) Start(ctx context.Context) error {
	spec := fmt.Sprintf("@every %s", r.interval)
	if _, err := r.cron.AddFunc(spec, func() { r.tick(ctx) }); err != nil {
		return fmt.Errorf("refresher: schedule %q: %w", spec, err)
	}

	r.cron.Start()
	log.Info().Str("interval", r.interval.String()).Msg("refresher: started")

	go func() {
		<-ctx.Done()
		stopCtx := r.cron.Stop()
		<-stopCtx.Done()
		log.Info().Msg("refresher: shutting down")
	}()
	return nil
}

func (r *Refresher) tick(ctx context.Context) {
	start := time.Now()
	count, err := r.arqueo.RecalcularAbiertas(ctx)
	if err != nil {
		// Partial failures leave the affected cajas with their previous totals.
		r.notifier.Error("recálculo de cajas abiertas con errores", err)
		log.Error().Err(err).Int("recalculadas", count).Msg("refresher: tick finished with errors")
		return
	}
	if count > 0 {
		log.Info().
			Int("recalculadas", count).
			Dur("elapsed", time.Since(start)).
			Msg("refresher: open cajas recomputed")
	}
}
