package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/clambin/gotools/metrics"
	"github.com/clambin/ledhub/internal/clock"
	"github.com/clambin/ledhub/internal/configuration"
	"github.com/clambin/ledhub/internal/hub"
	"github.com/clambin/ledhub/internal/led"
	"github.com/clambin/ledhub/internal/version"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := configuration.GetConfigFromArgs(os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("failed to read configuration")
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	log.WithField("version", version.BuildVersion).Info("ledhub starting")

	var writer led.Writer = led.Discard{}
	if cfg.LEDPath != "" {
		writer = &led.Sysfs{LEDPath: cfg.LEDPath}
	}
	strip := led.NewBuffer(cfg.Count, writer)

	h, err := hub.New(cfg, strip, clock.System{Location: cfg.Location})
	if err != nil {
		log.WithError(err).Fatal("failed to create hub")
	}
	prometheus.MustRegister(h)

	ctx, done := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer done()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return h.Run(ctx) })
	g.Go(func() error { return serveMetrics(ctx, metrics.NewServerWithHandlers(cfg.PrometheusPort, nil)) })

	if err = g.Wait(); err != nil {
		log.WithError(err).Error("ledhub failed")
	}
	log.Info("ledhub exiting")
}

// serveMetrics runs the prometheus metrics server until the context is canceled
func serveMetrics(ctx context.Context, server *metrics.Server) error {
	errCh := make(chan error, 1)
	go func() { errCh <- server.Run() }()

	select {
	case err := <-errCh:
		return fmt.Errorf("prometheus: %w", err)
	case <-ctx.Done():
	}
	if err := server.Shutdown(30 * time.Second); err != nil {
		return fmt.Errorf("prometheus: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("prometheus: %w", err)
	}
	return nil
}
