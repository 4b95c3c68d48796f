package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	gosrt "github.com/datarhei/gosrt"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"codeberg.org/mutker/netdiag/internal/config"
	"codeberg.org/mutker/netdiag/internal/diagnostics"
	"codeberg.org/mutker/netdiag/internal/errors"
	"codeberg.org/mutker/netdiag/internal/logger"
	"codeberg.org/mutker/netdiag/internal/netdiag"
	"codeberg.org/mutker/netdiag/internal/network/srt"
	"codeberg.org/mutker/netdiag/internal/pid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogLevel.String(), logger.IsService()); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger.Debug().
		Str("mode", cfg.Mode.String()).
		Str("address", cfg.Address).
		Dur("interval", cfg.Interval).
		Msg("Config loaded")

	if err := pid.Write(cfg.PIDFile); err != nil {
		logger.FatalWithCode(asCoded(err)).Msg("Failed to write PID file")
	}

	ctx, cancel := context.WithCancel(context.Background())
	go handleSignals(cancel)

	exitCode := 0
	if err := run(ctx, cfg); err != nil {
		logger.ErrorWithCode(asCoded(err)).Msg("Error in main loop")
		exitCode = 1
	}
	cancel()

	if err := pid.Remove(cfg.PIDFile); err != nil {
		logger.ErrorWithCode(asCoded(err)).Msg("Failed to remove PID file")
	}
	logger.Info().Msg("Exiting...")
	os.Exit(exitCode)
}

func run(ctx context.Context, cfg *config.Config) error {
	errFactory := errors.New()

	store := diagnostics.NewStore()
	sinks := []diagnostics.Sink{store}
	if cfg.Prometheus {
		sinks = append(sinks, diagnostics.NewPrometheusSink(prometheus.DefaultRegisterer, logger.Default()))
	}

	plugin := netdiag.New(
		diagnostics.Multi(sinks...),
		netdiag.WithHistoryLength(cfg.HistoryLength),
		netdiag.WithLogger(logger.Default()),
	)

	g, ctx := errgroup.WithContext(ctx)

	var res netdiag.Resources
	switch cfg.Mode {
	case config.ModeClient:
		client, err := srt.Dial(cfg.Address, gosrt.DefaultConfig())
		if err != nil {
			return errFactory.Wrap(errors.ErrInitApp, err)
		}
		defer func() {
			if err := client.Close(); err != nil {
				logger.ErrorWithCode(asCoded(err)).Msg("Failed to close connection")
			}
		}()
		logger.Info().Str("address", cfg.Address).Msg("Connected")
		res.Client = client
	case config.ModeServer:
		server, err := srt.Listen(cfg.Address, gosrt.DefaultConfig(), logger.Default())
		if err != nil {
			return errFactory.Wrap(errors.ErrInitApp, err)
		}
		g.Go(func() error {
			return server.Serve(ctx)
		})
		res.Server = server
	}

	plugin.Startup(res)

	g.Go(func() error {
		return loop(ctx, cfg, plugin, res, store)
	})

	return g.Wait()
}

func loop(ctx context.Context, cfg *config.Config, plugin *netdiag.Plugin, res netdiag.Resources, store *diagnostics.Store) error {
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	var summary <-chan time.Time
	if cfg.SummaryInterval > 0 {
		summaryTicker := time.NewTicker(cfg.SummaryInterval)
		defer summaryTicker.Stop()
		summary = summaryTicker.C
	}

	logger.Info().
		Str("mode", res.Mode().String()).
		Dur("interval", cfg.Interval).
		Msg("Sampling network diagnostics")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			plugin.Update(res)
		case <-summary:
			diagnostics.LogSummary(store, logger.Default())
		}
	}
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

// asCoded returns err as a coded error, wrapping it as an internal error if
// it carries no code.
func asCoded(err error) errors.Error {
	var coded errors.Error
	if errors.As(err, &coded) {
		return coded
	}
	return errors.New().Wrap(errors.ErrInternal, err)
}
