package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"nft-launchpad/internal/pkg/config"
	"nft-launchpad/internal/usecase/commands"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(
		startSweeper,
	),
)

// startSweeper runs the reconciliation loop for the lifetime of the app. The
// first sweep fires one interval after startup, not immediately, so a crash
// loop cannot hammer the oracle and the RPC endpoint.
func startSweeper(lc fx.Lifecycle, sweeper commands.SweeperCommands, cfg config.Config, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting reconciliation sweeper", "interval", cfg.Sweeper.Interval)
			go func() {
				defer close(done)
				ticker := time.NewTicker(cfg.Sweeper.Interval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						sweeper.Sweep(ctx)
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			<-done
			logger.Info("reconciliation sweeper stopped")
			return nil
		},
	})
}
