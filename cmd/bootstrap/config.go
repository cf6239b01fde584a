package bootstrap

import (
	"nft-launchpad/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.JWTConfig { return cfg.JWT },
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		func(cfg config.Config) config.SolanaConfig { return cfg.Solana },
		func(cfg config.Config) config.OracleConfig { return cfg.Oracle },
		func(cfg config.Config) config.SweeperConfig { return cfg.Sweeper },
	),
)
