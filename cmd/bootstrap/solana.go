package bootstrap

import (
	"nft-launchpad/internal/infra/oracle"
	"nft-launchpad/internal/infra/solana"
	"nft-launchpad/internal/usecase/commands"

	"go.uber.org/fx"
)

// ChainModule wires everything that talks to the outside world on behalf of
// the settlement path: the Solana RPC client and the price oracle.
var ChainModule = fx.Module("chain",
	fx.Provide(
		fx.Annotate(
			solana.NewRPCClient,
			fx.As(new(solana.BlockhashSource)),
			fx.As(fx.Self()),
		),
		fx.Annotate(
			solana.NewPaymentBuilder,
			fx.As(new(commands.PaymentBuilder)),
		),
		fx.Annotate(
			solana.NewConfirmer,
			fx.As(new(commands.ChainConfirmer)),
		),
		fx.Annotate(
			solana.NewAssetMinter,
			fx.As(new(commands.AssetMinter)),
		),
		fx.Annotate(
			oracle.NewRateSource,
			fx.As(new(commands.RateSource)),
		),
	),
)
