package components

import (
	"nft-launchpad/internal/domain/mint"
	"nft-launchpad/internal/pkg/clock"
	"nft-launchpad/internal/pkg/config"
	"nft-launchpad/internal/pkg/errs"
	"nft-launchpad/internal/usecase/commands"
	"nft-launchpad/internal/usecase/queries"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewFeePolicy,
	NewSettler,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCollectionCommands,
		commands.NewMintUseCase,
		commands.NewSweeperUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCollectionQueries,
		queries.NewMintQueries,
	),
)

func NewFeePolicy(cfg config.Config) (mint.FeePolicy, error) {
	platformFee, err := decimal.NewFromString(cfg.Fees.PlatformFeeUSD)
	if err != nil {
		return mint.FeePolicy{}, errs.Wrap(err, "invalid platform fee")
	}
	return mint.NewFeePolicy(platformFee, cfg.Fees.CreatorShareBps)
}

func NewSettler(
	inventory commands.InventoryRepository,
	requests commands.MintRequestRepository,
	collections commands.CollectionRepository,
	notifications commands.NotificationRepository,
	payments commands.PaymentBuilder,
	confirmer commands.ChainConfirmer,
	assets commands.AssetMinter,
	feePolicy mint.FeePolicy,
	cfg config.Config,
	clk clock.Clock,
) *commands.Settler {
	return commands.NewSettler(
		inventory,
		requests,
		collections,
		notifications,
		payments,
		confirmer,
		assets,
		feePolicy,
		cfg.Solana.PlatformWallet,
		cfg.Sweeper.ReservationExpiry,
		clk,
	)
}
