package components

import (
	"nft-launchpad/internal/handler"
	"nft-launchpad/internal/handler/api"
	"nft-launchpad/internal/handler/middleware"
	"nft-launchpad/internal/pkg/clock"
	"nft-launchpad/internal/pkg/config"
	"nft-launchpad/internal/usecase/commands"
	"nft-launchpad/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		NewCollectionHandler,
		api.NewMintHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewCollectionHandler(
	collectionCommands commands.CollectionCommands,
	collectionQueries queries.CollectionQueries,
	clk clock.Clock,
	cfg config.Config,
) *api.CollectionHandler {
	return api.NewCollectionHandler(collectionCommands, collectionQueries, clk, cfg.Sweeper.ReservationExpiry)
}
