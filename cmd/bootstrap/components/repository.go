package components

import (
	"nft-launchpad/internal/infra/readstore"
	repo_impl "nft-launchpad/internal/infra/repository"
	"nft-launchpad/internal/usecase/commands"
	"nft-launchpad/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewCollectionRepository,
			fx.As(new(commands.CollectionRepository)),
		),
		fx.Annotate(
			repo_impl.NewInventoryRepository,
			fx.As(new(commands.InventoryRepository)),
		),
		fx.Annotate(
			repo_impl.NewMintRequestRepository,
			fx.As(new(commands.MintRequestRepository)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewCollectionReadStore,
			fx.As(new(queries.CollectionReadStore)),
		),
		fx.Annotate(
			readstore.NewItemReadStore,
			fx.As(new(queries.ItemReadStore)),
		),
		// The mint request ledger is its own read model: the stored response
		// body is the poll payload, so the write repository serves reads too.
		fx.Annotate(
			repo_impl.NewMintRequestRepository,
			fx.As(new(queries.MintRequestReadStore)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(queries.UserReadStore)),
		),
	),
)
