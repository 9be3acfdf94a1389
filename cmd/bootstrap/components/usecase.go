package components

import (
	"corral-store/internal/pkg/cache"
	"corral-store/internal/pkg/clock"
	"corral-store/internal/pkg/config"
	"corral-store/internal/usecase"
	"corral-store/internal/usecase/commands"
	"corral-store/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewRoleAuthorizer,
	usecase.NewTokenValidator,
	func(cfg config.Config, animals queries.AnimalQueries) *usecase.CatalogLoader {
		return usecase.NewCatalogLoader(animals, cfg.Catalog.PageSize)
	},
	usecase.NewCartService,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(store queries.AnimalReadStore, c cache.Cache, cfg config.Config) queries.AnimalQueries {
			return queries.NewAnimalQueries(store, c, cfg.Cache.ListingTTL)
		},
		// Write paths invalidate the listing through the same component
		// that owns the cache key.
		func(q queries.AnimalQueries) commands.ListingInvalidator {
			return q
		},
		queries.NewSaleQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCheckoutUseCase,
		commands.NewInventoryUseCase,
	),
)
