package components

import (
	"corral-store/internal/handler"
	"corral-store/internal/handler/api"
	"corral-store/internal/handler/middleware"
	"corral-store/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig {
			return cfg.Cookie
		},
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewStoreHandler,
		api.NewCheckoutHandler,
		api.NewInventoryHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			catalog *api.CatalogHandler,
			store *api.StoreHandler,
			checkout *api.CheckoutHandler,
			inventory *api.InventoryHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:      auth,
				Catalog:   catalog,
				Store:     store,
				Checkout:  checkout,
				Inventory: inventory,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
