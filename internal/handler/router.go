package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corral-store/internal/domain/user"
	"corral-store/internal/handler/api"
	"corral-store/internal/handler/middleware"
	"corral-store/internal/pkg/config"
	"corral-store/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Catalog   *api.CatalogHandler
	Store     *api.StoreHandler
	Checkout  *api.CheckoutHandler
	Inventory *api.InventoryHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.StoreMetrics) {
	setupMiddleware(engine, cfg, m)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.StoreMetrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// The public gallery needs no account.
		catalog := apiGroup.Group("/catalog")
		{
			addRoutes(catalog, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.Get},
				{Method: http.MethodGet, Path: "/:id/pedigree", Handler: h.Catalog.Pedigree},
			})
		}

		store := apiGroup.Group("/store")
		store.Use(authMiddleware.RequireAuth())
		{
			addRoutes(store, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Store.GetState},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Store.Refresh},
				{Method: http.MethodPut, Path: "/filter", Handler: h.Store.SetFilter},
				{Method: http.MethodPut, Path: "/page", Handler: h.Store.SetPage},
			})
		}

		cart := apiGroup.Group("/cart")
		cart.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Store.GetCart},
				{Method: http.MethodPost, Path: "/items", Handler: h.Store.AddCartItem},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: h.Store.RemoveCartItem},
				{Method: http.MethodDelete, Path: "", Handler: h.Store.ClearCart},
			})
		}

		checkout := apiGroup.Group("/checkout")
		checkout.Use(authMiddleware.RequireAuth())
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Checkout.Confirm},
			})
		}

		sales := apiGroup.Group("/sales")
		sales.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(sales, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Checkout.ListCustomerSales},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Checkout.GetSale},
			})
		}

		inventory := apiGroup.Group("/inventory")
		inventory.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleSeller))
		{
			addRoutes(inventory, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Inventory.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Inventory.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Inventory.Delete},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
