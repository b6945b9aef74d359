package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/smartinventory/pos-admin/internal/api/handler"
	"github.com/smartinventory/pos-admin/internal/api/middleware"
	"github.com/smartinventory/pos-admin/internal/core/domain"
	"github.com/smartinventory/pos-admin/internal/core/service"
	"github.com/smartinventory/pos-admin/internal/infrastructure/backend"
)

// Deps carries everything the router needs wired up.
type Deps struct {
	Logger     zerolog.Logger
	Redis      *redis.Client
	Backend    *backend.Client
	Sessions   *service.SessionManager
	Categories *service.CategoryManager
	Products   *service.ProductManager
	Purchases  *service.PurchaseManager
	Users      *service.UserManager
	Cart       *service.CartManager
	Dashboards *service.DashboardBuilder
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("console"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Sessions, d.Cart, d.Products)
	navHandler := handler.NewNavHandler()
	categoryHandler := handler.NewCategoryHandler(d.Categories)
	productHandler := handler.NewProductHandler(d.Products)
	purchaseHandler := handler.NewPurchaseHandler(d.Purchases)
	userHandler := handler.NewUserHandler(d.Users)
	cartHandler := handler.NewCartHandler(d.Cart)
	dashboardHandler := handler.NewDashboardHandler(d.Dashboards)

	sessionMW := middleware.Session(d.Sessions)
	inventoryRoles := middleware.RBAC(domain.RoleAdmin, domain.RoleInventoryManager)
	salesRoles := middleware.RBAC(domain.RoleAdmin, domain.RoleSalesExecutive)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Console routes ---
	console := e.Group("/console")
	console.POST("/login", authHandler.Login)

	authed := console.Group("", sessionMW)
	authed.POST("/logout", authHandler.Logout)
	authed.GET("/session", authHandler.Me)
	authed.GET("/menu", navHandler.Menu)

	inventory := authed.Group("/inventory", inventoryRoles)
	inventory.GET("/categories", categoryHandler.List)
	inventory.POST("/categories", categoryHandler.Create)
	inventory.PUT("/categories/:id", categoryHandler.Update)
	inventory.DELETE("/categories/:id", categoryHandler.Delete)
	inventory.GET("/products", productHandler.List)
	inventory.POST("/products", productHandler.Create)
	inventory.PUT("/products/:id", productHandler.Update)
	inventory.DELETE("/products/:id", productHandler.Delete)
	inventory.GET("/suppliers", productHandler.Suppliers)
	inventory.GET("/purchases", purchaseHandler.List)
	inventory.POST("/purchases", purchaseHandler.Create)

	sales := authed.Group("/sales", salesRoles)
	sales.GET("/catalog", productHandler.Catalog)
	sales.GET("/cart", cartHandler.View)
	sales.POST("/cart/items", cartHandler.Add)
	sales.PUT("/cart/items/:id", cartHandler.SetQuantity)
	sales.DELETE("/cart/items/:id", cartHandler.Remove)
	sales.PUT("/cart/billing", cartHandler.SetBilling)
	sales.POST("/checkout", cartHandler.Checkout)

	admin := authed.Group("/admin", adminOnly)
	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Register)
	admin.PUT("/users/:id/active", userHandler.SetActive)

	dashboards := authed.Group("/dashboard")
	dashboards.GET("/admin", dashboardHandler.Admin, adminOnly)
	dashboards.GET("/inventory", dashboardHandler.Inventory, inventoryRoles)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Redis, d.Backend)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
