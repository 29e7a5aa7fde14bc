package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/WallyssonSousa/seller-backoffice/internal/application/analytics"
	"github.com/WallyssonSousa/seller-backoffice/internal/application/session"
	"github.com/WallyssonSousa/seller-backoffice/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	Session     *session.Manager
	ProductUC   *usecase.ProductUseCase
	SellerUC    *usecase.SellerUseCase
	SaleUC      *usecase.SaleUseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público, exceto logout)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.Session)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/verify", authHandler.Verify)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", SessionMiddleware(deps.Session), authHandler.Logout)

	// Rotas protegidas (exigem o Bearer token da sessão ativa)
	protected := api.Group("/", SessionMiddleware(deps.Session))

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/inactivate", productHandler.Inactivate)

	// Sellers
	sellers := protected.Group("/sellers")
	sellerHandler := NewSellerHandler(deps.SellerUC)
	sellers.Get("/", sellerHandler.List)
	sellers.Get("/:id", sellerHandler.GetByID)
	sellers.Put("/:id", sellerHandler.Update)

	// Sales
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Patch("/:id/inactivate", saleHandler.Inactivate)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
