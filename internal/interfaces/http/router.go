package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/auth"
	"github.com/jhoicas/Despensa-api/internal/application/dashboard"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC       *usecase.ProductUseCase
	SaleUC          *usecase.SaleUseCase
	SupplierUC      *usecase.SupplierUseCase
	NotificationUC  *usecase.NotificationUseCase
	DashboardUC     *dashboard.UseCase
	DashboardReport ReportGenerator
	AuthUC          *auth.UseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Delete("/:id", saleHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Notifications (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/generate", notificationHandler.Generate)
	notifications.Patch("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", notificationHandler.Delete)

	// Dashboard (protegido)
	dash := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.DashboardReport)
	dash.Get("/", dashboardHandler.GetViews)
	dash.Get("/report.pdf", dashboardHandler.GetReport)
}
