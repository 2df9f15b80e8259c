package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/induscore/inventario-panel/internal/application/auth"
	"github.com/induscore/inventario-panel/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductsUC     *usecase.ProductsUseCase
	SuppliersUC    *usecase.SuppliersUseCase
	AssociationsUC *usecase.AssociationsUseCase
	PurchaseUC     *usecase.PurchaseOrdersUseCase
	MovementsUC    *usecase.MovementsUseCase
	StockUC        *usecase.StockUseCase
	PricesUC       *usecase.PricesUseCase
	JWTSecret      string
}

// Router registra las rutas del panel.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, logout protegido
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token con sesión viva)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC))

	protected.Post("/auth/logout", authHandler.Logout)

	// Productos (protegido)
	products := protected.Group("/productos")
	productsHandler := NewProductsHandler(deps.ProductsUC)
	products.Get("/", productsHandler.Panel)
	products.Post("/", productsHandler.Create)
	products.Put("/:id", productsHandler.Update)
	products.Delete("/:id", productsHandler.Delete)
	products.Patch("/:id/activo", productsHandler.SetActive)

	// Proveedores (protegido)
	suppliers := protected.Group("/proveedores")
	suppliersHandler := NewSuppliersHandler(deps.SuppliersUC)
	suppliers.Get("/", suppliersHandler.Panel)
	suppliers.Post("/", suppliersHandler.Create)
	suppliers.Put("/:id", suppliersHandler.Update)
	suppliers.Delete("/:id", suppliersHandler.Delete)

	// Asociaciones producto-proveedor (protegido)
	associations := protected.Group("/asociaciones")
	associationsHandler := NewAssociationsHandler(deps.AssociationsUC)
	associations.Get("/", associationsHandler.Panel)
	associations.Post("/", associationsHandler.Create)
	associations.Delete("/:id", associationsHandler.Delete)

	// Órdenes de compra (protegido)
	purchases := protected.Group("/ordenes-compra")
	purchasesHandler := NewPurchaseOrdersHandler(deps.PurchaseUC)
	purchases.Get("/", purchasesHandler.Panel)
	purchases.Post("/", purchasesHandler.Create)
	purchases.Put("/:id", purchasesHandler.Update)
	purchases.Delete("/:id", purchasesHandler.Delete)

	// Movimientos: órdenes de entrada y de salida (protegido)
	movementsHandler := NewMovementsHandler(deps.MovementsUC)
	inbound := protected.Group("/ordenes-entrada")
	inbound.Get("/", movementsHandler.InboundPanel)
	inbound.Post("/", movementsHandler.CreateInbound)
	outbound := protected.Group("/ordenes-salida")
	outbound.Get("/", movementsHandler.OutboundPanel)
	outbound.Post("/", movementsHandler.CreateOutbound)

	// Stock (protegido, solo lectura)
	stockHandler := NewStockHandler(deps.StockUC)
	protected.Get("/stock", stockHandler.Panel)

	// Precios históricos (protegido)
	prices := protected.Group("/precios")
	pricesHandler := NewPricesHandler(deps.PricesUC)
	prices.Get("/", pricesHandler.Panel)
	prices.Post("/", pricesHandler.Create)
}
