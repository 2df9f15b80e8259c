package usecase

import (
	"context"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/application/session"
	"github.com/induscore/inventario-panel/internal/domain/entity"
)

// Puertos hacia el API de inventario. La implementación concreta vive en
// infrastructure/restapi; los tests inyectan fakes. Toda operación recibe la
// credencial de la sesión explícitamente: no hay estado de autenticación global.

// ProductAPI operaciones de catálogo de productos.
type ProductAPI interface {
	ListProducts(ctx context.Context, cred session.Credential) ([]entity.Product, error)
	CreateProduct(ctx context.Context, cred session.Credential, in dto.ProductInput) error
	UpdateProduct(ctx context.Context, cred session.Credential, id int, in dto.ProductInput) error
	DeleteProduct(ctx context.Context, cred session.Credential, id int) error
}

// SupplierAPI operaciones de catálogo de proveedores.
type SupplierAPI interface {
	ListSuppliers(ctx context.Context, cred session.Credential) ([]entity.Supplier, error)
	CreateSupplier(ctx context.Context, cred session.Credential, in dto.SupplierInput) error
	UpdateSupplier(ctx context.Context, cred session.Credential, id int, in dto.SupplierInput) error
	DeleteSupplier(ctx context.Context, cred session.Credential, id int) error
}

// AssociationAPI operaciones sobre asociaciones producto-proveedor.
type AssociationAPI interface {
	ListAssociations(ctx context.Context, cred session.Credential) ([]entity.Association, error)
	CreateAssociation(ctx context.Context, cred session.Credential, in dto.AssociationInput) error
	DeleteAssociation(ctx context.Context, cred session.Credential, id int) error
}

// LocationAPI catálogo de ubicaciones.
type LocationAPI interface {
	ListLocations(ctx context.Context, cred session.Credential) ([]entity.Location, error)
}

// StockAPI filas de hechos de stock.
type StockAPI interface {
	ListStock(ctx context.Context, cred session.Credential) ([]entity.StockRow, error)
}

// PriceAPI precios históricos.
type PriceAPI interface {
	ListPrices(ctx context.Context, cred session.Credential) ([]entity.HistoricalPrice, error)
	CreatePrice(ctx context.Context, cred session.Credential, in dto.PriceInput) error
}

// PurchaseOrderAPI órdenes de compra.
type PurchaseOrderAPI interface {
	ListPurchaseOrders(ctx context.Context, cred session.Credential) ([]entity.PurchaseOrder, error)
	CreatePurchaseOrder(ctx context.Context, cred session.Credential, in dto.PurchaseOrderInput) error
	UpdatePurchaseOrder(ctx context.Context, cred session.Credential, id int, in dto.PurchaseOrderInput) error
	DeletePurchaseOrder(ctx context.Context, cred session.Credential, id int) error
}

// MovementOrderAPI órdenes de entrada y salida.
type MovementOrderAPI interface {
	ListInboundOrders(ctx context.Context, cred session.Credential) ([]entity.InboundOrder, error)
	CreateInboundOrder(ctx context.Context, cred session.Credential, in dto.MovementOrderInput) error
	ListOutboundOrders(ctx context.Context, cred session.Credential) ([]entity.OutboundOrder, error)
	CreateOutboundOrder(ctx context.Context, cred session.Credential, in dto.MovementOrderInput) error
}

// Etiquetas de degradación cuando una referencia no resuelve. La vista muestra
// el placeholder en lugar de fallar (miss referencial no es error).
const (
	labelProductNotFound     = "Producto no encontrado"
	labelSupplierNotFound    = "Proveedor no encontrado"
	labelLocationNotFound    = "Ubicación no encontrada"
	labelAssociationNotFound = "Asociación no encontrada"
)
