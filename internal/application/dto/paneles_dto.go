package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/induscore/inventario-panel/internal/domain/entity"
)

// DTOs de las vistas del panel: colecciones ya reconciliadas (join + filtro)
// más las tarjetas de resumen que cada página muestra.

// ProductRow producto enriquecido con la bandera local y la completitud de asociación.
type ProductRow struct {
	ID          int    `json:"idProducto"`
	Code        string `json:"codigoProducto"`
	Name        string `json:"nombreProducto"`
	LineName    string `json:"nombreLinea"`
	Active      bool   `json:"activo"`
	HasSupplier bool   `json:"tieneProveedor"`
}

// ProductsPanel vista de productos.
type ProductsPanel struct {
	Items           []ProductRow `json:"items"`
	Total           int          `json:"total"`
	WithoutSupplier []ProductRow `json:"productosSinProveedor"`
	DistinctLines   int          `json:"lineasDistintas"`
}

// SuppliersPanel vista de proveedores.
type SuppliersPanel struct {
	Items             []entity.Supplier `json:"items"`
	Total             int               `json:"total"`
	DistinctCountries int               `json:"paisesDistintos"`
	ByType            map[string]int    `json:"porTipo"`
}

// AssociationsPanel vista de asociaciones producto-proveedor.
type AssociationsPanel struct {
	Items             []entity.Association `json:"items"`
	Total             int                  `json:"total"`
	DistinctProducts  int                  `json:"productosDistintos"`
	DistinctSuppliers int                  `json:"proveedoresDistintos"`
	WithoutSupplier   []entity.Product     `json:"productosSinProveedor"`
}

// OrderLineView renglón de orden con las etiquetas ya resueltas.
type OrderLineView struct {
	AssociationID int             `json:"idProductoProveedor"`
	ProductLabel  string          `json:"etiquetaProducto"`
	LocationLabel string          `json:"etiquetaUbicacion,omitempty"`
	Quantity      int64           `json:"cantidad"`
	UnitPrice     decimal.Decimal `json:"precioUnitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Lot           string          `json:"lote,omitempty"`
}

// PurchaseOrderView orden de compra con proveedor resuelto y total calculado.
type PurchaseOrderView struct {
	ID                int             `json:"idOrdenCompra"`
	Number            string          `json:"numeroOrden"`
	SupplierName      string          `json:"nombreProveedor"`
	Status            string          `json:"estado"`
	CreatedAt         time.Time       `json:"fechaCreacion"`
	EstimatedDelivery time.Time       `json:"fechaEntregaEstimada"`
	Lines             []OrderLineView `json:"detalles"`
	Total             decimal.Decimal `json:"total"`
}

// PurchaseOrdersPanel vista de órdenes de compra.
type PurchaseOrdersPanel struct {
	Items         []PurchaseOrderView        `json:"items"`
	Total         int                        `json:"total"`
	ByStatus      map[string]int             `json:"porEstado"`
	TotalByStatus map[string]decimal.Decimal `json:"totalPorEstado"`
	GrandTotal    decimal.Decimal            `json:"totalGeneral"`
}

// MovementOrderView orden de entrada o salida con etiquetas resueltas.
type MovementOrderView struct {
	ID     int             `json:"id"`
	Date   time.Time       `json:"fecha"`
	Status string          `json:"estado"`
	Place  string          `json:"lugar"`
	Lines  []OrderLineView `json:"detalles"`
	Total  decimal.Decimal `json:"total"`
}

// MovementOrdersPanel vista de órdenes de entrada o de salida.
type MovementOrdersPanel struct {
	Items    []MovementOrderView `json:"items"`
	Total    int                 `json:"total"`
	ByStatus map[string]int      `json:"porEstado"`
}

// StockPanel vista de stock.
type StockPanel struct {
	Items            []entity.StockRow `json:"items"`
	TotalUnits       int64             `json:"totalUnidades"`
	ByLocation       map[string]int64  `json:"porUbicacion"`
	DistinctProducts int               `json:"productosDistintos"`
}

// PriceView precio histórico con la etiqueta de asociación resuelta.
type PriceView struct {
	ID               int             `json:"idPrecioHistorico"`
	AssociationID    int             `json:"idProductoProveedor"`
	AssociationLabel string          `json:"etiquetaAsociacion"`
	Price            decimal.Decimal `json:"precio"`
	ValidFrom        time.Time       `json:"fechaInicioVigencia"`
	ValidTo          *time.Time      `json:"fechaFinVigencia"`
	Current          bool            `json:"vigente"`
}

// PricesPanel vista de precios históricos.
type PricesPanel struct {
	Items []PriceView `json:"items"`
	Total int         `json:"total"`
}
