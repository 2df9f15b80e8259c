package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payloads de mutación. Se reenvían tal cual al API de inventario con los
// nombres de campo del upstream; el panel sólo valida lo mínimo antes de enviar.

// ProductInput alta/edición de producto.
type ProductInput struct {
	Code   string `json:"codigoProducto"`
	Name   string `json:"nombreProducto"`
	LineID int    `json:"idLineaProducto"`
}

// SupplierInput alta/edición de proveedor.
type SupplierInput struct {
	Name    string `json:"nombreProveedor"`
	Country string `json:"pais"`
	Type    string `json:"tipoProveedor"`
	Contact string `json:"nombreContacto"`
	Phone   string `json:"telefono"`
	Email   string `json:"correo"`
	Active  bool   `json:"activo"`
}

// AssociationInput alta de asociación producto-proveedor.
type AssociationInput struct {
	ProductID  int `json:"idProducto"`
	SupplierID int `json:"idProveedor"`
}

// OrderLineInput renglón de orden.
type OrderLineInput struct {
	AssociationID int             `json:"idProductoProveedor"`
	Quantity      int64           `json:"cantidad"`
	UnitPrice     decimal.Decimal `json:"precioUnitario"`
	LocationID    int             `json:"idUbicacion"`
	Lot           string          `json:"lote"`
}

// PurchaseOrderInput alta/edición de orden de compra.
type PurchaseOrderInput struct {
	Number            string           `json:"numeroOrden"`
	SupplierID        int              `json:"idProveedor"`
	Status            string           `json:"estado"`
	EstimatedDelivery time.Time        `json:"fechaEntregaEstimada"`
	Lines             []OrderLineInput `json:"detalles"`
}

// MovementOrderInput alta de orden de entrada o salida. Place es el destino
// (entrada) o el origen (salida); la estructura es la misma.
type MovementOrderInput struct {
	Date   time.Time        `json:"fecha"`
	Status string           `json:"estado"`
	Place  string           `json:"lugar"`
	Lines  []OrderLineInput `json:"detalles"`
}

// PriceInput alta de precio histórico. ValidTo nulo deja la vigencia abierta.
type PriceInput struct {
	AssociationID int             `json:"idProductoProveedor"`
	Price         decimal.Decimal `json:"precio"`
	ValidFrom     time.Time       `json:"fechaInicioVigencia"`
	ValidTo       *time.Time      `json:"fechaFinVigencia"`
}
