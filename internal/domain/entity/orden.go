package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de orden manejados por el panel.
const (
	OrderPendiente = "pendiente"
	OrderEnProceso = "en_proceso"
	OrderCompleta  = "completa"
	OrderAnulada   = "anulada"
)

// OrderLine es un renglón de orden. Referencia una asociación producto-proveedor,
// nunca un producto directo; si el ID no resuelve, la vista degrada a placeholder.
type OrderLine struct {
	ID            int             `json:"idDetalle"`
	AssociationID int             `json:"idProductoProveedor"`
	Quantity      int64           `json:"cantidad"`
	UnitPrice     decimal.Decimal `json:"precioUnitario"`
	LocationID    int             `json:"idUbicacion"`
	Lot           string          `json:"lote"`
}

// Subtotal devuelve cantidad × precio unitario del renglón.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// PurchaseOrder es una orden de compra a un proveedor.
type PurchaseOrder struct {
	ID                int         `json:"idOrdenCompra"`
	Number            string      `json:"numeroOrden"`
	SupplierID        int         `json:"idProveedor"`
	Status            string      `json:"estado"`
	CreatedAt         time.Time   `json:"fechaCreacion"`
	EstimatedDelivery time.Time   `json:"fechaEntregaEstimada"`
	Lines             []OrderLine `json:"detalles"`
}

// InboundOrder es una orden de entrada de mercadería hacia una ubicación destino.
type InboundOrder struct {
	ID          int         `json:"idOrdenEntrada"`
	Date        time.Time   `json:"fecha"`
	Status      string      `json:"estado"`
	Destination string      `json:"destino"`
	Lines       []OrderLine `json:"detalles"`
}

// OutboundOrder es una orden de salida de mercadería desde una ubicación origen.
// Estructuralmente idéntica a InboundOrder salvo los campos de negocio.
type OutboundOrder struct {
	ID     int         `json:"idOrdenSalida"`
	Date   time.Time   `json:"fecha"`
	Status string      `json:"estado"`
	Origin string      `json:"origen"`
	Lines  []OrderLine `json:"detalles"`
}

// Total suma cantidad × precio unitario sobre los renglones de la orden.
func Total(lines []OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
