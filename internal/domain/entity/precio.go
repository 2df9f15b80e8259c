package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoricalPrice es un precio con ventana de vigencia por asociación producto-proveedor.
// ValidTo nulo significa vigencia abierta.
type HistoricalPrice struct {
	ID            int             `json:"idPrecioHistorico"`
	AssociationID int             `json:"idProductoProveedor"`
	Price         decimal.Decimal `json:"precio"`
	ValidFrom     time.Time       `json:"fechaInicioVigencia"`
	ValidTo       *time.Time      `json:"fechaFinVigencia"`
}

// ValidAt informa si el precio está vigente en el instante dado.
func (p HistoricalPrice) ValidAt(t time.Time) bool {
	if t.Before(p.ValidFrom) {
		return false
	}
	return p.ValidTo == nil || !t.After(*p.ValidTo)
}
