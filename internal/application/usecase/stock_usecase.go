package usecase

import (
	"context"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/application/loader"
	"github.com/induscore/inventario-panel/internal/application/session"
	"github.com/induscore/inventario-panel/internal/domain/entity"
	"github.com/induscore/inventario-panel/internal/domain/reconcile"
)

// StockUseCase construye la vista de stock sobre las filas de hechos ya
// aplanadas por el API: búsqueda libre, filtros por tipo de proveedor y
// ubicación, y los totales por ubicación del tablero.
type StockUseCase struct {
	api    StockAPI
	snap   *loader.Snapshot[[]entity.StockRow]
	filter reconcile.Filter[entity.StockRow]
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(api StockAPI) *StockUseCase {
	return &StockUseCase{
		api:  api,
		snap: loader.New[[]entity.StockRow](),
		filter: reconcile.Filter[entity.StockRow]{
			TextFields: []func(entity.StockRow) string{
				func(r entity.StockRow) string { return r.ProductCode },
				func(r entity.StockRow) string { return r.ProductName },
				func(r entity.StockRow) string { return r.SupplierName },
				func(r entity.StockRow) string { return r.LocationName },
			},
			Categories: map[string]func(entity.StockRow) string{
				"tipo":      func(r entity.StockRow) string { return r.SupplierType },
				"ubicacion": func(r entity.StockRow) string { return r.LocationName },
			},
		},
	}
}

// Panel devuelve la vista filtrada de stock. Los agregados se calculan sobre la
// colección completa, no sobre el subconjunto filtrado: las tarjetas del
// tablero muestran el estado global.
func (uc *StockUseCase) Panel(ctx context.Context, cred session.Credential, query string, selected map[string]string, refresh bool) (*dto.StockPanel, error) {
	if refresh {
		uc.snap.Invalidate()
	}
	rows, err := uc.snap.Load(ctx, func(ctx context.Context) ([]entity.StockRow, error) {
		return uc.api.ListStock(ctx, cred)
	})
	if err != nil {
		return nil, err
	}

	byLocation := reconcile.GroupSum(rows,
		func(r entity.StockRow) string { return r.LocationName },
		func(r entity.StockRow) int64 { return r.Quantity },
	)
	var totalUnits int64
	for _, qty := range byLocation {
		totalUnits += qty
	}

	return &dto.StockPanel{
		Items:            uc.filter.Apply(rows, query, selected),
		TotalUnits:       totalUnits,
		ByLocation:       byLocation,
		DistinctProducts: reconcile.UniqueCount(rows, func(r entity.StockRow) string { return r.ProductCode }),
	}, nil
}
