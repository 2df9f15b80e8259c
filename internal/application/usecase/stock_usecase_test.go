package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/induscore/inventario-panel/internal/application/usecase"
	"github.com/induscore/inventario-panel/internal/domain/entity"
)

// Escenario literal: totales de stock agrupados por ubicación.
func TestStockPanel_TotalesPorUbicacion(t *testing.T) {
	api := &fakeAPI{
		stock: []entity.StockRow{
			{ID: 1, ProductCode: "P1", LocationName: "Bodega", Quantity: 5},
			{ID: 2, ProductCode: "P1", LocationName: "Bodega", Quantity: 3},
			{ID: 3, ProductCode: "P2", LocationName: "Local", Quantity: 2},
		},
	}
	uc := usecase.NewStockUseCase(api)

	panel, err := uc.Panel(context.Background(), testCred, "", nil, false)
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{"Bodega": 8, "Local": 2}, panel.ByLocation)
	assert.Equal(t, int64(10), panel.TotalUnits)
	assert.Equal(t, 2, panel.DistinctProducts)
}

func TestStockPanel_FiltroPorTipoYUbicacion(t *testing.T) {
	api := &fakeAPI{
		stock: []entity.StockRow{
			{ID: 1, ProductName: "Tornillo", SupplierType: entity.SupplierLocal, LocationName: "Bodega", Quantity: 5},
			{ID: 2, ProductName: "Clavo", SupplierType: entity.SupplierNacional, LocationName: "Bodega", Quantity: 3},
			{ID: 3, ProductName: "Perno", SupplierType: entity.SupplierLocal, LocationName: "Local", Quantity: 2},
		},
	}
	uc := usecase.NewStockUseCase(api)

	panel, err := uc.Panel(context.Background(), testCred, "",
		map[string]string{"tipo": entity.SupplierLocal, "ubicacion": "Bodega"}, false)
	require.NoError(t, err)

	require.Len(t, panel.Items, 1)
	assert.Equal(t, "Tornillo", panel.Items[0].ProductName)
	// Los agregados siguen siendo globales aunque la tabla esté filtrada
	assert.Equal(t, int64(10), panel.TotalUnits)
}

func TestStockPanel_VacioEsTotalCero(t *testing.T) {
	uc := usecase.NewStockUseCase(&fakeAPI{})

	panel, err := uc.Panel(context.Background(), testCred, "", nil, false)
	require.NoError(t, err)
	assert.Zero(t, panel.TotalUnits)
	assert.Empty(t, panel.ByLocation)
	assert.Zero(t, panel.DistinctProducts)
}
