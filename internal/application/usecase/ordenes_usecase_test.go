package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/application/usecase"
	"github.com/induscore/inventario-panel/internal/domain"
	"github.com/induscore/inventario-panel/internal/domain/entity"
)

func precio(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestPurchaseOrdersPanel_JoinYTotales(t *testing.T) {
	api := &fakeAPI{
		purchases: []entity.PurchaseOrder{
			{
				ID: 1, Number: "OC-001", SupplierID: 5, Status: entity.OrderPendiente,
				Lines: []entity.OrderLine{
					{AssociationID: 10, Quantity: 3, UnitPrice: precio("2.50")},
					{AssociationID: 99, Quantity: 1, UnitPrice: precio("4.00")}, // asociación rota
				},
			},
		},
		associations: []entity.Association{
			{ID: 10, ProductName: "Tornillo", SupplierName: "Aceros SA"},
		},
		suppliers: []entity.Supplier{{ID: 5, Name: "Aceros SA"}},
	}
	uc := usecase.NewPurchaseOrdersUseCase(api, api, api)

	panel, err := uc.Panel(context.Background(), testCred, "", "", false)
	require.NoError(t, err)
	require.Len(t, panel.Items, 1)

	orden := panel.Items[0]
	assert.Equal(t, "Aceros SA", orden.SupplierName)
	require.Len(t, orden.Lines, 2)
	assert.Equal(t, "Tornillo / Aceros SA", orden.Lines[0].ProductLabel)
	assert.Equal(t, "Producto no encontrado", orden.Lines[1].ProductLabel,
		"la referencia rota degrada a placeholder, no a error")

	// Total = 3×2.50 + 1×4.00
	assert.True(t, precio("11.50").Equal(orden.Total))
	assert.True(t, precio("11.50").Equal(panel.GrandTotal))
	assert.Equal(t, map[string]int{entity.OrderPendiente: 1}, panel.ByStatus)
	require.Contains(t, panel.TotalByStatus, entity.OrderPendiente)
	assert.True(t, precio("11.50").Equal(panel.TotalByStatus[entity.OrderPendiente]))
}

func TestPurchaseOrdersPanel_ProveedorInexistente(t *testing.T) {
	api := &fakeAPI{
		purchases: []entity.PurchaseOrder{{ID: 1, Number: "OC-002", SupplierID: 404}},
	}
	uc := usecase.NewPurchaseOrdersUseCase(api, api, api)

	panel, err := uc.Panel(context.Background(), testCred, "", "", false)
	require.NoError(t, err)
	assert.Equal(t, "Proveedor no encontrado", panel.Items[0].SupplierName)
}

func TestPurchaseOrdersPanel_FiltroPorEstado(t *testing.T) {
	api := &fakeAPI{
		purchases: []entity.PurchaseOrder{
			{ID: 1, Number: "OC-001", SupplierID: 5, Status: entity.OrderPendiente},
			{ID: 2, Number: "OC-002", SupplierID: 5, Status: entity.OrderCompleta},
		},
		suppliers: []entity.Supplier{{ID: 5, Name: "Aceros SA"}},
	}
	uc := usecase.NewPurchaseOrdersUseCase(api, api, api)

	panel, err := uc.Panel(context.Background(), testCred, "", entity.OrderCompleta, false)
	require.NoError(t, err)
	require.Len(t, panel.Items, 1)
	assert.Equal(t, "OC-002", panel.Items[0].Number)
	assert.Equal(t, 2, panel.Total)
	// Las tarjetas por estado se calculan sobre el conjunto completo
	assert.Len(t, panel.TotalByStatus, 2)
}

func TestPurchaseOrders_ValidacionDeRenglones(t *testing.T) {
	api := &fakeAPI{}
	uc := usecase.NewPurchaseOrdersUseCase(api, api, api)

	err := uc.Create(context.Background(), testCred, dto.PurchaseOrderInput{
		Number:     "OC-003",
		SupplierID: 5,
		Lines:      []dto.OrderLineInput{{AssociationID: 1, Quantity: -2}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa se rechaza")

	err = uc.Create(context.Background(), testCred, dto.PurchaseOrderInput{
		Number:     "OC-003",
		SupplierID: 5,
		Lines:      []dto.OrderLineInput{{AssociationID: 1, Quantity: 2, UnitPrice: precio("-1")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo se rechaza")
	assert.Zero(t, api.mutationCalls)
}

func TestMovementsPanel_EntradaConUbicaciones(t *testing.T) {
	api := &fakeAPI{
		inbound: []entity.InboundOrder{
			{
				ID: 1, Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				Status: entity.OrderEnProceso, Destination: "Bodega Norte",
				Lines: []entity.OrderLine{
					{AssociationID: 10, Quantity: 4, UnitPrice: precio("1.25"), LocationID: 7, Lot: "L-88"},
					{AssociationID: 10, Quantity: 1, UnitPrice: precio("1.25"), LocationID: 404},
				},
			},
		},
		associations: []entity.Association{{ID: 10, ProductName: "Tornillo", SupplierName: "Aceros SA"}},
		locations:    []entity.Location{{ID: 7, Name: "Bodega Norte"}},
	}
	uc := usecase.NewMovementsUseCase(api, api, api)

	panel, err := uc.InboundPanel(context.Background(), testCred, "", "", false)
	require.NoError(t, err)
	require.Len(t, panel.Items, 1)

	orden := panel.Items[0]
	assert.Equal(t, "Bodega Norte", orden.Place)
	assert.Equal(t, "Bodega Norte", orden.Lines[0].LocationLabel)
	assert.Equal(t, "Ubicación no encontrada", orden.Lines[1].LocationLabel)
	assert.True(t, precio("6.25").Equal(orden.Total))
}

func TestMovements_CreacionValidaYRecarga(t *testing.T) {
	api := &fakeAPI{}
	uc := usecase.NewMovementsUseCase(api, api, api)

	err := uc.CreateOutbound(context.Background(), testCred, dto.MovementOrderInput{
		Status: entity.OrderPendiente,
		Lines:  []dto.OrderLineInput{{AssociationID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin lugar ni fecha no se envía")

	err = uc.CreateOutbound(context.Background(), testCred, dto.MovementOrderInput{
		Date:   time.Now(),
		Place:  "Local Centro",
		Status: entity.OrderPendiente,
		Lines:  []dto.OrderLineInput{{AssociationID: 1, Quantity: 1, UnitPrice: precio("2")}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, api.mutationCalls)
}
