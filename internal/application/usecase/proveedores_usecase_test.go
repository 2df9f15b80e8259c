package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/application/usecase"
	"github.com/induscore/inventario-panel/internal/domain"
	"github.com/induscore/inventario-panel/internal/domain/entity"
)

func TestSuppliersPanel_ResumenYFiltros(t *testing.T) {
	api := &fakeAPI{
		suppliers: []entity.Supplier{
			{ID: 1, Name: "Aceros SA", Country: "Ecuador", Type: entity.SupplierLocal, Active: true},
			{ID: 2, Name: "Ferrimport", Country: "Peru", Type: entity.SupplierInternacional, Active: true},
			{ID: 3, Name: "Clavos del Sur", Country: "Peru", Type: entity.SupplierNacional, Active: false},
		},
	}
	uc := usecase.NewSuppliersUseCase(api)

	panel, err := uc.Panel(context.Background(), testCred, "", nil, false)
	require.NoError(t, err)

	assert.Equal(t, 3, panel.Total)
	assert.Equal(t, 2, panel.DistinctCountries)
	assert.Equal(t, map[string]int{
		entity.SupplierLocal:         1,
		entity.SupplierNacional:      1,
		entity.SupplierInternacional: 1,
	}, panel.ByType)

	panel, err = uc.Panel(context.Background(), testCred, "", map[string]string{
		"pais":   "Peru",
		"estado": "activo",
	}, false)
	require.NoError(t, err)
	require.Len(t, panel.Items, 1)
	assert.Equal(t, "Ferrimport", panel.Items[0].Name)
}

func TestSuppliers_TipoDesconocidoSeRechaza(t *testing.T) {
	api := &fakeAPI{}
	uc := usecase.NewSuppliersUseCase(api)

	err := uc.Create(context.Background(), testCred, dto.SupplierInput{
		Name:    "Aceros SA",
		Country: "Ecuador",
		Type:    "galáctico",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, api.mutationCalls)

	err = uc.Create(context.Background(), testCred, dto.SupplierInput{
		Name:    "Aceros SA",
		Country: "Ecuador",
		Type:    entity.SupplierLocal,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, api.mutationCalls)
}

func TestSuppliers_MutacionInvalidaSnapshot(t *testing.T) {
	api := &fakeAPI{suppliers: []entity.Supplier{{ID: 1, Name: "Aceros SA", Country: "Ecuador", Type: entity.SupplierLocal}}}
	uc := usecase.NewSuppliersUseCase(api)

	_, err := uc.Panel(context.Background(), testCred, "", nil, false)
	require.NoError(t, err)
	llamadas := api.listCalls

	require.NoError(t, uc.Delete(context.Background(), testCred, 1))

	_, err = uc.Panel(context.Background(), testCred, "", nil, false)
	require.NoError(t, err)
	assert.Greater(t, api.listCalls, llamadas)
}
