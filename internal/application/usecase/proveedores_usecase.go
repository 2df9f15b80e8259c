package usecase

import (
	"context"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/application/loader"
	"github.com/induscore/inventario-panel/internal/application/session"
	"github.com/induscore/inventario-panel/internal/domain"
	"github.com/induscore/inventario-panel/internal/domain/entity"
	"github.com/induscore/inventario-panel/internal/domain/reconcile"
)

// SuppliersUseCase construye la vista de proveedores: búsqueda libre, filtros
// por país/tipo/estado y tarjetas de resumen (países distintos, conteo por tipo).
type SuppliersUseCase struct {
	api    SupplierAPI
	snap   *loader.Snapshot[[]entity.Supplier]
	filter reconcile.Filter[entity.Supplier]
}

// NewSuppliersUseCase construye el caso de uso.
func NewSuppliersUseCase(api SupplierAPI) *SuppliersUseCase {
	return &SuppliersUseCase{
		api:  api,
		snap: loader.New[[]entity.Supplier](),
		filter: reconcile.Filter[entity.Supplier]{
			TextFields: []func(entity.Supplier) string{
				func(s entity.Supplier) string { return s.Name },
				func(s entity.Supplier) string { return s.Contact },
				func(s entity.Supplier) string { return s.Country },
				func(s entity.Supplier) string { return s.Email },
			},
			Categories: map[string]func(entity.Supplier) string{
				"pais": func(s entity.Supplier) string { return s.Country },
				"tipo": func(s entity.Supplier) string { return s.Type },
				"estado": func(s entity.Supplier) string {
					if s.Active {
						return "activo"
					}
					return "inactivo"
				},
			},
		},
	}
}

// Panel devuelve la vista filtrada de proveedores.
func (uc *SuppliersUseCase) Panel(ctx context.Context, cred session.Credential, query string, selected map[string]string, refresh bool) (*dto.SuppliersPanel, error) {
	if refresh {
		uc.snap.Invalidate()
	}
	suppliers, err := uc.snap.Load(ctx, func(ctx context.Context) ([]entity.Supplier, error) {
		return uc.api.ListSuppliers(ctx, cred)
	})
	if err != nil {
		return nil, err
	}

	filtered := uc.filter.Apply(suppliers, query, selected)

	return &dto.SuppliersPanel{
		Items:             filtered,
		Total:             len(suppliers),
		DistinctCountries: reconcile.UniqueCount(suppliers, func(s entity.Supplier) string { return s.Country }),
		ByType:            reconcile.CountBy(suppliers, func(s entity.Supplier) string { return s.Type }),
	}, nil
}

// Create valida y reenvía el alta al upstream.
func (uc *SuppliersUseCase) Create(ctx context.Context, cred session.Credential, in dto.SupplierInput) error {
	if err := validateSupplier(in); err != nil {
		return err
	}
	if err := uc.api.CreateSupplier(ctx, cred, in); err != nil {
		return err
	}
	uc.snap.Invalidate()
	return nil
}

// Update reenvía la edición al upstream.
func (uc *SuppliersUseCase) Update(ctx context.Context, cred session.Credential, id int, in dto.SupplierInput) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	if err := validateSupplier(in); err != nil {
		return err
	}
	if err := uc.api.UpdateSupplier(ctx, cred, id, in); err != nil {
		return err
	}
	uc.snap.Invalidate()
	return nil
}

// Delete elimina en el upstream.
func (uc *SuppliersUseCase) Delete(ctx context.Context, cred session.Credential, id int) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	if err := uc.api.DeleteSupplier(ctx, cred, id); err != nil {
		return err
	}
	uc.snap.Invalidate()
	return nil
}

func validateSupplier(in dto.SupplierInput) error {
	if in.Name == "" || in.Country == "" {
		return domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.SupplierLocal, entity.SupplierNacional, entity.SupplierInternacional:
		return nil
	default:
		return domain.ErrInvalidInput
	}
}
