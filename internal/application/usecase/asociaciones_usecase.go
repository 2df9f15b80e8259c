package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/application/loader"
	"github.com/induscore/inventario-panel/internal/application/session"
	"github.com/induscore/inventario-panel/internal/domain"
	"github.com/induscore/inventario-panel/internal/domain/entity"
	"github.com/induscore/inventario-panel/internal/domain/reconcile"
)

// associationsData snapshot crudo de la vista de asociaciones.
type associationsData struct {
	associations []entity.Association
	products     []entity.Product
	suppliers    []entity.Supplier
}

// AssociationsUseCase construye la vista de asociaciones producto-proveedor:
// tres descargas paralelas (asociaciones, productos, proveedores) todo-o-nada
// y los agregados de completitud del tablero.
type AssociationsUseCase struct {
	assocs    AssociationAPI
	products  ProductAPI
	suppliers SupplierAPI
	snap      *loader.Snapshot[associationsData]
	filter    reconcile.Filter[entity.Association]
}

// NewAssociationsUseCase construye el caso de uso.
func NewAssociationsUseCase(assocs AssociationAPI, products ProductAPI, suppliers SupplierAPI) *AssociationsUseCase {
	return &AssociationsUseCase{
		assocs:    assocs,
		products:  products,
		suppliers: suppliers,
		snap:      loader.New[associationsData](),
		filter: reconcile.Filter[entity.Association]{
			TextFields: []func(entity.Association) string{
				func(a entity.Association) string { return a.ProductName },
				func(a entity.Association) string { return a.ProductCode },
				func(a entity.Association) string { return a.SupplierName },
			},
			Categories: map[string]func(entity.Association) string{
				"pais":  func(a entity.Association) string { return a.Country },
				"linea": func(a entity.Association) string { return a.LineName },
			},
		},
	}
}

// load descarga las tres colecciones en paralelo. Si una falla, el grupo cancela
// a las demás y la vista completa queda en error: nunca un join parcial.
func (uc *AssociationsUseCase) load(ctx context.Context, cred session.Credential) (associationsData, error) {
	var data associationsData
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.associations, err = uc.assocs.ListAssociations(ctx, cred)
		return err
	})
	g.Go(func() error {
		var err error
		data.products, err = uc.products.ListProducts(ctx, cred)
		return err
	})
	g.Go(func() error {
		var err error
		data.suppliers, err = uc.suppliers.ListSuppliers(ctx, cred)
		return err
	})
	if err := g.Wait(); err != nil {
		return associationsData{}, err
	}
	return data, nil
}

// Panel devuelve la vista filtrada con los agregados de completitud.
func (uc *AssociationsUseCase) Panel(ctx context.Context, cred session.Credential, query string, selected map[string]string, refresh bool) (*dto.AssociationsPanel, error) {
	if refresh {
		uc.snap.Invalidate()
	}
	data, err := uc.snap.Load(ctx, func(ctx context.Context) (associationsData, error) {
		return uc.load(ctx, cred)
	})
	if err != nil {
		return nil, err
	}

	filtered := uc.filter.Apply(data.associations, query, selected)

	withoutSupplier := reconcile.Missing(data.products, data.associations,
		func(p entity.Product) int { return p.ID },
		func(a entity.Association) int { return a.ProductID },
	)

	return &dto.AssociationsPanel{
		Items:             filtered,
		Total:             len(data.associations),
		DistinctProducts:  reconcile.UniqueCount(data.associations, func(a entity.Association) int { return a.ProductID }),
		DistinctSuppliers: reconcile.UniqueCount(data.associations, func(a entity.Association) int { return a.SupplierID }),
		WithoutSupplier:   withoutSupplier,
	}, nil
}

// State expone el estado de carga de la vista (inactivo, cargando, listo, error).
func (uc *AssociationsUseCase) State() loader.State {
	return uc.snap.State()
}

// Create valida que el par exista y reenvía el alta al upstream.
func (uc *AssociationsUseCase) Create(ctx context.Context, cred session.Credential, in dto.AssociationInput) error {
	if in.ProductID <= 0 || in.SupplierID <= 0 {
		return domain.ErrInvalidInput
	}
	if err := uc.assocs.CreateAssociation(ctx, cred, in); err != nil {
		return err
	}
	uc.snap.Invalidate()
	return nil
}

// Delete elimina la asociación en el upstream.
func (uc *AssociationsUseCase) Delete(ctx context.Context, cred session.Credential, id int) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	if err := uc.assocs.DeleteAssociation(ctx, cred, id); err != nil {
		return err
	}
	uc.snap.Invalidate()
	return nil
}
