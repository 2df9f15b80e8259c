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
	"github.com/induscore/inventario-panel/internal/infrastructure/localstore"
)

// productsData snapshot crudo de la vista de productos.
type productsData struct {
	products     []entity.Product
	associations []entity.Association
}

// ProductsUseCase construye la vista de productos: catálogo cruzado contra las
// asociaciones (¿tiene proveedor?) y contra la bandera local activo/inactivo.
type ProductsUseCase struct {
	products ProductAPI
	assocs   AssociationAPI
	flags    *localstore.FlagStore
	snap     *loader.Snapshot[productsData]
	filter   reconcile.Filter[dto.ProductRow]
}

// NewProductsUseCase construye el caso de uso.
func NewProductsUseCase(products ProductAPI, assocs AssociationAPI, flags *localstore.FlagStore) *ProductsUseCase {
	return &ProductsUseCase{
		products: products,
		assocs:   assocs,
		flags:    flags,
		snap:     loader.New[productsData](),
		filter: reconcile.Filter[dto.ProductRow]{
			TextFields: []func(dto.ProductRow) string{
				func(r dto.ProductRow) string { return r.Code },
				func(r dto.ProductRow) string { return r.Name },
				func(r dto.ProductRow) string { return r.LineName },
			},
			Categories: map[string]func(dto.ProductRow) string{
				"linea": func(r dto.ProductRow) string { return r.LineName },
			},
		},
	}
}

// load descarga productos y asociaciones en paralelo, todo-o-nada.
func (uc *ProductsUseCase) load(ctx context.Context, cred session.Credential) (productsData, error) {
	var data productsData
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.products, err = uc.products.ListProducts(ctx, cred)
		return err
	})
	g.Go(func() error {
		var err error
		data.associations, err = uc.assocs.ListAssociations(ctx, cred)
		return err
	})
	if err := g.Wait(); err != nil {
		return productsData{}, err
	}
	return data, nil
}

// Panel devuelve la vista filtrada. refresh fuerza la recarga del snapshot.
// La bandera local se lee al construir las filas, no al cargar el snapshot, de
// modo que un cambio de bandera se refleja sin recargar el upstream.
func (uc *ProductsUseCase) Panel(ctx context.Context, cred session.Credential, query, line string, refresh bool) (*dto.ProductsPanel, error) {
	if refresh {
		uc.snap.Invalidate()
	}
	data, err := uc.snap.Load(ctx, func(ctx context.Context) (productsData, error) {
		return uc.load(ctx, cred)
	})
	if err != nil {
		return nil, err
	}

	withSupplier := reconcile.Index(data.associations, func(a entity.Association) int { return a.ProductID })

	items := make([]dto.ProductRow, 0, len(data.products))
	for _, p := range data.products {
		_, has := withSupplier[p.ID]
		items = append(items, dto.ProductRow{
			ID:          p.ID,
			Code:        p.Code,
			Name:        p.Name,
			LineName:    p.LineName,
			Active:      uc.flags.Active(p.ID),
			HasSupplier: has,
		})
	}

	filtered := uc.filter.Apply(items, query, map[string]string{"linea": line})

	missing := reconcile.Missing(items, data.associations,
		func(r dto.ProductRow) int { return r.ID },
		func(a entity.Association) int { return a.ProductID },
	)

	return &dto.ProductsPanel{
		Items:           filtered,
		Total:           len(items),
		WithoutSupplier: missing,
		DistinctLines:   reconcile.UniqueCount(items, func(r dto.ProductRow) string { return r.LineName }),
	}, nil
}

// Create valida lo mínimo y reenvía al upstream; la mutación completa su ida y
// vuelta antes de invalidar el snapshot (recarga completa, nunca parche).
func (uc *ProductsUseCase) Create(ctx context.Context, cred session.Credential, in dto.ProductInput) error {
	if in.Code == "" || in.Name == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.products.CreateProduct(ctx, cred, in); err != nil {
		return err
	}
	uc.snap.Invalidate()
	return nil
}

// Update reenvía la edición al upstream y recarga.
func (uc *ProductsUseCase) Update(ctx context.Context, cred session.Credential, id int, in dto.ProductInput) error {
	if id <= 0 || in.Code == "" || in.Name == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.products.UpdateProduct(ctx, cred, id, in); err != nil {
		return err
	}
	uc.snap.Invalidate()
	return nil
}

// Delete elimina en el upstream y recarga.
func (uc *ProductsUseCase) Delete(ctx context.Context, cred session.Credential, id int) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	if err := uc.products.DeleteProduct(ctx, cred, id); err != nil {
		return err
	}
	uc.snap.Invalidate()
	return nil
}

// SetActive fija la bandera local del producto. No toca el upstream: la bandera
// vive sólo en el almacenamiento local del panel.
func (uc *ProductsUseCase) SetActive(productID int, active bool) error {
	if productID <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.flags.SetActive(productID, active)
}
