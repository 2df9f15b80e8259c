package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/application/loader"
	"github.com/induscore/inventario-panel/internal/application/session"
	"github.com/induscore/inventario-panel/internal/domain"
	"github.com/induscore/inventario-panel/internal/domain/entity"
	"github.com/induscore/inventario-panel/internal/domain/reconcile"
)

// purchaseOrdersData snapshot crudo de la vista de órdenes de compra.
type purchaseOrdersData struct {
	orders       []entity.PurchaseOrder
	associations []entity.Association
	suppliers    []entity.Supplier
}

// PurchaseOrdersUseCase construye la vista de órdenes de compra: el encabezado
// resuelve el nombre del proveedor, cada renglón resuelve su asociación (con
// placeholder si el ID no existe) y el total es Σ cantidad × precio unitario.
type PurchaseOrdersUseCase struct {
	orders    PurchaseOrderAPI
	assocs    AssociationAPI
	suppliers SupplierAPI
	snap      *loader.Snapshot[purchaseOrdersData]
	filter    reconcile.Filter[dto.PurchaseOrderView]
}

// NewPurchaseOrdersUseCase construye el caso de uso.
func NewPurchaseOrdersUseCase(orders PurchaseOrderAPI, assocs AssociationAPI, suppliers SupplierAPI) *PurchaseOrdersUseCase {
	return &PurchaseOrdersUseCase{
		orders:    orders,
		assocs:    assocs,
		suppliers: suppliers,
		snap:      loader.New[purchaseOrdersData](),
		filter: reconcile.Filter[dto.PurchaseOrderView]{
			TextFields: []func(dto.PurchaseOrderView) string{
				func(v dto.PurchaseOrderView) string { return v.Number },
				func(v dto.PurchaseOrderView) string { return v.SupplierName },
			},
			Categories: map[string]func(dto.PurchaseOrderView) string{
				"estado": func(v dto.PurchaseOrderView) string { return v.Status },
			},
		},
	}
}

func (uc *PurchaseOrdersUseCase) load(ctx context.Context, cred session.Credential) (purchaseOrdersData, error) {
	var data purchaseOrdersData
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.orders, err = uc.orders.ListPurchaseOrders(ctx, cred)
		return err
	})
	g.Go(func() error {
		var err error
		data.associations, err = uc.assocs.ListAssociations(ctx, cred)
		return err
	})
	g.Go(func() error {
		var err error
		data.suppliers, err = uc.suppliers.ListSuppliers(ctx, cred)
		return err
	})
	if err := g.Wait(); err != nil {
		return purchaseOrdersData{}, err
	}
	return data, nil
}

// Panel devuelve la vista filtrada de órdenes de compra.
func (uc *PurchaseOrdersUseCase) Panel(ctx context.Context, cred session.Credential, query, status string, refresh bool) (*dto.PurchaseOrdersPanel, error) {
	if refresh {
		uc.snap.Invalidate()
	}
	data, err := uc.snap.Load(ctx, func(ctx context.Context) (purchaseOrdersData, error) {
		return uc.load(ctx, cred)
	})
	if err != nil {
		return nil, err
	}

	items := reconcile.Join(data.orders, data.suppliers,
		func(o entity.PurchaseOrder) int { return o.SupplierID },
		func(s entity.Supplier) int { return s.ID },
		func(o entity.PurchaseOrder, s entity.Supplier, found bool) dto.PurchaseOrderView {
			supplierName := labelSupplierNotFound
			if found {
				supplierName = s.Name
			}
			return dto.PurchaseOrderView{
				ID:                o.ID,
				Number:            o.Number,
				SupplierName:      supplierName,
				Status:            o.Status,
				CreatedAt:         o.CreatedAt,
				EstimatedDelivery: o.EstimatedDelivery,
				Lines:             buildOrderLines(o.Lines, data.associations, nil),
				Total:             entity.Total(o.Lines),
			}
		},
	)

	filtered := uc.filter.Apply(items, query, map[string]string{"estado": status})

	grand := decimal.Zero
	for _, v := range filtered {
		grand = grand.Add(v.Total)
	}

	return &dto.PurchaseOrdersPanel{
		Items:    filtered,
		Total:    len(items),
		ByStatus: reconcile.CountBy(items, func(v dto.PurchaseOrderView) string { return v.Status }),
		TotalByStatus: reconcile.GroupSumDecimal(items,
			func(v dto.PurchaseOrderView) string { return v.Status },
			func(v dto.PurchaseOrderView) decimal.Decimal { return v.Total },
		),
		GrandTotal: grand,
	}, nil
}

// Create valida el encabezado y los renglones y reenvía al upstream.
func (uc *PurchaseOrdersUseCase) Create(ctx context.Context, cred session.Credential, in dto.PurchaseOrderInput) error {
	if err := validateOrderInput(in.Number, in.SupplierID, in.Lines); err != nil {
		return err
	}
	if err := uc.orders.CreatePurchaseOrder(ctx, cred, in); err != nil {
		return err
	}
	uc.snap.Invalidate()
	return nil
}

// Update reenvía la edición al upstream.
func (uc *PurchaseOrdersUseCase) Update(ctx context.Context, cred session.Credential, id int, in dto.PurchaseOrderInput) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	if err := validateOrderInput(in.Number, in.SupplierID, in.Lines); err != nil {
		return err
	}
	if err := uc.orders.UpdatePurchaseOrder(ctx, cred, id, in); err != nil {
		return err
	}
	uc.snap.Invalidate()
	return nil
}

// Delete elimina la orden en el upstream.
func (uc *PurchaseOrdersUseCase) Delete(ctx context.Context, cred session.Credential, id int) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	if err := uc.orders.DeletePurchaseOrder(ctx, cred, id); err != nil {
		return err
	}
	uc.snap.Invalidate()
	return nil
}

// buildOrderLines resuelve cada renglón contra las asociaciones y, si se
// entrega el catálogo, contra las ubicaciones. Un ID sin correspondencia
// degrada al placeholder; cantidades y precios negativos no llegan aquí
// (se rechazan en la validación de entrada).
func buildOrderLines(lines []entity.OrderLine, assocs []entity.Association, locations []entity.Location) []dto.OrderLineView {
	locIdx := reconcile.Index(locations, func(u entity.Location) int { return u.ID })

	return reconcile.Join(lines, assocs,
		func(l entity.OrderLine) int { return l.AssociationID },
		func(a entity.Association) int { return a.ID },
		func(l entity.OrderLine, a entity.Association, found bool) dto.OrderLineView {
			productLabel := labelProductNotFound
			if found {
				productLabel = a.Label()
			}
			view := dto.OrderLineView{
				AssociationID: l.AssociationID,
				ProductLabel:  productLabel,
				Quantity:      l.Quantity,
				UnitPrice:     l.UnitPrice,
				Subtotal:      l.Subtotal(),
				Lot:           l.Lot,
			}
			if locations != nil {
				view.LocationLabel = labelLocationNotFound
				if u, ok := locIdx[l.LocationID]; ok {
					view.LocationLabel = u.Name
				}
			}
			return view
		},
	)
}

// validateOrderInput reglas mínimas compartidas de órdenes de compra.
func validateOrderInput(number string, supplierID int, lines []dto.OrderLineInput) error {
	if number == "" || supplierID <= 0 {
		return domain.ErrInvalidInput
	}
	return validateLines(lines)
}

// validateLines rechaza renglones sin asociación o con cantidades/precios negativos.
func validateLines(lines []dto.OrderLineInput) error {
	for _, l := range lines {
		if l.AssociationID <= 0 || l.Quantity < 0 || l.UnitPrice.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	return nil
}
