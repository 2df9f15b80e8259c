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

// movementsData snapshot crudo de una vista de movimientos (entrada o salida).
type movementsData struct {
	inbound      []entity.InboundOrder
	outbound     []entity.OutboundOrder
	associations []entity.Association
	locations    []entity.Location
}

// MovementsUseCase construye las vistas de órdenes de entrada y de salida.
// Ambas son estructuralmente idénticas: renglones resueltos contra asociaciones
// y ubicaciones, con placeholder ante cualquier referencia rota.
type MovementsUseCase struct {
	orders    MovementOrderAPI
	assocs    AssociationAPI
	locations LocationAPI
	inSnap    *loader.Snapshot[movementsData]
	outSnap   *loader.Snapshot[movementsData]
	filter    reconcile.Filter[dto.MovementOrderView]
}

// NewMovementsUseCase construye el caso de uso.
func NewMovementsUseCase(orders MovementOrderAPI, assocs AssociationAPI, locations LocationAPI) *MovementsUseCase {
	return &MovementsUseCase{
		orders:    orders,
		assocs:    assocs,
		locations: locations,
		inSnap:    loader.New[movementsData](),
		outSnap:   loader.New[movementsData](),
		filter: reconcile.Filter[dto.MovementOrderView]{
			TextFields: []func(dto.MovementOrderView) string{
				func(v dto.MovementOrderView) string { return v.Place },
			},
			Categories: map[string]func(dto.MovementOrderView) string{
				"estado": func(v dto.MovementOrderView) string { return v.Status },
			},
		},
	}
}

// InboundPanel devuelve la vista de órdenes de entrada.
func (uc *MovementsUseCase) InboundPanel(ctx context.Context, cred session.Credential, query, status string, refresh bool) (*dto.MovementOrdersPanel, error) {
	if refresh {
		uc.inSnap.Invalidate()
	}
	data, err := uc.inSnap.Load(ctx, func(ctx context.Context) (movementsData, error) {
		return uc.load(ctx, cred, true)
	})
	if err != nil {
		return nil, err
	}

	items := make([]dto.MovementOrderView, 0, len(data.inbound))
	for _, o := range data.inbound {
		items = append(items, dto.MovementOrderView{
			ID:     o.ID,
			Date:   o.Date,
			Status: o.Status,
			Place:  o.Destination,
			Lines:  buildOrderLines(o.Lines, data.associations, data.locations),
			Total:  entity.Total(o.Lines),
		})
	}
	return uc.buildPanel(items, query, status), nil
}

// OutboundPanel devuelve la vista de órdenes de salida.
func (uc *MovementsUseCase) OutboundPanel(ctx context.Context, cred session.Credential, query, status string, refresh bool) (*dto.MovementOrdersPanel, error) {
	if refresh {
		uc.outSnap.Invalidate()
	}
	data, err := uc.outSnap.Load(ctx, func(ctx context.Context) (movementsData, error) {
		return uc.load(ctx, cred, false)
	})
	if err != nil {
		return nil, err
	}

	items := make([]dto.MovementOrderView, 0, len(data.outbound))
	for _, o := range data.outbound {
		items = append(items, dto.MovementOrderView{
			ID:     o.ID,
			Date:   o.Date,
			Status: o.Status,
			Place:  o.Origin,
			Lines:  buildOrderLines(o.Lines, data.associations, data.locations),
			Total:  entity.Total(o.Lines),
		})
	}
	return uc.buildPanel(items, query, status), nil
}

// load descarga órdenes, asociaciones y ubicaciones en paralelo, todo-o-nada.
func (uc *MovementsUseCase) load(ctx context.Context, cred session.Credential, inbound bool) (movementsData, error) {
	var data movementsData
	g, ctx := errgroup.WithContext(ctx)
	if inbound {
		g.Go(func() error {
			var err error
			data.inbound, err = uc.orders.ListInboundOrders(ctx, cred)
			return err
		})
	} else {
		g.Go(func() error {
			var err error
			data.outbound, err = uc.orders.ListOutboundOrders(ctx, cred)
			return err
		})
	}
	g.Go(func() error {
		var err error
		data.associations, err = uc.assocs.ListAssociations(ctx, cred)
		return err
	})
	g.Go(func() error {
		var err error
		data.locations, err = uc.locations.ListLocations(ctx, cred)
		return err
	})
	if err := g.Wait(); err != nil {
		return movementsData{}, err
	}
	return data, nil
}

func (uc *MovementsUseCase) buildPanel(items []dto.MovementOrderView, query, status string) *dto.MovementOrdersPanel {
	filtered := uc.filter.Apply(items, query, map[string]string{"estado": status})
	return &dto.MovementOrdersPanel{
		Items:    filtered,
		Total:    len(items),
		ByStatus: reconcile.CountBy(items, func(v dto.MovementOrderView) string { return v.Status }),
	}
}

// CreateInbound reenvía el alta de orden de entrada al upstream.
func (uc *MovementsUseCase) CreateInbound(ctx context.Context, cred session.Credential, in dto.MovementOrderInput) error {
	if err := validateMovement(in); err != nil {
		return err
	}
	if err := uc.orders.CreateInboundOrder(ctx, cred, in); err != nil {
		return err
	}
	uc.inSnap.Invalidate()
	return nil
}

// CreateOutbound reenvía el alta de orden de salida al upstream.
func (uc *MovementsUseCase) CreateOutbound(ctx context.Context, cred session.Credential, in dto.MovementOrderInput) error {
	if err := validateMovement(in); err != nil {
		return err
	}
	if err := uc.orders.CreateOutboundOrder(ctx, cred, in); err != nil {
		return err
	}
	uc.outSnap.Invalidate()
	return nil
}

func validateMovement(in dto.MovementOrderInput) error {
	if in.Place == "" || in.Date.IsZero() {
		return domain.ErrInvalidInput
	}
	return validateLines(in.Lines)
}
