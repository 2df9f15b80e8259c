package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/application/loader"
	"github.com/induscore/inventario-panel/internal/application/session"
	"github.com/induscore/inventario-panel/internal/domain"
	"github.com/induscore/inventario-panel/internal/domain/entity"
	"github.com/induscore/inventario-panel/internal/domain/reconcile"
)

// pricesData snapshot crudo de la vista de precios históricos.
type pricesData struct {
	prices       []entity.HistoricalPrice
	associations []entity.Association
}

// PricesUseCase construye la vista de precios históricos: cada precio resuelve
// la etiqueta de su asociación y marca si está vigente a la fecha actual.
type PricesUseCase struct {
	prices PriceAPI
	assocs AssociationAPI
	snap   *loader.Snapshot[pricesData]
	filter reconcile.Filter[dto.PriceView]
	now    func() time.Time
}

// NewPricesUseCase construye el caso de uso.
func NewPricesUseCase(prices PriceAPI, assocs AssociationAPI) *PricesUseCase {
	return &PricesUseCase{
		prices: prices,
		assocs: assocs,
		snap:   loader.New[pricesData](),
		filter: reconcile.Filter[dto.PriceView]{
			TextFields: []func(dto.PriceView) string{
				func(v dto.PriceView) string { return v.AssociationLabel },
			},
		},
		now: time.Now,
	}
}

func (uc *PricesUseCase) load(ctx context.Context, cred session.Credential) (pricesData, error) {
	var data pricesData
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.prices, err = uc.prices.ListPrices(ctx, cred)
		return err
	})
	g.Go(func() error {
		var err error
		data.associations, err = uc.assocs.ListAssociations(ctx, cred)
		return err
	})
	if err := g.Wait(); err != nil {
		return pricesData{}, err
	}
	return data, nil
}

// Panel devuelve la vista de precios, opcionalmente limitada a una asociación
// (associationID 0 lista todas).
func (uc *PricesUseCase) Panel(ctx context.Context, cred session.Credential, query string, associationID int, refresh bool) (*dto.PricesPanel, error) {
	if refresh {
		uc.snap.Invalidate()
	}
	data, err := uc.snap.Load(ctx, func(ctx context.Context) (pricesData, error) {
		return uc.load(ctx, cred)
	})
	if err != nil {
		return nil, err
	}

	now := uc.now()
	views := reconcile.Join(data.prices, data.associations,
		func(p entity.HistoricalPrice) int { return p.AssociationID },
		func(a entity.Association) int { return a.ID },
		func(p entity.HistoricalPrice, a entity.Association, found bool) dto.PriceView {
			label := labelAssociationNotFound
			if found {
				label = a.Label()
			}
			return dto.PriceView{
				ID:               p.ID,
				AssociationID:    p.AssociationID,
				AssociationLabel: label,
				Price:            p.Price,
				ValidFrom:        p.ValidFrom,
				ValidTo:          p.ValidTo,
				Current:          p.ValidAt(now),
			}
		},
	)

	if associationID > 0 {
		narrowed := make([]dto.PriceView, 0, len(views))
		for _, v := range views {
			if v.AssociationID == associationID {
				narrowed = append(narrowed, v)
			}
		}
		views = narrowed
	}

	filtered := uc.filter.Apply(views, query, nil)

	return &dto.PricesPanel{Items: filtered, Total: len(filtered)}, nil
}

// Create valida y registra un precio nuevo para la asociación.
func (uc *PricesUseCase) Create(ctx context.Context, cred session.Credential, in dto.PriceInput) error {
	if in.AssociationID <= 0 || in.Price.IsNegative() || in.ValidFrom.IsZero() {
		return domain.ErrInvalidInput
	}
	if in.ValidTo != nil && in.ValidTo.Before(in.ValidFrom) {
		return domain.ErrInvalidInput
	}
	if err := uc.prices.CreatePrice(ctx, cred, in); err != nil {
		return err
	}
	uc.snap.Invalidate()
	return nil
}
