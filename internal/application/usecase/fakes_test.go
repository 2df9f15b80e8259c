package usecase_test

import (
	"context"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/application/session"
	"github.com/induscore/inventario-panel/internal/domain/entity"
)

// fakeAPI implementa todos los puertos del upstream para los tests de los
// casos de uso. Cada colección se configura por campo; un error configurado se
// devuelve en la operación correspondiente. Las llamadas de listado se cuentan
// para verificar el cacheo del snapshot y la recarga tras mutaciones.
type fakeAPI struct {
	products     []entity.Product
	suppliers    []entity.Supplier
	associations []entity.Association
	locations    []entity.Location
	stock        []entity.StockRow
	prices       []entity.HistoricalPrice
	purchases    []entity.PurchaseOrder
	inbound      []entity.InboundOrder
	outbound     []entity.OutboundOrder

	productsErr     error
	suppliersErr    error
	associationsErr error
	locationsErr    error
	stockErr        error
	pricesErr       error
	purchasesErr    error

	listCalls     int
	mutationCalls int
	mutationErr   error
}

const testCred = session.Credential("Basic dGVzdDp0ZXN0")

func (f *fakeAPI) ListProducts(context.Context, session.Credential) ([]entity.Product, error) {
	f.listCalls++
	return f.products, f.productsErr
}

func (f *fakeAPI) ListSuppliers(context.Context, session.Credential) ([]entity.Supplier, error) {
	f.listCalls++
	return f.suppliers, f.suppliersErr
}

func (f *fakeAPI) ListAssociations(context.Context, session.Credential) ([]entity.Association, error) {
	f.listCalls++
	return f.associations, f.associationsErr
}

func (f *fakeAPI) ListLocations(context.Context, session.Credential) ([]entity.Location, error) {
	f.listCalls++
	return f.locations, f.locationsErr
}

func (f *fakeAPI) ListStock(context.Context, session.Credential) ([]entity.StockRow, error) {
	f.listCalls++
	return f.stock, f.stockErr
}

func (f *fakeAPI) ListPrices(context.Context, session.Credential) ([]entity.HistoricalPrice, error) {
	f.listCalls++
	return f.prices, f.pricesErr
}

func (f *fakeAPI) ListPurchaseOrders(context.Context, session.Credential) ([]entity.PurchaseOrder, error) {
	f.listCalls++
	return f.purchases, f.purchasesErr
}

func (f *fakeAPI) ListInboundOrders(context.Context, session.Credential) ([]entity.InboundOrder, error) {
	f.listCalls++
	return f.inbound, nil
}

func (f *fakeAPI) ListOutboundOrders(context.Context, session.Credential) ([]entity.OutboundOrder, error) {
	f.listCalls++
	return f.outbound, nil
}

func (f *fakeAPI) mutate() error {
	f.mutationCalls++
	return f.mutationErr
}

func (f *fakeAPI) CreateProduct(context.Context, session.Credential, dto.ProductInput) error {
	return f.mutate()
}

func (f *fakeAPI) UpdateProduct(context.Context, session.Credential, int, dto.ProductInput) error {
	return f.mutate()
}

func (f *fakeAPI) DeleteProduct(context.Context, session.Credential, int) error { return f.mutate() }

func (f *fakeAPI) CreateSupplier(context.Context, session.Credential, dto.SupplierInput) error {
	return f.mutate()
}

func (f *fakeAPI) UpdateSupplier(context.Context, session.Credential, int, dto.SupplierInput) error {
	return f.mutate()
}

func (f *fakeAPI) DeleteSupplier(context.Context, session.Credential, int) error { return f.mutate() }

func (f *fakeAPI) CreateAssociation(context.Context, session.Credential, dto.AssociationInput) error {
	return f.mutate()
}

func (f *fakeAPI) DeleteAssociation(context.Context, session.Credential, int) error {
	return f.mutate()
}

func (f *fakeAPI) CreatePrice(context.Context, session.Credential, dto.PriceInput) error {
	return f.mutate()
}

func (f *fakeAPI) CreatePurchaseOrder(context.Context, session.Credential, dto.PurchaseOrderInput) error {
	return f.mutate()
}

func (f *fakeAPI) UpdatePurchaseOrder(context.Context, session.Credential, int, dto.PurchaseOrderInput) error {
	return f.mutate()
}

func (f *fakeAPI) DeletePurchaseOrder(context.Context, session.Credential, int) error {
	return f.mutate()
}

func (f *fakeAPI) CreateInboundOrder(context.Context, session.Credential, dto.MovementOrderInput) error {
	return f.mutate()
}

func (f *fakeAPI) CreateOutboundOrder(context.Context, session.Credential, dto.MovementOrderInput) error {
	return f.mutate()
}
