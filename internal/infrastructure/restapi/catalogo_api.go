package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/application/session"
	"github.com/induscore/inventario-panel/internal/domain/entity"
)

// Endpoints de catálogo: productos, proveedores, asociaciones, ubicaciones,
// stock y precios históricos. Las rutas siguen la convención del upstream.

func (c *Client) ListProducts(ctx context.Context, cred session.Credential) ([]entity.Product, error) {
	var out []entity.Product
	if err := c.get(ctx, cred, "/Producto/ListarProductos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProduct(ctx context.Context, cred session.Credential, in dto.ProductInput) error {
	return c.send(ctx, cred, http.MethodPost, "/Producto/CrearProducto", in)
}

func (c *Client) UpdateProduct(ctx context.Context, cred session.Credential, id int, in dto.ProductInput) error {
	return c.send(ctx, cred, http.MethodPut, fmt.Sprintf("/Producto/ActualizarProducto/%d", id), in)
}

func (c *Client) DeleteProduct(ctx context.Context, cred session.Credential, id int) error {
	return c.send(ctx, cred, http.MethodDelete, fmt.Sprintf("/Producto/EliminarProducto/%d", id), nil)
}

func (c *Client) ListSuppliers(ctx context.Context, cred session.Credential) ([]entity.Supplier, error) {
	var out []entity.Supplier
	if err := c.get(ctx, cred, "/Proveedores/ListarProveedoresDetalles", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSupplier(ctx context.Context, cred session.Credential, in dto.SupplierInput) error {
	return c.send(ctx, cred, http.MethodPost, "/Proveedores/CrearProveedor", in)
}

func (c *Client) UpdateSupplier(ctx context.Context, cred session.Credential, id int, in dto.SupplierInput) error {
	return c.send(ctx, cred, http.MethodPut, fmt.Sprintf("/Proveedores/ActualizarProveedor/%d", id), in)
}

func (c *Client) DeleteSupplier(ctx context.Context, cred session.Credential, id int) error {
	return c.send(ctx, cred, http.MethodDelete, fmt.Sprintf("/Proveedores/EliminarProveedor/%d", id), nil)
}

func (c *Client) ListAssociations(ctx context.Context, cred session.Credential) ([]entity.Association, error) {
	var out []entity.Association
	if err := c.get(ctx, cred, "/ProductoProveedor/ListarDetalleProductoProveedor", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAssociation(ctx context.Context, cred session.Credential, in dto.AssociationInput) error {
	return c.send(ctx, cred, http.MethodPost, "/ProductoProveedor/CrearProductoProveedor", in)
}

func (c *Client) DeleteAssociation(ctx context.Context, cred session.Credential, id int) error {
	return c.send(ctx, cred, http.MethodDelete, fmt.Sprintf("/ProductoProveedor/EliminarProductoProveedor/%d", id), nil)
}

func (c *Client) ListLocations(ctx context.Context, cred session.Credential) ([]entity.Location, error) {
	var out []entity.Location
	if err := c.get(ctx, cred, "/Ubicaciones/ListarUbicaciones", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListStock(ctx context.Context, cred session.Credential) ([]entity.StockRow, error) {
	var out []entity.StockRow
	if err := c.get(ctx, cred, "/Stock/ListarInfoStock", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListPrices(ctx context.Context, cred session.Credential) ([]entity.HistoricalPrice, error) {
	var out []entity.HistoricalPrice
	if err := c.get(ctx, cred, "/PrecioHistorico/ListarPreciosHistoricos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePrice(ctx context.Context, cred session.Credential, in dto.PriceInput) error {
	return c.send(ctx, cred, http.MethodPost, "/PrecioHistorico/CrearPrecioHistorico", in)
}
