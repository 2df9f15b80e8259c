package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/application/session"
	"github.com/induscore/inventario-panel/internal/domain/entity"
)

// Endpoints de órdenes: compra, entrada y salida.

func (c *Client) ListPurchaseOrders(ctx context.Context, cred session.Credential) ([]entity.PurchaseOrder, error) {
	var out []entity.PurchaseOrder
	if err := c.get(ctx, cred, "/OrdenCompra/ListarOrdenesCompra", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePurchaseOrder(ctx context.Context, cred session.Credential, in dto.PurchaseOrderInput) error {
	return c.send(ctx, cred, http.MethodPost, "/OrdenCompra/CrearOrdenCompra", in)
}

func (c *Client) UpdatePurchaseOrder(ctx context.Context, cred session.Credential, id int, in dto.PurchaseOrderInput) error {
	return c.send(ctx, cred, http.MethodPut, fmt.Sprintf("/OrdenCompra/ActualizarOrdenCompra/%d", id), in)
}

func (c *Client) DeletePurchaseOrder(ctx context.Context, cred session.Credential, id int) error {
	return c.send(ctx, cred, http.MethodDelete, fmt.Sprintf("/OrdenCompra/EliminarOrdenCompra/%d", id), nil)
}

func (c *Client) ListInboundOrders(ctx context.Context, cred session.Credential) ([]entity.InboundOrder, error) {
	var out []entity.InboundOrder
	if err := c.get(ctx, cred, "/OrdenEntrada/ListarOrdenesEntrada", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateInboundOrder(ctx context.Context, cred session.Credential, in dto.MovementOrderInput) error {
	return c.send(ctx, cred, http.MethodPost, "/OrdenEntrada/CrearOrdenEntrada", in)
}

func (c *Client) ListOutboundOrders(ctx context.Context, cred session.Credential) ([]entity.OutboundOrder, error) {
	var out []entity.OutboundOrder
	if err := c.get(ctx, cred, "/OrdenSalida/ListarOrdenesSalida", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateOutboundOrder(ctx context.Context, cred session.Credential, in dto.MovementOrderInput) error {
	return c.send(ctx, cred, http.MethodPost, "/OrdenSalida/CrearOrdenSalida", in)
}
