package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/application/usecase"
)

// PurchaseOrdersHandler maneja la vista de órdenes de compra (protegido).
type PurchaseOrdersHandler struct {
	uc *usecase.PurchaseOrdersUseCase
}

// NewPurchaseOrdersHandler construye el handler.
func NewPurchaseOrdersHandler(uc *usecase.PurchaseOrdersUseCase) *PurchaseOrdersHandler {
	return &PurchaseOrdersHandler{uc: uc}
}

// Panel godoc
// @Summary      Panel de órdenes de compra con totales
// @Tags         ordenes
// @Security     Bearer
// @Produce      json
// @Param        buscar     query  string  false  "Búsqueda libre por número o proveedor"
// @Param        estado     query  string  false  "Filtro por estado (todos desactiva)"
// @Param        refrescar  query  string  false  "1 fuerza recarga del upstream"
// @Success      200  {object}  dto.PurchaseOrdersPanel
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/ordenes-compra [get]
func (h *PurchaseOrdersHandler) Panel(c *fiber.Ctx) error {
	out, err := h.uc.Panel(c.Context(), GetCredential(c), c.Query("buscar"), c.Query("estado"), wantRefresh(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear orden de compra en el upstream
// @Tags         ordenes
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.PurchaseOrderInput  true  "Encabezado y renglones"
// @Success      201   "creada"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ordenes-compra [post]
func (h *PurchaseOrdersHandler) Create(c *fiber.Ctx) error {
	var in dto.PurchaseOrderInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Create(c.Context(), GetCredential(c), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// Update godoc
// @Summary      Actualizar orden de compra en el upstream
// @Tags         ordenes
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  true  "ID de la orden"
// @Param        body  body  dto.PurchaseOrderInput  true  "Encabezado y renglones"
// @Success      204   "actualizada"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ordenes-compra/{id} [put]
func (h *PurchaseOrdersHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in dto.PurchaseOrderInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), GetCredential(c), id, in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar orden de compra en el upstream
// @Tags         ordenes
// @Security     Bearer
// @Param        id  path  int  true  "ID de la orden"
// @Success      204  "eliminada"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ordenes-compra/{id} [delete]
func (h *PurchaseOrdersHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Delete(c.Context(), GetCredential(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
