package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/application/usecase"
)

// MovementsHandler maneja las vistas de órdenes de entrada y salida (protegido).
type MovementsHandler struct {
	uc *usecase.MovementsUseCase
}

// NewMovementsHandler construye el handler.
func NewMovementsHandler(uc *usecase.MovementsUseCase) *MovementsHandler {
	return &MovementsHandler{uc: uc}
}

// InboundPanel godoc
// @Summary      Panel de órdenes de entrada
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        buscar     query  string  false  "Búsqueda libre"
// @Param        estado     query  string  false  "Filtro por estado (todos desactiva)"
// @Param        refrescar  query  string  false  "1 fuerza recarga del upstream"
// @Success      200  {object}  dto.MovementOrdersPanel
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/ordenes-entrada [get]
func (h *MovementsHandler) InboundPanel(c *fiber.Ctx) error {
	out, err := h.uc.InboundPanel(c.Context(), GetCredential(c), c.Query("buscar"), c.Query("estado"), wantRefresh(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateInbound godoc
// @Summary      Registrar orden de entrada en el upstream
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.MovementOrderInput  true  "fecha, lugar (destino) y renglones"
// @Success      201   "creada"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ordenes-entrada [post]
func (h *MovementsHandler) CreateInbound(c *fiber.Ctx) error {
	var in dto.MovementOrderInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.CreateInbound(c.Context(), GetCredential(c), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// OutboundPanel godoc
// @Summary      Panel de órdenes de salida
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        buscar     query  string  false  "Búsqueda libre"
// @Param        estado     query  string  false  "Filtro por estado (todos desactiva)"
// @Param        refrescar  query  string  false  "1 fuerza recarga del upstream"
// @Success      200  {object}  dto.MovementOrdersPanel
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/ordenes-salida [get]
func (h *MovementsHandler) OutboundPanel(c *fiber.Ctx) error {
	out, err := h.uc.OutboundPanel(c.Context(), GetCredential(c), c.Query("buscar"), c.Query("estado"), wantRefresh(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateOutbound godoc
// @Summary      Registrar orden de salida en el upstream
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.MovementOrderInput  true  "fecha, lugar (origen) y renglones"
// @Success      201   "creada"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ordenes-salida [post]
func (h *MovementsHandler) CreateOutbound(c *fiber.Ctx) error {
	var in dto.MovementOrderInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.CreateOutbound(c.Context(), GetCredential(c), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}
