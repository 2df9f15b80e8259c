package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/application/usecase"
)

// AssociationsHandler maneja la vista de asociaciones producto-proveedor.
type AssociationsHandler struct {
	uc *usecase.AssociationsUseCase
}

// NewAssociationsHandler construye el handler.
func NewAssociationsHandler(uc *usecase.AssociationsUseCase) *AssociationsHandler {
	return &AssociationsHandler{uc: uc}
}

// Panel godoc
// @Summary      Panel de asociaciones con agregados de completitud
// @Tags         asociaciones
// @Security     Bearer
// @Produce      json
// @Param        buscar     query  string  false  "Búsqueda libre"
// @Param        pais       query  string  false  "Filtro por país del proveedor"
// @Param        linea      query  string  false  "Filtro por línea del producto"
// @Param        refrescar  query  string  false  "1 fuerza recarga del upstream"
// @Success      200  {object}  dto.AssociationsPanel
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/asociaciones [get]
func (h *AssociationsHandler) Panel(c *fiber.Ctx) error {
	selected := map[string]string{
		"pais":  c.Query("pais"),
		"linea": c.Query("linea"),
	}
	out, err := h.uc.Panel(c.Context(), GetCredential(c), c.Query("buscar"), selected, wantRefresh(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Asociar un producto a un proveedor en el upstream
// @Tags         asociaciones
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.AssociationInput  true  "idProducto, idProveedor"
// @Success      201   "creada"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/asociaciones [post]
func (h *AssociationsHandler) Create(c *fiber.Ctx) error {
	var in dto.AssociationInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Create(c.Context(), GetCredential(c), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// Delete godoc
// @Summary      Eliminar asociación en el upstream
// @Tags         asociaciones
// @Security     Bearer
// @Param        id  path  int  true  "ID de la asociación"
// @Success      204  "eliminada"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/asociaciones/{id} [delete]
func (h *AssociationsHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Delete(c.Context(), GetCredential(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
