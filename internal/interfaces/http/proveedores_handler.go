package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/application/usecase"
)

// SuppliersHandler maneja la vista de proveedores (protegido).
type SuppliersHandler struct {
	uc *usecase.SuppliersUseCase
}

// NewSuppliersHandler construye el handler.
func NewSuppliersHandler(uc *usecase.SuppliersUseCase) *SuppliersHandler {
	return &SuppliersHandler{uc: uc}
}

// Panel godoc
// @Summary      Panel de proveedores con resumen y filtros
// @Tags         proveedores
// @Security     Bearer
// @Produce      json
// @Param        buscar     query  string  false  "Búsqueda libre"
// @Param        pais       query  string  false  "Filtro por país (todos desactiva)"
// @Param        tipo       query  string  false  "Filtro por tipo"
// @Param        estado     query  string  false  "activo | inactivo"
// @Param        refrescar  query  string  false  "1 fuerza recarga del upstream"
// @Success      200  {object}  dto.SuppliersPanel
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/proveedores [get]
func (h *SuppliersHandler) Panel(c *fiber.Ctx) error {
	selected := map[string]string{
		"pais":   c.Query("pais"),
		"tipo":   c.Query("tipo"),
		"estado": c.Query("estado"),
	}
	out, err := h.uc.Panel(c.Context(), GetCredential(c), c.Query("buscar"), selected, wantRefresh(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear proveedor en el upstream
// @Tags         proveedores
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.SupplierInput  true  "Datos del proveedor"
// @Success      201   "creado"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/proveedores [post]
func (h *SuppliersHandler) Create(c *fiber.Ctx) error {
	var in dto.SupplierInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Create(c.Context(), GetCredential(c), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// Update godoc
// @Summary      Actualizar proveedor en el upstream
// @Tags         proveedores
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  true  "ID del proveedor"
// @Param        body  body  dto.SupplierInput  true  "Datos a actualizar"
// @Success      204   "actualizado"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id} [put]
func (h *SuppliersHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in dto.SupplierInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), GetCredential(c), id, in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar proveedor en el upstream
// @Tags         proveedores
// @Security     Bearer
// @Param        id  path  int  true  "ID del proveedor"
// @Success      204  "eliminado"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id} [delete]
func (h *SuppliersHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Delete(c.Context(), GetCredential(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
