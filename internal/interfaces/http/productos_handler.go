package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/application/usecase"
)

// ProductsHandler maneja la vista de productos (protegido).
type ProductsHandler struct {
	uc *usecase.ProductsUseCase
}

// NewProductsHandler construye el handler.
func NewProductsHandler(uc *usecase.ProductsUseCase) *ProductsHandler {
	return &ProductsHandler{uc: uc}
}

// Panel godoc
// @Summary      Panel de productos con resumen y filtros
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        buscar     query  string  false  "Búsqueda libre"
// @Param        linea      query  string  false  "Filtro por línea (todos desactiva)"
// @Param        refrescar  query  string  false  "1 fuerza recarga del upstream"
// @Success      200  {object}  dto.ProductsPanel
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/productos [get]
func (h *ProductsHandler) Panel(c *fiber.Ctx) error {
	out, err := h.uc.Panel(c.Context(), GetCredential(c), c.Query("buscar"), c.Query("linea"), wantRefresh(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto en el upstream
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductInput  true  "Datos del producto"
// @Success      201   "creado"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Create(c.Context(), GetCredential(c), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// Update godoc
// @Summary      Actualizar producto en el upstream
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ProductInput  true  "Datos a actualizar"
// @Success      204   "actualizado"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in dto.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), GetCredential(c), id, in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar producto en el upstream
// @Tags         productos
// @Security     Bearer
// @Param        id  path  int  true  "ID del producto"
// @Success      204  "eliminado"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Delete(c.Context(), GetCredential(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetActive godoc
// @Summary      Encender o apagar la bandera local de un producto
// @Description  La bandera vive sólo en el panel; el upstream nunca la ve.
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  object{activo=bool}  true  "Estado deseado"
// @Success      204   "bandera actualizada"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/activo [patch]
func (h *ProductsHandler) SetActive(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in struct {
		Active bool `json:"activo"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetActive(id, in.Active); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
