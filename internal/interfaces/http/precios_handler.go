package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/application/usecase"
)

// PricesHandler maneja la vista de precios históricos (protegido).
type PricesHandler struct {
	uc *usecase.PricesUseCase
}

// NewPricesHandler construye el handler.
func NewPricesHandler(uc *usecase.PricesUseCase) *PricesHandler {
	return &PricesHandler{uc: uc}
}

// Panel godoc
// @Summary      Panel de precios históricos con vigencia
// @Tags         precios
// @Security     Bearer
// @Produce      json
// @Param        buscar     query  string  false  "Búsqueda libre por etiqueta de asociación"
// @Param        asociacion query  int     false  "Limita a una asociación (0 lista todas)"
// @Param        refrescar  query  string  false  "1 fuerza recarga del upstream"
// @Success      200  {object}  dto.PricesPanel
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/precios [get]
func (h *PricesHandler) Panel(c *fiber.Ctx) error {
	out, err := h.uc.Panel(c.Context(), GetCredential(c), c.Query("buscar"), c.QueryInt("asociacion", 0), wantRefresh(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar precio nuevo para una asociación
// @Tags         precios
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.PriceInput  true  "asociación, precio, vigencia"
// @Success      201   "creado"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/precios [post]
func (h *PricesHandler) Create(c *fiber.Ctx) error {
	var in dto.PriceInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Create(c.Context(), GetCredential(c), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}
