package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/induscore/inventario-panel/internal/application/usecase"
)

// StockHandler maneja la vista de stock (protegido).
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Panel godoc
// @Summary      Panel de stock con totales por ubicación
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        buscar     query  string  false  "Búsqueda libre"
// @Param        tipo       query  string  false  "Filtro por tipo de proveedor"
// @Param        ubicacion  query  string  false  "Filtro por ubicación"
// @Param        refrescar  query  string  false  "1 fuerza recarga del upstream"
// @Success      200  {object}  dto.StockPanel
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) Panel(c *fiber.Ctx) error {
	selected := map[string]string{
		"tipo":      c.Query("tipo"),
		"ubicacion": c.Query("ubicacion"),
	}
	out, err := h.uc.Panel(c.Context(), GetCredential(c), c.Query("buscar"), selected, wantRefresh(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
