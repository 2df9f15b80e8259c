package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/domain"
	"github.com/induscore/inventario-panel/internal/infrastructure/restapi"
)

// respondError traduce los errores de dominio y del upstream a una única
// respuesta de error JSON. Todos los paneles y mutaciones comparten este mapeo:
// el cliente recibe siempre {code, message}, nunca datos parciales.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrSessionNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión ya no existe, inicie sesión de nuevo"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case restapi.IsUnauthorized(err):
		// El upstream revocó la credencial a mitad de sesión
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UPSTREAM_UNAUTHORIZED", Message: "el upstream rechazó la credencial de la sesión"})
	}
	if errors.Is(err, domain.ErrUpstreamDown) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM_UNREACHABLE", Message: "el API de inventario no responde"})
	}
	var apiErr *restapi.APIError
	if errors.As(err, &apiErr) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "el API de inventario respondió con error"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// wantRefresh informa si la petición pidió recarga explícita del snapshot.
func wantRefresh(c *fiber.Ctx) bool {
	return c.Query("refrescar") == "1"
}
