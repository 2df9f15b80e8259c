package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/application/session"
	"github.com/induscore/inventario-panel/pkg/jwt"
)

// Locals keys para la sesión resuelta en Fiber.
const (
	LocalSessionID  = "session_id"
	LocalUser       = "user"
	LocalCredential = "credential"
)

// SessionResolver resuelve una sesión persistida por su ID.
type SessionResolver interface {
	Resolve(sessionID string) (session.Session, error)
}

// AuthMiddleware valida el Bearer Token JWT, resuelve la sesión persistida y
// deja la credencial del upstream en c.Locals. Un token válido cuya sesión ya
// no existe (logout o reinicio con otro archivo) también es 401.
func AuthMiddleware(jwtSecret string, sessions SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		sessionID, user, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		sess, err := sessions.Resolve(sessionID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión ya no existe, inicie sesión de nuevo"})
		}
		c.Locals(LocalSessionID, sessionID)
		c.Locals(LocalUser, user)
		c.Locals(LocalCredential, sess.Credential)
		return c.Next()
	}
}

// GetSessionID devuelve el ID de sesión del contexto (después del middleware).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUser devuelve el usuario del contexto (después del middleware).
func GetUser(c *fiber.Ctx) string {
	v := c.Locals(LocalUser)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetCredential devuelve la credencial del upstream del contexto.
func GetCredential(c *fiber.Ctx) session.Credential {
	v := c.Locals(LocalCredential)
	if v == nil {
		return ""
	}
	cred, _ := v.(session.Credential)
	return cred
}
