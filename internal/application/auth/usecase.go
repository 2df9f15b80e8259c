// Package auth implementa el login/logout del panel. Las credenciales se
// validan contra el API de inventario (una llamada barata con el header Basic
// derivado); si pasan, la sesión se persiste y el panel emite su propio JWT
// que sólo transporta el ID de sesión.
package auth

import (
	"context"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/application/session"
	"github.com/induscore/inventario-panel/internal/domain"
	"github.com/induscore/inventario-panel/pkg/jwt"
)

// UpstreamPinger valida una credencial contra el upstream.
type UpstreamPinger interface {
	Ping(ctx context.Context, cred session.Credential) error
}

// JWTConfig parámetros de emisión de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación del panel.
type AuthUseCase struct {
	api      UpstreamPinger
	sessions *session.Store
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(api UpstreamPinger, sessions *session.Store, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{api: api, sessions: sessions, jwtCfg: jwtCfg}
}

// Login deriva la credencial Basic, la valida contra el upstream, crea la
// sesión persistida y devuelve el token del panel.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.User == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	cred := session.BasicCredential(in.User, in.Password)
	if err := uc.api.Ping(ctx, cred); err != nil {
		return nil, err
	}
	sess, err := uc.sessions.Create(in.User, cred)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, sess.ID, in.User, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		// La sesión sin token emitido no sirve; se revierte
		_ = uc.sessions.Delete(sess.ID)
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: in.User}, nil
}

// Logout elimina la sesión persistida. Idempotente.
func (uc *AuthUseCase) Logout(sessionID string) error {
	return uc.sessions.Delete(sessionID)
}

// Resolve devuelve la sesión activa por ID (la usa el middleware HTTP).
func (uc *AuthUseCase) Resolve(sessionID string) (session.Session, error) {
	return uc.sessions.Get(sessionID)
}
