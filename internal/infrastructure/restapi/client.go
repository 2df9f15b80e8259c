// Package restapi implementa la capa de fetch: el cliente autenticado hacia el
// API REST de inventario. JSON sobre HTTPS, un header Authorization por petición
// derivado de la sesión inyectada. Los fallos de transporte y las respuestas
// no-2xx se capturan aquí, se loguean y suben como un único error tipado; nunca
// se reintentan automáticamente.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/induscore/inventario-panel/internal/application/session"
	"github.com/induscore/inventario-panel/internal/domain"
	"github.com/induscore/inventario-panel/pkg/config"
	"github.com/induscore/inventario-panel/pkg/logger"
)

// APIError es una respuesta no-2xx del upstream.
type APIError struct {
	Status int
	Path   string
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api inventario: %s respondió %d: %s", e.Path, e.Status, e.Body)
}

// IsUnauthorized informa si el error es un rechazo de credenciales del upstream.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// Client es el cliente base hacia el API de inventario.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente con el timeout de red configurado.
func NewClient(cfg config.APIConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		log:        log,
	}
}

// Ping valida la credencial con la llamada más barata del upstream.
// Se usa en el login: un 401 significa credenciales inválidas.
func (c *Client) Ping(ctx context.Context, cred session.Credential) error {
	err := c.get(ctx, cred, "/Ubicaciones/ListarUbicaciones", nil)
	if IsUnauthorized(err) {
		return domain.ErrInvalidCredentials
	}
	return err
}

// get ejecuta un GET JSON. out nulo descarta el cuerpo.
func (c *Client) get(ctx context.Context, cred session.Credential, path string, out any) error {
	return c.do(ctx, cred, http.MethodGet, path, nil, out)
}

// send ejecuta una mutación (POST/PUT/DELETE) con cuerpo JSON opcional.
func (c *Client) send(ctx context.Context, cred session.Credential, method, path string, body any) error {
	return c.do(ctx, cred, method, path, body, nil)
}

func (c *Client) do(ctx context.Context, cred session.Credential, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api inventario: serializar cuerpo de %s: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api inventario: construir petición %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", string(cred))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("metodo", method).Str("ruta", path).Msg("fallo de transporte hacia el upstream")
		return fmt.Errorf("%w: %s: %v", domain.ErrUpstreamDown, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Cuerpo truncado: suficiente para el log y el banner de error
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		apiErr := &APIError{Status: resp.StatusCode, Path: path, Body: strings.TrimSpace(string(raw))}
		c.log.Error().Int("estado", resp.StatusCode).Str("metodo", method).Str("ruta", path).Msg("respuesta no-2xx del upstream")
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api inventario: decodificar respuesta de %s: %w", path, err)
	}
	return nil
}
