package restapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/induscore/inventario-panel/internal/application/dto"
	"github.com/induscore/inventario-panel/internal/application/session"
	"github.com/induscore/inventario-panel/internal/domain"
	"github.com/induscore/inventario-panel/internal/domain/entity"
	"github.com/induscore/inventario-panel/internal/infrastructure/restapi"
	"github.com/induscore/inventario-panel/pkg/config"
	"github.com/induscore/inventario-panel/pkg/logger"
)

func newClient(t *testing.T, baseURL string) *restapi.Client {
	t.Helper()
	return restapi.NewClient(config.APIConfig{BaseURL: baseURL, TimeoutSeconds: 5}, logger.Nop())
}

const testCred = session.Credential("Basic dXN1YXJpbzpjbGF2ZQ==")

// Cada petición lleva el header Authorization de la sesión inyectada.
func TestClient_EnviaCredencialYDecodifica(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, string(testCred), r.Header.Get("Authorization"))
		assert.Equal(t, "/Producto/ListarProductos", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]entity.Product{
			{ID: 1, Code: "P1", Name: "Tornillo", LineName: "Ferretería"},
		})
	}))
	defer srv.Close()

	products, err := newClient(t, srv.URL).ListProducts(context.Background(), testCred)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Tornillo", products[0].Name)
}

// Una respuesta no-2xx sube como *APIError con el estado del upstream.
func TestClient_RespuestaNo2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "error interno del API", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).ListStock(context.Background(), testCred)
	require.Error(t, err)

	var apiErr *restapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "/Stock/ListarInfoStock", apiErr.Path)
	assert.False(t, restapi.IsUnauthorized(err))
}

// Un fallo de transporte (servidor inaccesible) también es error, distinto de APIError.
func TestClient_FalloDeTransporte(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // cerrado a propósito

	_, err := newClient(t, srv.URL).ListLocations(context.Background(), testCred)
	require.Error(t, err)

	var apiErr *restapi.APIError
	assert.False(t, errors.As(err, &apiErr), "un fallo de transporte no es una respuesta del API")
}

// Ping traduce el 401 del upstream a credenciales inválidas.
func TestClient_PingCredencialesInvalidas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != string(testCred) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode([]entity.Location{})
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	assert.NoError(t, c.Ping(context.Background(), testCred))
	assert.ErrorIs(t, c.Ping(context.Background(), session.Credential("Basic otro")), domain.ErrInvalidCredentials)
}

// Las mutaciones envían el cuerpo JSON con los nombres del upstream.
func TestClient_MutacionEnviaCuerpo(t *testing.T) {
	var recibido map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ProductoProveedor/CrearProductoProveedor", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recibido))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := newClient(t, srv.URL).CreateAssociation(context.Background(), testCred,
		dto.AssociationInput{ProductID: 3, SupplierID: 9})
	require.NoError(t, err)
	assert.EqualValues(t, 3, recibido["idProducto"])
	assert.EqualValues(t, 9, recibido["idProveedor"])
}
