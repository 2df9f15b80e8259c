package loader_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/induscore/inventario-panel/internal/application/loader"
)

func TestSnapshot_InactivoACargandoAListo(t *testing.T) {
	snap := loader.New[int]()
	assert.Equal(t, loader.StateIdle, snap.State())

	llamadas := 0
	got, err := snap.Load(context.Background(), func(context.Context) (int, error) {
		llamadas++
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, loader.StateReady, snap.State())

	// En listo no se vuelve a cargar
	got, err = snap.Load(context.Background(), func(context.Context) (int, error) {
		llamadas++
		return 0, errors.New("no debería ejecutarse")
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, llamadas)
}

// Una carga fallida deja el snapshot en error y no reintenta sola.
func TestSnapshot_ErrorSinReintentoAutomatico(t *testing.T) {
	snap := loader.New[int]()
	fallo := errors.New("upstream caído")

	llamadas := 0
	_, err := snap.Load(context.Background(), func(context.Context) (int, error) {
		llamadas++
		return 0, fallo
	})
	assert.ErrorIs(t, err, fallo)
	assert.Equal(t, loader.StateError, snap.State())

	// Siguiente Load devuelve el mismo error almacenado sin llamar a fetch
	_, err = snap.Load(context.Background(), func(context.Context) (int, error) {
		llamadas++
		return 7, nil
	})
	assert.ErrorIs(t, err, fallo)
	assert.Equal(t, 1, llamadas)
}

// Invalidate es el refresco explícito: desde listo o error se vuelve a cargar.
func TestSnapshot_InvalidateRecarga(t *testing.T) {
	snap := loader.New[string]()

	_, err := snap.Load(context.Background(), func(context.Context) (string, error) {
		return "", errors.New("primer intento falla")
	})
	require.Error(t, err)

	snap.Invalidate()
	assert.Equal(t, loader.StateIdle, snap.State())

	got, err := snap.Load(context.Background(), func(context.Context) (string, error) {
		return "recargado", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "recargado", got)
	assert.Equal(t, loader.StateReady, snap.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "inactivo", loader.StateIdle.String())
	assert.Equal(t, "cargando", loader.StateLoading.String())
	assert.Equal(t, "listo", loader.StateReady.String())
	assert.Equal(t, "error", loader.StateError.String())
}
