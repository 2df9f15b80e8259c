package session_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/induscore/inventario-panel/internal/application/session"
	"github.com/induscore/inventario-panel/internal/domain"
)

func TestBasicCredential(t *testing.T) {
	// "usuario:clave" en base64
	assert.Equal(t, session.Credential("Basic dXN1YXJpbzpjbGF2ZQ=="),
		session.BasicCredential("usuario", "clave"))
}

func TestStore_CicloDeVida(t *testing.T) {
	store, err := session.NewStore("")
	require.NoError(t, err)

	sess, err := store.Create("maria", session.BasicCredential("maria", "secreta"))
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "maria", got.User)
	assert.Equal(t, sess.Credential, got.Credential)

	require.NoError(t, store.Delete(sess.ID))
	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Logout repetido no falla
	assert.NoError(t, store.Delete(sess.ID))
}

// Las sesiones persisten entre instancias del store (reinicio del proceso).
func TestStore_PersisteEntreReinicios(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sesiones.json")

	store, err := session.NewStore(path)
	require.NoError(t, err)
	sess, err := store.Create("pedro", session.BasicCredential("pedro", "clave"))
	require.NoError(t, err)

	reabierto, err := session.NewStore(path)
	require.NoError(t, err)
	got, err := reabierto.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "pedro", got.User)

	// El logout también persiste
	require.NoError(t, reabierto.Delete(sess.ID))
	tercero, err := session.NewStore(path)
	require.NoError(t, err)
	_, err = tercero.Get(sess.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
