package reconcile_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/induscore/inventario-panel/internal/domain/reconcile"
)

type lineaOrden struct {
	AsociacionID int
	Etiqueta     string
}

type asociacion struct {
	ID     int
	Nombre string
}

const placeholder = "Producto no encontrado"

func enriquecer(l lineaOrden, a asociacion, found bool) lineaOrden {
	if !found {
		l.Etiqueta = placeholder
		return l
	}
	l.Etiqueta = a.Nombre
	return l
}

// Toda clave presente en la referencia debe resolver a su etiqueta; toda clave
// ausente debe degradar al placeholder fijo, nunca a error.
func TestJoin_CompletitudYPlaceholder(t *testing.T) {
	lineas := []lineaOrden{{AsociacionID: 1}, {AsociacionID: 99}, {AsociacionID: 2}}
	refs := []asociacion{{ID: 1, Nombre: "Tornillo / Aceros SA"}, {ID: 2, Nombre: "Clavo / Ferrimport"}}

	out := reconcile.Join(lineas, refs,
		func(l lineaOrden) int { return l.AsociacionID },
		func(a asociacion) int { return a.ID },
		enriquecer,
	)

	require.Len(t, out, 3)
	assert.Equal(t, "Tornillo / Aceros SA", out[0].Etiqueta)
	assert.Equal(t, placeholder, out[1].Etiqueta)
	assert.Equal(t, "Clavo / Ferrimport", out[2].Etiqueta)
}

// El join no muta la colección fuente y preserva el orden de entrada.
func TestJoin_PuroYEstable(t *testing.T) {
	lineas := []lineaOrden{{AsociacionID: 2}, {AsociacionID: 1}}
	refs := []asociacion{{ID: 1, Nombre: "A"}, {ID: 2, Nombre: "B"}}

	out := reconcile.Join(lineas, refs,
		func(l lineaOrden) int { return l.AsociacionID },
		func(a asociacion) int { return a.ID },
		enriquecer,
	)

	assert.Equal(t, "", lineas[0].Etiqueta, "la fuente no debe mutarse")
	assert.Equal(t, 2, out[0].AsociacionID, "el orden de entrada se preserva")
	assert.Equal(t, 1, out[1].AsociacionID)
}

// Re-ejecutar el join sobre la misma entrada produce salida idéntica.
func TestJoin_Idempotente(t *testing.T) {
	lineas := []lineaOrden{{AsociacionID: 1}, {AsociacionID: 7}}
	refs := []asociacion{{ID: 1, Nombre: "A"}}

	key := func(l lineaOrden) int { return l.AsociacionID }
	refK := func(a asociacion) int { return a.ID }

	primera := reconcile.Join(lineas, refs, key, refK, enriquecer)
	segunda := reconcile.Join(lineas, refs, key, refK, enriquecer)
	assert.Equal(t, primera, segunda)
}

// Por encima del umbral el join cambia a índice; el resultado debe ser el mismo
// que con barrido lineal, incluida la regla de "gana la primera aparición".
func TestJoin_ConIndiceGrande(t *testing.T) {
	var refs []asociacion
	for i := 0; i < 1000; i++ {
		refs = append(refs, asociacion{ID: i, Nombre: fmt.Sprintf("ref-%d", i)})
	}
	// Clave duplicada: la primera debe ganar también en el camino indexado
	refs = append(refs, asociacion{ID: 500, Nombre: "duplicada"})

	lineas := []lineaOrden{{AsociacionID: 500}, {AsociacionID: 5000}}
	out := reconcile.Join(lineas, refs,
		func(l lineaOrden) int { return l.AsociacionID },
		func(a asociacion) int { return a.ID },
		enriquecer,
	)

	require.Len(t, out, 2)
	assert.Equal(t, "ref-500", out[0].Etiqueta)
	assert.Equal(t, placeholder, out[1].Etiqueta)
}

func TestJoin_EntradasVacias(t *testing.T) {
	key := func(l lineaOrden) int { return l.AsociacionID }
	refK := func(a asociacion) int { return a.ID }

	assert.Empty(t, reconcile.Join(nil, []asociacion{{ID: 1}}, key, refK, enriquecer))

	out := reconcile.Join([]lineaOrden{{AsociacionID: 1}}, nil, key, refK, enriquecer)
	require.Len(t, out, 1)
	assert.Equal(t, placeholder, out[0].Etiqueta, "sin referencia todo degrada a placeholder")
}
