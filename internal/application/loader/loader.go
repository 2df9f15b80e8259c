// Package loader implementa la máquina de estados de carga de cada vista:
// inactivo → cargando → {listo | error}. listo vuelve a cargando sólo ante un
// refresco explícito (invalidación tras una mutación o petición del usuario);
// no existe estado "parcialmente listo" ni reintento automático.
package loader

import (
	"context"
	"sync"
)

// State es el estado de carga de un snapshot.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

// String devuelve el nombre del estado para logs y respuestas.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "inactivo"
	case StateLoading:
		return "cargando"
	case StateReady:
		return "listo"
	case StateError:
		return "error"
	default:
		return "desconocido"
	}
}

// Snapshot guarda el resultado reconciliado de una vista junto con su estado.
// El mutex serializa las cargas: mientras una petición carga, las demás esperan
// y reciben el mismo resultado, nunca datos parciales.
type Snapshot[T any] struct {
	mu    sync.Mutex
	state State
	data  T
	err   error
}

// New crea un snapshot en estado inactivo.
func New[T any]() *Snapshot[T] {
	return &Snapshot[T]{state: StateIdle}
}

// Load devuelve el dato si el estado es listo; si es inactivo ejecuta fetch y
// transiciona a listo o a error. En estado error devuelve el error almacenado
// sin volver a llamar a fetch: el reintento exige Invalidate explícito.
func (s *Snapshot[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateReady:
		return s.data, nil
	case StateError:
		var zero T
		return zero, s.err
	}

	s.state = StateLoading
	data, err := fetch(ctx)
	if err != nil {
		var zero T
		s.state = StateError
		s.data = zero
		s.err = err
		return zero, err
	}
	s.state = StateReady
	s.data = data
	s.err = nil
	return data, nil
}

// Invalidate descarta el dato y el error y vuelve a inactivo. Se invoca tras
// cada mutación exitosa (recarga completa, nunca parche optimista) o cuando el
// usuario pide un refresco.
func (s *Snapshot[T]) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	s.state = StateIdle
	s.data = zero
	s.err = nil
}

// State devuelve el estado actual.
func (s *Snapshot[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
