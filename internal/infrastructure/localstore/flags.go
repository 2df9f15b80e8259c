// Package localstore persiste la bandera activo/inactivo por producto en un
// archivo JSON local. Es el análogo del localStorage del cliente original:
// deliberadamente desacoplada del estado del backend; no se inventa un campo
// en el API para "corregirla".
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// FlagStore guarda las banderas por ID de producto. Un producto sin entrada se
// considera activo.
type FlagStore struct {
	mu    sync.Mutex
	path  string
	flags map[string]bool
}

// NewFlagStore crea el store y carga el archivo si existe. Con path vacío opera
// sólo en memoria.
func NewFlagStore(path string) (*FlagStore, error) {
	s := &FlagStore{path: path, flags: make(map[string]bool)}
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("banderas: leer %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.flags); err != nil {
		return nil, fmt.Errorf("banderas: archivo corrupto %s: %w", path, err)
	}
	return s, nil
}

// Active devuelve la bandera del producto; sin entrada registrada es activo.
func (s *FlagStore) Active(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	active, ok := s.flags[strconv.Itoa(productID)]
	if !ok {
		return true
	}
	return active
}

// SetActive fija la bandera y la persiste de inmediato.
func (s *FlagStore) SetActive(productID int, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[strconv.Itoa(productID)] = active
	return s.persist()
}

// persist escribe el mapa completo; requiere el lock tomado.
func (s *FlagStore) persist() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("banderas: crear directorio: %w", err)
	}
	data, err := json.MarshalIndent(s.flags, "", "  ")
	if err != nil {
		return fmt.Errorf("banderas: serializar: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("banderas: escribir %s: %w", s.path, err)
	}
	return nil
}
