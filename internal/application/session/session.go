// Package session maneja las sesiones del panel. El estado es un objeto
// explícito que se inyecta donde se necesita; no hay singleton de paquete.
// La credencial del upstream viaja como argumento hacia la capa de fetch.
package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/induscore/inventario-panel/internal/domain"
)

// Credential es el valor completo del header Authorization hacia el API de
// inventario, derivado de las credenciales entregadas en el login.
type Credential string

// BasicCredential construye la credencial estilo Basic a partir de usuario y clave.
func BasicCredential(user, password string) Credential {
	raw := base64.StdEncoding.EncodeToString([]byte(user + ":" + password))
	return Credential("Basic " + raw)
}

// Session es una sesión activa del panel: quién es el usuario y con qué
// credencial se habla con el upstream.
type Session struct {
	ID         string     `json:"id"`
	User       string     `json:"usuario"`
	Credential Credential `json:"credencial"`
	CreatedAt  time.Time  `json:"creadaEn"`
}

// Store guarda las sesiones activas y las persiste a un archivo JSON para que
// sobrevivan reinicios. Se inicializa al arranque desde el archivo persistido y
// sólo muta por login/logout explícitos. Con path vacío opera sólo en memoria.
type Store struct {
	mu       sync.RWMutex
	path     string
	sessions map[string]Session
}

// NewStore crea el store y carga las sesiones persistidas si el archivo existe.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path, sessions: make(map[string]Session)}
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sesiones: leer %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.sessions); err != nil {
		return nil, fmt.Errorf("sesiones: archivo corrupto %s: %w", path, err)
	}
	return s, nil
}

// Create registra una sesión nueva para el usuario y la persiste.
func (s *Store) Create(user string, cred Credential) (Session, error) {
	sess := Session{
		ID:         uuid.New().String(),
		User:       user,
		Credential: cred,
		CreatedAt:  time.Now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	if err := s.persist(); err != nil {
		delete(s.sessions, sess.ID)
		return Session{}, err
	}
	return sess, nil
}

// Get devuelve la sesión por ID o domain.ErrSessionNotFound.
func (s *Store) Get(id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, domain.ErrSessionNotFound
	}
	return sess, nil
}

// Delete elimina la sesión (logout) y persiste. Eliminar una sesión inexistente
// no es error: el logout es idempotente.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return s.persist()
}

// persist escribe el mapa de sesiones; requiere el lock tomado.
func (s *Store) persist() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("sesiones: crear directorio: %w", err)
	}
	data, err := json.MarshalIndent(s.sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("sesiones: serializar: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("sesiones: escribir %s: %w", s.path, err)
	}
	return nil
}
