package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound indica que la clave nunca fue escrita.
var ErrNotFound = errors.New("clave no encontrada en el almacenamiento")

// Store es el adaptador de persistencia clave-valor. Cada clave guarda una
// colección serializada como JSON, igual que el localStorage del panel
// original. Los llamadores tratan los fallos de lectura como "usar la
// semilla" y los de escritura como no fatales.
type Store interface {
	Load(key string, dest interface{}) error
	Save(key string, value interface{}) error
}

type FileStore struct {
	basePath string
}

func NewFileStore(basePath string) (*FileStore, error) {
	if _, err := os.Stat(basePath); os.IsNotExist(err) {
		if err := os.MkdirAll(basePath, 0755); err != nil {
			return nil, fmt.Errorf("no se pudo crear el directorio de almacenamiento: %w", err)
		}
	}
	return &FileStore{basePath: basePath}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.basePath, key+".json")
}

func (s *FileStore) Load(key string, dest interface{}) error {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(raw, dest)
}

func (s *FileStore) Save(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(key), raw, 0644)
}
