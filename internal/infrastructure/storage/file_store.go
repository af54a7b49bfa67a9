// Package storage guarda los reportes generados en disco.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// FileStore escribe cada archivo en Dir mediante archivo temporal + rename,
// así un lector nunca ve un reporte a medio escribir.
type FileStore struct {
	Dir string
}

// NewFileStore crea el directorio si no existe.
func NewFileStore(dir string) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("storage: directorio vacío")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear %s: %w", dir, err)
	}
	return &FileStore{Dir: dir}, nil
}

// Put escribe content como Dir/name y devuelve la ruta final.
func (s *FileStore) Put(ctx context.Context, name string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	base := filepath.Base(name)
	if base != name || base == "." || base == ".." {
		return "", fmt.Errorf("storage: nombre de archivo inválido %q", name)
	}
	path := filepath.Join(s.Dir, base)
	if err := atomic.WriteFile(path, bytes.NewReader(content)); err != nil {
		return "", fmt.Errorf("storage: escribir %s: %w", path, err)
	}
	return path, nil
}
