package ledger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore key-value хранилище в локальном файле — аналог localStorage
// одного клиента. Ключ кодируется именем файла внутри каталога path.
type FileStore struct {
	dir string
}

// NewFileStore создает файловое хранилище в каталоге dir
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Get читает значение ключа
func (s *FileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - read file for key %q: %v", ErrExecQuery, key, err)
	}
	return data, true, nil
}

// Set перезаписывает значение ключа.
// Запись через временный файл и rename, чтобы падение процесса
// посреди записи не оставило полузаписанное состояние.
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: Set - create store directory: %v", ErrWriteFile, err)
	}

	target := s.path(key)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("%w: Set - write temp file: %v", ErrWriteFile, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("%w: Set - rename temp file: %v", ErrWriteFile, err)
	}

	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
