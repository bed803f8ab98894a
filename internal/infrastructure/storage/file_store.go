package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"randroom/pkg/logger"

	"github.com/sirupsen/logrus"
)

// FileStore хранит сохранение одним JSON-файлом.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Save пишет во временный файл рядом и атомарно переименовывает,
// чтобы прерванная запись не портила прошлое сохранение.
func (s *FileStore) Save(_ context.Context, rec *SaveRecord) error {
	data, err := encodeRecord(rec)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}

	f, err := os.CreateTemp(dir, "temp-"+filepath.Base(s.Path)+"-*")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp) // после Rename файла уже нет, ошибку игнорируем

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write save: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("sync save: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close save: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("rename save: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "file_store",
		"path":      s.Path,
		"bytes":     len(data),
	}).Info("Game saved.")
	return nil
}

func (s *FileStore) Load(_ context.Context) (*SaveRecord, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("read save: %w", err)
	}
	return decodeRecord(data)
}

func (s *FileStore) Close() error { return nil }
