package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"randroom/pkg/logger"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const defaultSlot = "main"

// SQLiteStore хранит сохранение строкой таблицы saves.
type SQLiteStore struct {
	sqlDB *sql.DB
	slot  string
}

// OpenSQLite открывает базу и создает схему при необходимости.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS saves (
		slot     TEXT PRIMARY KEY,
		version  INTEGER NOT NULL,
		payload  BLOB NOT NULL,
		saved_at INTEGER NOT NULL
	)`
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create saves table: %w", err)
	}

	return &SQLiteStore{sqlDB: sqlDB, slot: defaultSlot}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, rec *SaveRecord) error {
	data, err := encodeRecord(rec)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO saves (slot, version, payload, saved_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET
		    version = excluded.version,
		    payload = excluded.payload,
		    saved_at = excluded.saved_at`,
		s.slot, rec.Version, data, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put save: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "sqlite_store",
		"slot":      s.slot,
		"bytes":     len(data),
	}).Info("Game saved.")
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (*SaveRecord, error) {
	var data []byte
	row := s.sqlDB.QueryRowContext(ctx, `SELECT payload FROM saves WHERE slot = ?`, s.slot)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSave
		}
		return nil, fmt.Errorf("get save: %w", err)
	}
	return decodeRecord(data)
}

// Close закрывает соединение с базой.
func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}
