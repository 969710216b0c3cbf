package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/springingstars/schooldash/internal/common"
	"github.com/springingstars/schooldash/internal/dbx"
)

// SQLiteStore persists records in a records(key, value) table.
type SQLiteStore struct {
	db dbx.DBTX

	// maxRecordBytes caps the serialized size of a single record, standing in
	// for the storage quota of the hosting environment. Zero means no cap.
	maxRecordBytes int
}

func NewSQLiteStore(db dbx.DBTX, maxRecordBytes int) *SQLiteStore {
	return &SQLiteStore{db: db, maxRecordBytes: maxRecordBytes}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get record[%s]: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	if s.maxRecordBytes > 0 && len(value) > s.maxRecordBytes {
		return fmt.Errorf("record[%s] is %d bytes: %w", key, len(value), common.ErrStoreFull)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		if strings.Contains(err.Error(), "database or disk is full") {
			return fmt.Errorf("failed to set record[%s]: %w", key, common.ErrStoreFull)
		}
		return fmt.Errorf("failed to set record[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to remove record[%s]: %w", key, err)
	}
	return nil
}
