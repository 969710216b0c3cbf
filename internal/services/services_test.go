package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/springingstars/schooldash/internal/models"
	"github.com/springingstars/schooldash/internal/session"
	"github.com/springingstars/schooldash/internal/store"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

var testSignKey = []byte("test-signing-key")

const (
	testAvatarThreshold = 1024
	testUploadThreshold = 2 * 1024 * 1024
	testRetainThreshold = 1 * 1024 * 1024
	testHardLimit       = 10 * 1024 * 1024
)

type env struct {
	db      *sql.DB
	records *store.SQLiteStore
	gate    *session.Gate

	profiles      *ProfileService
	calendar      *CalendarService
	settings      *SettingsService
	reports       *ReportService
	notifications *NotificationService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE records (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
CREATE TABLE accounts (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  role TEXT NOT NULL,
  display_name TEXT NOT NULL,
  salt BLOB NOT NULL,
  verifier BLOB NOT NULL
);
`)
	require.NoError(t, err)
	require.NoError(t, session.SeedDefaultAccounts(context.Background(), db))

	records := store.NewSQLiteStore(db, 0)
	gate := session.NewGate(records, session.NewSQLiteAccountRepository(db), testSignKey, time.Hour)
	migrator := store.NewMigrator()
	notifications := NewNotificationService(records)

	return &env{
		db:            db,
		records:       records,
		gate:          gate,
		profiles:      NewProfileService(records, gate, migrator, notifications, testAvatarThreshold),
		calendar:      NewCalendarService(records, gate),
		settings:      NewSettingsService(records, migrator),
		reports:       NewReportService(records, gate, notifications, testUploadThreshold, testRetainThreshold, testHardLimit),
		notifications: notifications,
	}
}

func (e *env) loginTeacher(t *testing.T) models.Session {
	t.Helper()
	sess, err := e.gate.Login(context.Background(), "sarah.namubiru@springingstars.ac.ug", []byte("teacher123"))
	require.NoError(t, err)
	return *sess
}

func (e *env) loginAdmin(t *testing.T) models.Session {
	t.Helper()
	sess, err := e.gate.Login(context.Background(), "admin@springingstars.ac.ug", []byte("admin123"))
	require.NoError(t, err)
	return *sess
}
