package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/springingstars/schooldash/internal/config"
	"github.com/springingstars/schooldash/internal/logging"
	"github.com/springingstars/schooldash/internal/services"
	"github.com/springingstars/schooldash/internal/session"
	"github.com/springingstars/schooldash/internal/store"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	log    logging.Logger
	reader *bufio.Reader

	db   *sql.DB
	gate *session.Gate

	profiles      *services.ProfileService
	calendar      *services.CalendarService
	settings      *services.SettingsService
	reports       *services.ReportService
	notifications *services.NotificationService
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := store.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	if err := session.SeedDefaultAccounts(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	records := store.NewSQLiteStore(db, c.MaxRecordBytes)
	gate := session.NewGate(records, session.NewSQLiteAccountRepository(db), []byte(c.SessionKey), c.SessionValidity)
	migrator := store.NewMigrator()
	notifications := services.NewNotificationService(records)

	return &App{
		config:        c,
		log:           log,
		reader:        bufio.NewReader(os.Stdin),
		db:            db,
		gate:          gate,
		profiles:      services.NewProfileService(records, gate, migrator, notifications, c.RetainInlineThreshold),
		calendar:      services.NewCalendarService(records, gate),
		settings:      services.NewSettingsService(records, migrator),
		reports:       services.NewReportService(records, gate, notifications, c.UploadInlineThreshold, c.RetainInlineThreshold, c.UploadHardLimit),
		notifications: notifications,
	}, nil
}

// Run restores a surviving session and hands control to the REPL. It blocks
// until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	if err := a.gate.Restore(ctx); err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.gate.Authenticated()
}
