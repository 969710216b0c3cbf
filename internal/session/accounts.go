package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/springingstars/schooldash/internal/common"
	"github.com/springingstars/schooldash/internal/cryptox"
	"github.com/springingstars/schooldash/internal/dbx"
	"github.com/springingstars/schooldash/internal/models"
)

// Account is one row of the local account directory. Passwords are stored as
// (salt, verifier) pairs; the directory plays the part of the school's user
// database in this offline-first setup.
type Account struct {
	ID          string
	Email       string
	Role        models.Role
	DisplayName string
	Salt        []byte
	Verifier    []byte
}

// AccountRepository is the lookup surface the gate authenticates against.
type AccountRepository interface {
	// GetByEmail returns the account for email or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*Account, error)

	// Create inserts a new account.
	Create(ctx context.Context, account *Account) error

	// Count returns the number of accounts in the directory.
	Count(ctx context.Context) (int, error)
}

type SQLiteAccountRepository struct {
	db dbx.DBTX
}

func NewSQLiteAccountRepository(db dbx.DBTX) *SQLiteAccountRepository {
	return &SQLiteAccountRepository{db: db}
}

func (r *SQLiteAccountRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	a := &Account{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, role, display_name, salt, verifier FROM accounts WHERE email = ?`, email).
		Scan(&a.ID, &a.Email, &a.Role, &a.DisplayName, &a.Salt, &a.Verifier)
	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account[%s]: %w", email, err)
	}
	return a, nil
}

func (r *SQLiteAccountRepository) Create(ctx context.Context, account *Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, email, role, display_name, salt, verifier)
		VALUES (?, ?, ?, ?, ?, ?)
	`, account.ID, account.Email, account.Role, account.DisplayName, account.Salt, account.Verifier)
	if err != nil {
		return fmt.Errorf("failed to create account[%s]: %w", account.Email, err)
	}
	return nil
}

func (r *SQLiteAccountRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return n, nil
}

// NewAccount builds an account with a freshly salted verifier for password.
func NewAccount(id, email string, role models.Role, displayName string, password []byte) *Account {
	salt := common.GenerateRandByteArray(16)
	return &Account{
		ID:          id,
		Email:       email,
		Role:        role,
		DisplayName: displayName,
		Salt:        salt,
		Verifier:    cryptox.MakeVerifier(cryptox.DeriveKey(password, salt)),
	}
}

// SeedDefaultAccounts populates an empty directory with the demo accounts the
// dashboard ships with, one per role. An already-populated directory is left
// untouched.
func SeedDefaultAccounts(ctx context.Context, db *sql.DB) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteAccountRepository(tx)

		n, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		seeds := []struct {
			id, email   string
			role        models.Role
			displayName string
			password    string
		}{
			{"acc-admin", "admin@springingstars.ac.ug", models.RoleAdmin, "Head Teacher", "admin123"},
			{"acc-teacher-1", "sarah.namubiru@springingstars.ac.ug", models.RoleTeacher, "Sarah Namubiru", "teacher123"},
			{"acc-teacher-2", "john.musoke@springingstars.ac.ug", models.RoleTeacher, "John Musoke", "teacher123"},
			{"acc-staff-1", "grace.nakato@springingstars.ac.ug", models.RoleNonTeaching, "Grace Nakato", "staff123"},
			{"acc-parent-1", "david.kasozi@springingstars.ac.ug", models.RoleParent, "David Kasozi", "parent123"},
			{"acc-pupil-1", "amina.k@springingstars.ac.ug", models.RolePupil, "Amina Kintu", "pupil123"},
		}

		for _, s := range seeds {
			if err := repo.Create(ctx, NewAccount(s.id, s.email, s.role, s.displayName, []byte(s.password))); err != nil {
				return err
			}
		}
		return nil
	})
}
