// Package session implements the session gate: the single authority for who
// is signed in. It resolves the current owner id, scopes all owner-specific
// store access to it, and owns the lifecycle of the session record.
//
// The gate is a two-state machine, Anonymous or Authenticated(owner, role).
// Logout removes only the session record; profile, calendar and report
// records belonging to the owner stay in place for the next login.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/springingstars/schooldash/internal/common"
	"github.com/springingstars/schooldash/internal/cryptox"
	"github.com/springingstars/schooldash/internal/models"
	"github.com/springingstars/schooldash/internal/store"
)

type Gate struct {
	records  store.RecordStore
	accounts AccountRepository
	signKey  []byte
	validity time.Duration

	current *models.Session
}

func NewGate(records store.RecordStore, accounts AccountRepository, signKey []byte, validity time.Duration) *Gate {
	return &Gate{records: records, accounts: accounts, signKey: signKey, validity: validity}
}

// Login authenticates email/password against the account directory. On
// success it writes the session record and transitions to Authenticated.
// On any failure the state and the store are left untouched.
func (g *Gate) Login(ctx context.Context, email string, password []byte) (*models.Session, error) {
	account, err := g.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if !cryptox.VerifierMatches(password, account.Salt, account.Verifier) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := GenerateToken(account.ID, account.Role, account.DisplayName, g.signKey, g.validity)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session: %w", err)
	}

	sess := models.Session{
		OwnerID:     account.ID,
		Role:        account.Role,
		DisplayName: account.DisplayName,
		Email:       account.Email,
		Token:       token,
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}
	if err := g.records.Set(ctx, store.BuildKey(store.KindSession, ""), raw); err != nil {
		return nil, err
	}

	g.current = &sess
	return &sess, nil
}

// Restore rehydrates the session from the store, e.g. after a restart. A
// missing record, a corrupt record, or a record whose token fails
// verification all leave the gate Anonymous; none of them is an error.
func (g *Gate) Restore(ctx context.Context) error {
	raw, ok, err := g.records.Get(ctx, store.BuildKey(store.KindSession, ""))
	if err != nil {
		return err
	}
	if !ok {
		g.current = nil
		return nil
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		g.current = nil
		return nil
	}

	claims, err := ParseToken(sess.Token, g.signKey)
	if err != nil || claims.Subject != sess.OwnerID || claims.Role != sess.Role {
		g.current = nil
		return nil
	}

	g.current = &sess
	return nil
}

// Logout removes the session record and transitions to Anonymous. Owner-scoped
// records are deliberately not touched.
func (g *Gate) Logout(ctx context.Context) error {
	if err := g.records.Remove(ctx, store.BuildKey(store.KindSession, "")); err != nil {
		return err
	}
	g.current = nil
	return nil
}

// Authenticated reports whether someone is signed in.
func (g *Gate) Authenticated() bool {
	return g.current != nil
}

// Current returns the active session or common.ErrNotAuthenticated.
func (g *Gate) Current() (models.Session, error) {
	if g.current == nil {
		return models.Session{}, common.ErrNotAuthenticated
	}
	return *g.current, nil
}

// OwnerKey builds the storage key of an owner-scoped kind for the signed-in
// owner. Operating with no authenticated owner is an error, not a no-op.
func (g *Gate) OwnerKey(kind store.Kind) (string, error) {
	sess, err := g.Current()
	if err != nil {
		return "", err
	}
	return store.BuildKey(kind, sess.OwnerID), nil
}
