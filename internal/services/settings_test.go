package services

import (
	"context"
	"testing"

	"github.com/springingstars/schooldash/internal/common"
	"github.com/springingstars/schooldash/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_FirstAccessSeedsDefaults(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	all, err := e.settings.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Springing Stars Junior School", all["schoolName"])

	_, ok, err := e.records.Get(ctx, "settings")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSettingsService_Typed(t *testing.T) {
	e := newEnv(t)

	s, err := e.settings.Typed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 50, s.PassMark)
	assert.Equal(t, "smtp.gmail.com", s.SMTPServer)
}

func TestSettingsService_SetPersists(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.NoError(t, e.settings.Set(ctx, "passMark", 60))

	fresh := NewSettingsService(e.records, store.NewMigrator())
	s, err := fresh.Typed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60, s.PassMark)
}

func TestSettingsService_SetUnknownNameRejected(t *testing.T) {
	e := newEnv(t)
	err := e.settings.Set(context.Background(), "passmark", 60)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestSettingsService_ExportJSON(t *testing.T) {
	e := newEnv(t)

	data, err := e.settings.ExportJSON(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"schoolName"`)
}
