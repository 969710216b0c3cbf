package services

import (
	"context"
	"testing"

	"github.com/springingstars/schooldash/internal/common"
	"github.com/springingstars/schooldash/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_RecordPrependsNewestFirst(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.notifications.Record(ctx, models.NotificationProfileUpdate, "Sarah Namubiru", "Profile updated")
	require.NoError(t, err)
	second, err := e.notifications.Record(ctx, models.NotificationGradeUpdate, "John Musoke", "Grades submitted")
	require.NoError(t, err)

	feed, err := e.notifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, second.ID, feed[0].ID)
	assert.Equal(t, models.NotificationPending, feed[0].Status)
	assert.False(t, feed[0].Read)
}

func TestNotificationService_MarkRead(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	n, err := e.notifications.Record(ctx, models.NotificationBudget, "Grace Nakato", "Budget submitted")
	require.NoError(t, err)

	require.NoError(t, e.notifications.MarkRead(ctx, n.ID))
	assert.ErrorIs(t, e.notifications.MarkRead(ctx, "nope"), common.ErrNotFound)

	s, err := e.notifications.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Unread)
	assert.Equal(t, 1, s.Pending)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := e.notifications.Record(ctx, models.NotificationAssignment, "Sarah Namubiru", "Assignment created")
		require.NoError(t, err)
	}
	require.NoError(t, e.notifications.MarkAllRead(ctx))

	s, err := e.notifications.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 0, s.Unread)
}

func TestNotificationService_SetStatus(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	n, err := e.notifications.Record(ctx, models.NotificationReportUpload, "Sarah Namubiru", "New report uploaded")
	require.NoError(t, err)

	require.NoError(t, e.notifications.SetStatus(ctx, n.ID, models.NotificationApproved))

	feed, err := e.notifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, models.NotificationApproved, feed[0].Status)
	assert.True(t, feed[0].Read)

	s, err := e.notifications.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Pending)
}
