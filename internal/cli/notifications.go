package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/springingstars/schooldash/internal/models"
)

func (a *App) listNotifications(ctx context.Context) error {
	items, err := a.notifications.List(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No notifications")
		return nil
	}
	for _, n := range items {
		read := " "
		if !n.Read {
			read = "*"
		}
		fmt.Printf("%s %s  %s  %s: %s (%s)\n", read, n.ID, n.Timestamp.Format("2006-01-02 15:04"), n.Actor, n.Message, n.Status)
	}

	s, err := a.notifications.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%d unread, %d pending\n", s.Unread, s.Pending)
	return nil
}

func (a *App) markNotificationRead(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Notification id (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	if id == "" {
		return a.notifications.MarkAllRead(ctx)
	}
	return a.notifications.MarkRead(ctx, id)
}

// decideNotification approves or rejects a pending entry. Decisions are an
// admin operation.
func (a *App) decideNotification(ctx context.Context, status models.NotificationStatus) error {
	sess, err := a.gate.Current()
	if err != nil {
		return err
	}
	if sess.Role != models.RoleAdmin {
		fmt.Println("Only administrators can decide notifications")
		return nil
	}

	id, err := getSimpleText(a.reader, "Notification id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.notifications.SetStatus(ctx, id, status); err != nil {
		return err
	}
	fmt.Printf("Marked %s\n", status)
	return nil
}
