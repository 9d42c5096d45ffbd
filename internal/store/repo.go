package store

import (
	"context"
	"errors"

	"github.com/ArthurHoang15/notification-server/internal/domain"
)

// ErrNotFound is returned when a user id does not exist.
var ErrNotFound = errors.New("not found")

// Repo defines storage operations for users and their reminders.
// The sweep only reads; the save methods exist for the ops tooling and
// tests that seed documents the way the mobile backend writes them.
type Repo interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)

	// ListActiveReminders returns the user's reminders with the
	// active flag set, already normalized to the canonical shape.
	ListActiveReminders(ctx context.Context, userID string) ([]domain.Reminder, error)

	// ListReminders returns all of the user's reminders, inactive
	// included. Used by the debug surface.
	ListReminders(ctx context.Context, userID string) ([]domain.Reminder, error)

	// SaveUser and SaveReminder upsert a raw JSON document in either
	// historical field-naming scheme. SaveReminder assigns an id when
	// the given one is empty and returns the effective id.
	SaveUser(ctx context.Context, id string, doc []byte) error
	SaveReminder(ctx context.Context, id, userID string, doc []byte) (string, error)

	Close() error
}
