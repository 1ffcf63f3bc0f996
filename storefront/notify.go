package storefront

import (
	"revorz_storefront/structs"
	"time"

	"github.com/google/uuid"
)

// NotificationLifetime is how long a notification stays on screen
const NotificationLifetime = 3 * time.Second

func NewNotification(typ structs.NotificationType, message string, now time.Time) structs.Notification {
	return structs.Notification{
		ID:             uuid.NewString(),
		Type:           typ,
		Message:        message,
		Color:          structs.NotificationColors[typ],
		DismissAfterMs: NotificationLifetime.Milliseconds(),
		ShownAt:        now,
	}
}

// Board holds the single visible notification; showing a new one replaces it.
type Board struct {
	current *structs.Notification
}

func (b *Board) Show(n structs.Notification) {
	b.current = &n
}

// Visible returns the current notification unless it has been dismissed by time
func (b *Board) Visible(now time.Time) (structs.Notification, bool) {
	if b.current == nil {
		return structs.Notification{}, false
	}
	if now.Sub(b.current.ShownAt) >= NotificationLifetime {
		b.current = nil
		return structs.Notification{}, false
	}
	return *b.current, true
}
