package structs

import "time"

type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
	NotificationError   NotificationType = "error"
)

// NotificationColors maps a notification type to its background color
var NotificationColors = map[NotificationType]string{
	NotificationSuccess: "#10b981",
	NotificationWarning: "#f59e0b",
	NotificationInfo:    "#2563eb",
	NotificationError:   "#ef4444",
}

// Notification is a transient message shown to the shopper
type Notification struct {
	ID             string           `json:"id"`
	Type           NotificationType `json:"type"`
	Message        string           `json:"message"`
	Color          string           `json:"color"`
	DismissAfterMs int64            `json:"dismissAfterMs"`
	ShownAt        time.Time        `json:"shownAt"`
}

// Navigation is a pending page change; AfterMs > 0 delays it so a notification stays visible.
type Navigation struct {
	Target  string `json:"target"`
	AfterMs int64  `json:"afterMs,omitempty"`
}
