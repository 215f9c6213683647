package listview

import "cosmosexplorer/internal/notify"

// Notifier receives the failures of background fetches.
type Notifier interface {
	Error(message string) notify.Notification
}
