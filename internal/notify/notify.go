// Package notify defines the user-feedback contract between the
// transaction store and whatever surface presents messages to the user.
package notify

import "log/slog"

// Kind classifies a notification.
type Kind string

// Notification kinds.
const (
	Success Kind = "success"
	Error   Kind = "error"
	Warning Kind = "warning"
	Info    Kind = "info"
)

// Notifier consumes success/error events from the store. Implementations
// decide how (or whether) to surface them; the store never depends on
// anything beyond this contract.
type Notifier interface {
	Notify(kind Kind, message string)
}

// LogNotifier routes notifications to the default slog logger. It is the
// fallback for non-interactive callers.
type LogNotifier struct{}

// Notify implements Notifier.
func (LogNotifier) Notify(kind Kind, message string) {
	switch kind {
	case Error:
		slog.Error(message)
	case Warning:
		slog.Warn(message)
	default:
		slog.Info(message)
	}
}

// Discard is a Notifier that drops every notification.
type Discard struct{}

// Notify implements Notifier.
func (Discard) Notify(Kind, string) {}
