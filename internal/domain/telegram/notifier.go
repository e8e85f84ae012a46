package telegram

import "context"

// Notifier defines an interface for delivering messages to the configured chat.
// This helps in decoupling the application logic from the specific bot library.
// Notify reports whether the delivery succeeded; implementations log failures
// with full detail themselves, so callers act on the flag and never escalate.
type Notifier interface {
	Notify(ctx context.Context, text string) bool
}
