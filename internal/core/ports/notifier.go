package ports

import "context"

// Notifier delivers best-effort push notifications about lifecycle changes.
// Implementations log and swallow delivery failures; a notification must
// never block or fail a transition, so callers ignore the outcome.
type Notifier interface {
	Notify(ctx context.Context, recipientID string, title, body string)
}
