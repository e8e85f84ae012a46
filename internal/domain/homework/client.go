package homework

import "context"

// Client defines an interface for fetching homework review statuses.
// This helps in decoupling the polling logic from the concrete HTTP client.
// The returned value is the decoded but unvalidated response body; callers
// run it through CheckResponse before touching its contents.
type Client interface {
	HomeworkStatuses(ctx context.Context, from int64) (any, error)
}
