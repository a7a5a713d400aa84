// Package crawl drives career-page discovery, fetching, and posting
// extraction for one company, with per-URL failure isolation.
package crawl

import "fmt"

// ValidationError reports caller misuse, such as an empty root URL.
// It is the only crawl error surfaced to callers; network-level failures
// are recovered per URL inside the session.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}
