package fetch

import "fmt"

// StatusError is a non-2xx response. It is typed so callers can tell a
// rate-limited or erroring server from a page that genuinely does not exist.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch: %s returned status %d", e.URL, e.Code)
}
