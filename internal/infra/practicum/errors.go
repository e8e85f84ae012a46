package practicum

import "fmt"

// TransportError reports that the status request could not be completed at
// all: DNS failure, refused connection, timeout.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("homework API unreachable at %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports a reply with any HTTP status other than 200 OK.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("homework API returned HTTP %d for %s", e.Code, e.URL)
}

// APIError reports a 200 reply whose body carries an error indicator
// instead of homework data.
type APIError struct {
	Key   string
	Value any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("homework API rejected the request: %s=%v", e.Key, e.Value)
}
