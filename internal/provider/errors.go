package provider

import "fmt"

// StatusError reports a non-success response from an upstream job API. The
// status and body are kept so the failure can be diagnosed from the error
// message alone.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %d: %s", e.Provider, e.StatusCode, e.Body)
}
