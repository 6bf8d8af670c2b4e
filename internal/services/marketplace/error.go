package marketplace

import "fmt"

// StatusError is returned when a marketplace API answers with a non-2xx
// status. The response body is kept verbatim for the logs.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API request failed: %d - %s", e.Code, e.Body)
}
