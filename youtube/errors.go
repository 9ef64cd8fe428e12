package youtube

import "fmt"

// APIError is returned when the YouTube Data API answers with a non-2xx
// status. Body holds at most the first 500 bytes of the response body.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
}
