package crawler

import (
	"errors"
	"fmt"
	"time"
)

// ThrottledError captures throttling responses from the archive site.
type ThrottledError struct {
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *ThrottledError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "archive throttled the request"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsThrottledError attempts to unwrap an error into a ThrottledError.
func AsThrottledError(err error) (*ThrottledError, bool) {
	var tErr *ThrottledError
	if errors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}
