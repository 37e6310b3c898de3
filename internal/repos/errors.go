package repos

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound indicates an unknown user.
	ErrNotFound = errors.New("repos: user not found")

	// ErrRateLimited indicates the API refused the request for quota reasons.
	ErrRateLimited = errors.New("repos: rate limited")

	// ErrEmptyUsername indicates a fetch without a username.
	ErrEmptyUsername = errors.New("repos: empty username")
)

// StatusError wraps a non-200 API response.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("repos: %s returned %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

func (e *StatusError) Unwrap() error {
	switch e.Code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusForbidden, http.StatusTooManyRequests:
		return ErrRateLimited
	}
	return nil
}
