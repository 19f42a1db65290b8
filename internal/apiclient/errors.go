package apiclient

import (
	"errors"
	"fmt"
)

// ErrAuthExpired reports a 401 from the backend: the credential is no
// longer accepted and the session must be torn down.
var ErrAuthExpired = errors.New("session expired or rejected by server")

// NotFoundError reports a 404 for a referenced record. Callers degrade
// to a placeholder display value instead of failing the whole view.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.Path)
}

// ServerError reports any other non-2xx response, carrying the server's
// own message when it sent one.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server rejected request (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server rejected request (%d)", e.StatusCode)
}

// NetworkError reports a request that never completed. The view keeps
// its last good collection when it sees one of these.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
