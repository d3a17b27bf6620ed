package client

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// ErrSessionExpired reports that a read hit an expired session. The client
// already re-authenticated with its configured credentials; the caller
// should reissue the read to benefit from the fresh session.
var ErrSessionExpired = errors.New("relay: session expired, re-authenticated")

// StatusError is a non-2xx reply from the relay.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("relay: http %d: %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// IsAuthError reports whether the relay rejected the session token.
func (e *StatusError) IsAuthError() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// LoginError carries the status of a failed login or signup plus the
// message extracted from the response body, empty if the body had none.
type LoginError struct {
	Status  int
	Message string
}

func (e *LoginError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("relay: login failed with status %d", e.Status)
	}
	return fmt.Sprintf("relay: login failed with status %d: %s", e.Status, e.Message)
}

func isAuthError(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.IsAuthError()
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
