package natwest

import (
	"errors"

	"golang.org/x/oauth2"

	"github.com/openbanking-go/natwest-sandbox/httpwrap"
)

// Each stage of the flow fails with its own error kind so callers can tell
// which step aborted the run. The wrapped error keeps the upstream HTTP
// status and raw response body.

// AuthError is returned when the client-credentials grant fails.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string { return "client credentials token: " + e.Err.Error() }
func (e *AuthError) Unwrap() error { return e.Err }

// ConsentError is returned when consent creation fails. The server's
// problem payload is the primary diagnostic for missing API entitlements.
type ConsentError struct {
	Err error
}

func (e *ConsentError) Error() string { return "consent creation: " + e.Err.Error() }
func (e *ConsentError) Unwrap() error { return e.Err }

// AuthorizationError is returned when the sandbox auto-authorization or the
// code exchange fails. Server messages are passed through unmodified: they
// usually point at disabled sandbox feature flags (programmatic
// authorization, reduced security).
type AuthorizationError struct {
	Err error
}

func (e *AuthorizationError) Error() string { return "consent authorization: " + e.Err.Error() }
func (e *AuthorizationError) Unwrap() error { return e.Err }

// DataFetchError is returned when an account data call fails.
type DataFetchError struct {
	Err error
}

func (e *DataFetchError) Error() string { return "data fetch: " + e.Err.Error() }
func (e *DataFetchError) Unwrap() error { return e.Err }

// surfaceOAuthError rewraps an oauth2 retrieval failure as an
// httpwrap.HTTPError so token-endpoint errors carry status and body the
// same way every other call does.
func surfaceOAuthError(err error) error {
	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) && rerr.Response != nil {
		httpErr := httpwrap.HTTPError{
			Status:     rerr.Response.Status,
			StatusCode: rerr.Response.StatusCode,
			Body:       rerr.Body,
			Err:        err,
		}
		httpErr.Log()
		return httpErr
	}
	return err
}
