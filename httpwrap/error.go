package httpwrap

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// HTTPError is returned for any response with a non-2xx status. It keeps
// the raw response body so the server's problem payload reaches the caller
// verbatim.
type HTTPError struct {
	Status     string
	StatusCode int
	Body       []byte
	Err        error
}

func (e HTTPError) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)
}

func (e HTTPError) Unwrap() error {
	return e.Err
}

func (e HTTPError) Log() {
	logrus.WithFields(logrus.Fields{
		"status":  e.Status,
		"content": string(e.Body),
	}).Error("Unexpected response status")
}
