package natwest

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/openbanking-go/natwest-sandbox/httpwrap"
	"github.com/openbanking-go/natwest-sandbox/types"
)

// CreateConsent posts an account-access consent with the fixed permission
// set and returns the server-assigned consent identifier.
func (s *Session) CreateConsent(ctx context.Context) (string, error) {
	if s.clientToken == "" {
		return "", &ConsentError{Err: errors.New("no client credentials token issued")}
	}

	url := s.aispURL("account-access-consents")
	logrus.WithField("url", url).Info("Creating account access consent")

	body := types.ConsentRequest{
		Data: types.ConsentRequestData{Permissions: ConsentPermissions},
		Risk: map[string]any{},
	}
	headers := httpwrap.NewHeader().WithBearerToken(s.clientToken)
	headers.AddContentType("application/json")

	var resp types.ConsentResponse
	if err := s.client.Post(ctx, url, body, headers, &resp); err != nil {
		return "", &ConsentError{Err: err}
	}
	if resp.Data.ConsentID == "" {
		return "", &ConsentError{Err: errors.New("response missing Data.ConsentId")}
	}

	logrus.WithFields(logrus.Fields{
		"consent_id": resp.Data.ConsentID,
		"status":     resp.Data.Status,
		"created":    resp.Data.CreationDateTime,
	}).Info("Consent created")

	s.consentID = resp.Data.ConsentID
	return resp.Data.ConsentID, nil
}
