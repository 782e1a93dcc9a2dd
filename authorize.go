package natwest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/openbanking-go/natwest-sandbox/httpwrap"
	"github.com/openbanking-go/natwest-sandbox/types"
)

const stateChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func randomState() string {
	b := make([]byte, 16)
	for i := range b {
		b[i] = stateChars[rand.Intn(len(stateChars))]
	}
	return string(b)
}

// AuthorizeConsent drives the sandbox's programmatic approval of the
// consent created earlier and returns the one-time authorization code.
// The sandbox either answers with a redirect whose Location already holds
// the code, or (AUTO_POSTMAN) with a second hop that returns a JSON body
// carrying the redirect URI.
func (s *Session) AuthorizeConsent(ctx context.Context) (string, error) {
	if s.consentID == "" {
		return "", &AuthorizationError{Err: errors.New("no consent created")}
	}

	params := url.Values{}
	params.Set("client_id", s.creds.ClientID)
	params.Set("response_type", "code id_token")
	params.Set("scope", "openid accounts")
	params.Set("redirect_uri", s.creds.RedirectURI)
	params.Set("state", randomState())
	params.Set("request", s.consentID)
	params.Set("authorization_mode", AuthModeAutoPostman)
	params.Set("authorization_username", s.creds.AuthorizationUsername())
	params.Set("authorization_result", "APPROVED")
	params.Set("authorization_accounts", "*")

	logrus.WithFields(logrus.Fields{
		"consent_id": s.consentID,
		"username":   s.creds.AuthorizationUsername(),
	}).Info("Requesting sandbox auto-authorization")

	resp, err := s.doAuthorize(ctx, s.authorizeURL()+"?"+params.Encode())
	if err != nil {
		return "", &AuthorizationError{Err: err}
	}
	defer resp.Body.Close()

	if !isRedirect(resp.StatusCode) {
		return "", &AuthorizationError{Err: httpErrorFrom(resp)}
	}

	location := resp.Header.Get("Location")
	logrus.WithField("location", location).Debug("Authorization redirect received")

	if code, ok := extractCode(location); ok {
		logrus.Info("Authorization code obtained from redirect")
		return code, nil
	}

	// No code yet: the redirect points at the endpoint that completes the
	// programmatic approval.
	return s.followAuthorization(ctx, location)
}

func (s *Session) doAuthorize(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return s.client.Do(req)
}

func (s *Session) followAuthorization(ctx context.Context, location string) (string, error) {
	logrus.Debug("Following redirect to complete authorization")

	resp, err := s.doAuthorize(ctx, location)
	if err != nil {
		return "", &AuthorizationError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// AUTO_POSTMAN answers with JSON holding the final redirect URI.
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", &AuthorizationError{Err: err}
		}
		logrus.WithField("body", string(body)).Debug("Authorization response received")

		var auth types.AuthorizeResponse
		if err := json.Unmarshal(body, &auth); err != nil {
			return "", &AuthorizationError{Err: fmt.Errorf("authorization response is not JSON: %s", body)}
		}
		if auth.RedirectURI == "" {
			return "", &AuthorizationError{Err: fmt.Errorf("no redirectUri in authorization response: %s", body)}
		}
		code, ok := extractCode(auth.RedirectURI)
		if !ok {
			return "", &AuthorizationError{Err: fmt.Errorf("no authorization code in redirect URI %q", auth.RedirectURI)}
		}
		logrus.Info("Authorization code obtained from redirect URI")
		return code, nil

	case isRedirect(resp.StatusCode):
		// AUTO mode redirects straight back to the client with the code.
		location := resp.Header.Get("Location")
		code, ok := extractCode(location)
		if !ok {
			return "", &AuthorizationError{Err: fmt.Errorf("no authorization code in redirect %q", location)}
		}
		logrus.Info("Authorization code obtained from redirect")
		return code, nil

	default:
		return "", &AuthorizationError{Err: httpErrorFrom(resp)}
	}
}

func isRedirect(status int) bool {
	switch status {
	case http.StatusFound, http.StatusSeeOther, http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}

// extractCode pulls the authorization code out of a redirect URL, checking
// the query first and then the fragment.
func extractCode(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	if code := u.Query().Get("code"); code != "" {
		return code, true
	}
	if frag, err := url.ParseQuery(u.Fragment); err == nil {
		if code := frag.Get("code"); code != "" {
			return code, true
		}
	}
	return "", false
}

// httpErrorFrom reads an unexpected response into an HTTPError so the
// server's message survives unmodified.
func httpErrorFrom(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}
	httpErr := httpwrap.HTTPError{
		Status:     resp.Status,
		StatusCode: resp.StatusCode,
		Body:       body,
		Err:        fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
	httpErr.Log()
	return httpErr
}
