package natwest

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/openbanking-go/natwest-sandbox/httpwrap"
)

// IssueClientToken performs the client-credentials grant and returns the
// bearer token scoped to consent creation.
func (s *Session) IssueClientToken(ctx context.Context) (string, error) {
	logrus.WithField("token_url", s.tokenURL()).Info("Requesting client credentials token")

	conf := &clientcredentials.Config{
		ClientID:     s.creds.ClientID,
		ClientSecret: s.creds.ClientSecret,
		TokenURL:     s.tokenURL(),
		Scopes:       []string{"accounts"},
		// The sandbox wants client_id and client_secret in the form body.
		AuthStyle: oauth2.AuthStyleInParams,
	}
	tok, err := conf.Token(s.oauthContext(ctx))
	if err != nil {
		return "", &AuthError{Err: surfaceOAuthError(err)}
	}

	logrus.WithFields(logrus.Fields{
		"token_type": tok.TokenType,
		"expiry":     tok.Expiry,
	}).Info("Client credentials token obtained")

	s.clientToken = tok.AccessToken
	return tok.AccessToken, nil
}

// ExchangeCode trades the one-time authorization code for the user-scoped
// access token and prepares the bearer client used for all data calls.
func (s *Session) ExchangeCode(ctx context.Context, code string) (string, error) {
	logrus.WithField("token_url", s.tokenURL()).Info("Exchanging authorization code")

	conf := &oauth2.Config{
		ClientID:     s.creds.ClientID,
		ClientSecret: s.creds.ClientSecret,
		RedirectURL:  s.creds.RedirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:   s.authorizeURL(),
			TokenURL:  s.tokenURL(),
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	tok, err := conf.Exchange(s.oauthContext(ctx), code)
	if err != nil {
		return "", &AuthorizationError{Err: surfaceOAuthError(err)}
	}

	logrus.WithFields(logrus.Fields{
		"token_type": tok.TokenType,
		"expiry":     tok.Expiry,
	}).Info("User access token obtained")

	s.userToken = tok.AccessToken

	// Proxy must be set before the bearer transport wraps it.
	dataClient := httpwrap.NewClient().WithTimeout(s.timeout)
	if s.proxy != "" {
		if err := dataClient.SetProxy(s.proxy); err != nil {
			return "", &AuthorizationError{Err: err}
		}
	}
	s.dataClient = dataClient.WithBearerToken(tok.AccessToken)
	return tok.AccessToken, nil
}
