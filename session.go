// Package natwest fetches account data from the NatWest Open Banking
// sandbox: it obtains a client-credentials token, creates an
// account-access consent, drives the sandbox's programmatic approval to
// get an authorization code, exchanges it for a user token, and reads
// accounts, balances and transactions with it.
package natwest

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"

	"github.com/openbanking-go/natwest-sandbox/httpwrap"
)

// Session drives the linear sandbox flow: client credentials token,
// consent creation, auto-authorization, code exchange, then account data
// retrieval. Values obtained by one stage feed the next; nothing outlives
// the run.
type Session struct {
	creds    Credentials
	client   *httpwrap.Client
	apiBase  string
	authBase string

	timeout  time.Duration
	proxy    string
	txnLimit int

	clientToken string
	consentID   string
	userToken   string

	// dataClient carries the user token on its transport; it exists only
	// after the code exchange so the client token can never leak into data
	// calls.
	dataClient *httpwrap.Client
}

// NewSession creates a Session for the given credentials pointed at the
// sandbox hosts.
func NewSession(creds Credentials) *Session {
	return &Session{
		creds:    creds,
		client:   httpwrap.NewClient().WithoutRedirects(),
		apiBase:  BaseURL,
		authBase: AuthBaseURL,
		timeout:  httpwrap.DefaultClientTimeout,
		txnLimit: DefaultTransactionLimit,
	}
}

// WithTransactionLimit caps how many recent transactions are kept per
// account. Values below one keep the default.
func (s *Session) WithTransactionLimit(n int) *Session {
	if n > 0 {
		s.txnLimit = n
	}
	return s
}

// WithTimeout sets the per-request timeout for every HTTP call in the run.
func (s *Session) WithTimeout(timeout time.Duration) *Session {
	if timeout > 0 {
		s.timeout = timeout
		s.client.SetTimeout(timeout)
	}
	return s
}

// SetProxy routes all calls through an http(s) or socks5 proxy.
func (s *Session) SetProxy(proxyAddr string) error {
	if err := s.client.SetProxy(proxyAddr); err != nil {
		return err
	}
	s.proxy = proxyAddr
	return nil
}

// SetBaseURLs overrides the sandbox hosts. Used to point the session at a
// mock server in tests, and for the env-based host overrides.
func (s *Session) SetBaseURLs(apiBase, authBase string) {
	if apiBase != "" {
		s.apiBase = apiBase
	}
	if authBase != "" {
		s.authBase = authBase
	}
}

// ConsentID returns the consent identifier created in this run, if any.
func (s *Session) ConsentID() string {
	return s.consentID
}

func (s *Session) tokenURL() string {
	return s.apiBase + "/token"
}

func (s *Session) authorizeURL() string {
	return s.authBase + "/authorize"
}

func (s *Session) aispURL(resource string) string {
	return fmt.Sprintf("%s/open-banking/%s/aisp/%s", s.apiBase, APIVersion, resource)
}

// oauthContext makes golang.org/x/oauth2 use the session's HTTP client so
// timeout and proxy settings apply to token-endpoint calls too.
func (s *Session) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, s.client.HTTPClient())
}

// Run executes the whole flow and returns the assembled report. The first
// failing stage aborts the run with that stage's error kind.
func (s *Session) Run(ctx context.Context) (*Report, error) {
	if _, err := s.IssueClientToken(ctx); err != nil {
		return nil, err
	}
	if _, err := s.CreateConsent(ctx); err != nil {
		return nil, err
	}
	code, err := s.AuthorizeConsent(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.ExchangeCode(ctx, code); err != nil {
		return nil, err
	}
	return s.FetchReport(ctx)
}
