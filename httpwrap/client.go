package httpwrap

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/proxy"
)

const DefaultClientTimeout = 10 * time.Second

// Client is a wrapper around http.Client that provides simplified HTTP methods.
type Client struct {
	httpClient  *http.Client
	proxy       string
	bearerToken string
}

// NewClient creates a new Client with the default timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: DefaultClientTimeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		},
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}

// HTTPClient exposes the underlying http.Client so it can be handed to
// libraries that expect one, such as golang.org/x/oauth2.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// DoRequest sends an HTTP request with the given method, URL, body, and headers.
// Any response with a status of 300 or above is converted into an HTTPError
// carrying the raw response body.
func (c *Client) DoRequest(ctx context.Context, method, url string, bodyReader io.Reader, headers Header) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, err
	}

	// Set headers
	for key, value := range headers {
		req.Header.Add(key, value)
	}
	// Default Content-Type
	if req.Header.Get("Content-Type") == "" && bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		defer func(Body io.ReadCloser) {
			err := Body.Close()
			if err != nil {
				logrus.Errorf("error closing response body: %v\n", err)
			}
		}(resp.Body)
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading response: %w", err)
		}
		httpErr := HTTPError{
			Status:     resp.Status,
			StatusCode: resp.StatusCode,
			Body:       respBody,
			Err:        fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
		httpErr.Log()
		return nil, httpErr
	}
	return resp.Body, nil
}

// Get sends an HTTP GET request and decodes the JSON response into obj.
func (c *Client) Get(ctx context.Context, baseURL string, urlParams url.Values, headers Header, obj any) error {
	// Parse the base URL
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	// Set the query parameters
	if urlParams != nil {
		parsedURL.RawQuery = urlParams.Encode()
	}

	respBody, err := c.DoRequest(ctx, http.MethodGet, parsedURL.String(), nil, headers)
	if err != nil {
		return err
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logrus.Errorf("error closing response body: %v\n", err)
		}
	}(respBody)

	if obj == nil {
		obj = make(map[string]interface{})
	}
	return json.NewDecoder(respBody).Decode(&obj)
}

// Post sends an HTTP POST request with a JSON body and decodes the JSON
// response into obj.
func (c *Client) Post(ctx context.Context, url string, body interface{}, headers Header, obj any) error {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewBuffer(bodyBytes)
	}
	respBody, err := c.DoRequest(ctx, http.MethodPost, url, bodyReader, headers)
	if err != nil {
		return err
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logrus.Errorf("error closing response body: %v\n", err)
		}
	}(respBody)

	if obj == nil {
		obj = make(map[string]interface{})
	}
	return json.NewDecoder(respBody).Decode(&obj)
}

// SetTimeout sets the timeout for the underlying http.Client.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}

// SetProxy sets the proxy for the underlying http.Client.
func (c *Client) SetProxy(proxyAddr string) error {
	if proxyAddr == "" {
		c.httpClient.Transport = &http.Transport{
			TLSNextProto: make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			DialContext: (&net.Dialer{
				Timeout: c.httpClient.Timeout,
			}).DialContext,
		}
	} else if strings.HasPrefix(proxyAddr, "http") {
		urlproxy, err := url.Parse(proxyAddr)
		if err != nil {
			return err
		}
		c.httpClient.Transport = &http.Transport{
			Proxy:        http.ProxyURL(urlproxy),
			TLSNextProto: make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			DialContext: (&net.Dialer{
				Timeout: c.httpClient.Timeout,
			}).DialContext,
		}
		c.proxy = proxyAddr
	} else if strings.HasPrefix(proxyAddr, "socks5") {
		baseDialer := &net.Dialer{
			Timeout:   c.httpClient.Timeout,
			KeepAlive: c.httpClient.Timeout,
		}
		proxyURL, err := url.Parse(proxyAddr)
		if err != nil {
			return err
		}

		// username password
		username := proxyURL.User.Username()
		password, _ := proxyURL.User.Password()

		// ip and port
		host := proxyURL.Hostname()
		port := proxyURL.Port()

		dialSocksProxy, err := proxy.SOCKS5("tcp", host+":"+port, &proxy.Auth{User: username, Password: password}, baseDialer)
		if err != nil {
			return errors.New("error creating socks5 proxy :" + err.Error())
		}
		if contextDialer, ok := dialSocksProxy.(proxy.ContextDialer); ok {
			dialContext := contextDialer.DialContext
			c.httpClient.Transport = &http.Transport{
				DialContext: dialContext,
			}
		} else {
			return errors.New("failed type assertion to DialContext")
		}
		c.proxy = proxyAddr
		return nil
	} else {
		return errors.New("only support http(s) or socks5 protocol")
	}
	return nil
}

func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.httpClient.Timeout = timeout
	return c
}

// WithoutRedirects stops the client from following redirects. Callers get
// the 3xx response back as-is, including its Location header.
func (c *Client) WithoutRedirects() *Client {
	c.httpClient.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return c
}

// WithBearerToken sets the Bearer Token for the client.
func (c *Client) WithBearerToken(token string) *Client {
	c.bearerToken = token
	c.httpClient.Transport = &BearerTransport{
		Transport: c.httpClient.Transport,
		Token:     token,
	}
	return c
}
