package httpwrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGet_DecodesJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if accept := r.Header.Get("Accept"); accept != "application/json" {
			t.Errorf("expected Accept application/json, got %q", accept)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"value":"ok"}`)
	}))
	defer server.Close()

	var out struct {
		Value string `json:"value"`
	}
	err := NewClient().Get(context.Background(), server.URL, nil, nil, &out)
	if err != nil {
		t.Fatalf("Get returned an error: %v", err)
	}
	if out.Value != "ok" {
		t.Errorf("expected value ok, got %q", out.Value)
	}
}

func TestDoRequest_ErrorKeepsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"Message":"it broke"}`)
	}))
	defer server.Close()

	_, err := NewClient().DoRequest(context.Background(), http.MethodGet, server.URL, nil, nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	var httpErr HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %T: %v", err, err)
	}
	if httpErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", httpErr.StatusCode)
	}
	if string(httpErr.Body) != `{"Message":"it broke"}` {
		t.Errorf("expected the exact response body, got %q", httpErr.Body)
	}
	if !strings.Contains(httpErr.Error(), "it broke") {
		t.Errorf("expected the body in the error message, got %q", httpErr.Error())
	}
}

func TestWithBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok" {
			t.Errorf("expected Bearer tok, got %q", auth)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	err := NewClient().WithBearerToken("tok").Get(context.Background(), server.URL, nil, nil, nil)
	if err != nil {
		t.Fatalf("Get returned an error: %v", err)
	}
}

func TestWithoutRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "http://callback.example.org?code=X")
		w.WriteHeader(http.StatusFound)
	}))
	defer server.Close()

	client := NewClient().WithoutRedirects()
	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do returned an error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		t.Errorf("expected status 302, got %d", resp.StatusCode)
	}
	if location := resp.Header.Get("Location"); location != "http://callback.example.org?code=X" {
		t.Errorf("expected the Location header to be preserved, got %q", location)
	}
}
