package fxrates

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	// plain http client: the disk cache would leak state between tests.
	return &Client{BaseURL: srv.URL, HTTP: srv.Client()}
}

func TestLatest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/latest/HKD":
			fmt.Fprint(w, `{"result":"success","rates":{"CNY":0.93,"USD":0.128}}`)
		case "/latest/USD":
			fmt.Fprint(w, `{"result":"success","rates":{"CNY":7.24,"HKD":7.8}}`)
		default:
			http.NotFound(w, r)
		}
	})

	rates, err := c.Latest()
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if rates.HKDToRMB.InexactFloat64() != 0.93 {
		t.Errorf("HKDToRMB = %s, want 0.93", rates.HKDToRMB)
	}
	if rates.USDToRMB.InexactFloat64() != 7.24 {
		t.Errorf("USDToRMB = %s, want 7.24", rates.USDToRMB)
	}
}

func TestLatest_missingRate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":"success","rates":{"EUR":1.0}}`)
	})
	if _, err := c.Latest(); err == nil {
		t.Error("Latest() accepted a response without a CNY rate")
	}
}

func TestLatest_badStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})
	if _, err := c.Latest(); err == nil {
		t.Error("Latest() accepted a non-2xx response")
	}
}

func TestLatest_nonPositiveRate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":"success","rates":{"CNY":0}}`)
	})
	if _, err := c.Latest(); err == nil {
		t.Error("Latest() accepted a zero rate; the converter divides by it")
	}
}
