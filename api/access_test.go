package api

import (
	"net/http/httptest"
	"testing"
)

func TestBearerToken(t *testing.T) {
	type testCase struct {
		header string
		token  string
	}
	for _, tc := range []testCase{
		{"Bearer abc123", "abc123"},
		{"Bearer  abc123", ""},
		{"bearer abc123", ""},
		{"Basic abc123", ""},
		{"Bearer", ""},
		{"", ""},
	} {
		r := httptest.NewRequest("GET", "/", nil)
		if tc.header != "" {
			r.Header.Set("Authorization", tc.header)
		}
		if got := bearerToken(r); got != tc.token {
			t.Errorf("bearerToken(%q) should return %q but got %q", tc.header, tc.token, got)
		}
	}
}

func TestClientAddr(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.1.2.3:4567"
	if got := clientAddr(r); got != "10.1.2.3" {
		t.Errorf("clientAddr should strip the port, got %q", got)
	}
	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.1.2.3")
	if got := clientAddr(r); got != "203.0.113.9" {
		t.Errorf("clientAddr should prefer the first forwarded hop, got %q", got)
	}
}
