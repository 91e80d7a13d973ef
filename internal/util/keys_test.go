package util

import (
	"net/http"
	"testing"
)

func TestRequestKeyCanonicalization(t *testing.T) {
	cases := []struct {
		method, rawurl, want string
	}{
		{http.MethodGet, "/login.html", "GET /login.html"},
		{http.MethodGet, "https://wms.example.com/login.html", "GET /login.html"},
		{http.MethodGet, "http://other-host/login.html", "GET /login.html"},
		{http.MethodGet, "/data?status=pending", "GET /data?status=pending"},
		{http.MethodGet, "/dashboard.html#wo-42", "GET /dashboard.html"},
		{http.MethodGet, "https://wms.example.com", "GET /"},
		{http.MethodPost, "/login.html", "POST /login.html"},
	}
	for _, tc := range cases {
		if got := RequestKey(tc.method, tc.rawurl); got != tc.want {
			t.Errorf("RequestKey(%q, %q) = %q, want %q", tc.method, tc.rawurl, got, tc.want)
		}
	}
}

// The precached origin-relative path and the absolute runtime URL must map to
// the same key.
func TestRequestKeyPathMatchesAbsolute(t *testing.T) {
	rel := RequestKey(http.MethodGet, "/teknisi.html")
	abs := RequestKey(http.MethodGet, "https://wms.example.com/teknisi.html")
	if rel != abs {
		t.Fatalf("keys differ: %q vs %q", rel, abs)
	}
}
