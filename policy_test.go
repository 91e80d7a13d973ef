package offcache

import "testing"

func TestRoute(t *testing.T) {
	cases := []struct {
		path string
		want Policy
	}{
		{"/teknisi.html", NetworkFirst},
		{"/login.html", NetworkFirst},
		{"/dashboard.html", NetworkFirst},
		{"/nested/page.html", NetworkFirst},
		{"/manifest.json", CacheFirst},
		{"/static/app.js", CacheFirst},
		{"/static/style.css", CacheFirst},
		{"/uploads/foto_rumah.jpg", CacheFirst},
		{"/", CacheFirst},
		{"/html", CacheFirst}, // suffix match, not substring
	}
	for _, tc := range cases {
		if got := Route(DefaultDocumentSuffixes, tc.path); got != tc.want {
			t.Errorf("Route(%q) = %s, want %s", tc.path, got, tc.want)
		}
	}
}

func TestRouteCustomSuffixes(t *testing.T) {
	suffixes := []string{".html", ".htm"}
	if got := Route(suffixes, "/index.htm"); got != NetworkFirst {
		t.Fatalf("Route(/index.htm) = %s, want network-first", got)
	}
	if got := Route(nil, "/index.html"); got != CacheFirst {
		t.Fatalf("Route with no suffixes should always be cache-first, got %s", got)
	}
}
