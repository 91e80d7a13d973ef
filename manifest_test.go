package offcache

import "testing"

func TestManifestValidate(t *testing.T) {
	cases := []struct {
		name    string
		m       Manifest
		wantErr bool
	}{
		{"dashboard set", Manifest{"/teknisi.html", "/login.html", "/dashboard.html", "/manifest.json"}, false},
		{"empty", Manifest{}, true},
		{"nil", nil, true},
		{"relative path", Manifest{"/a.html", "b.html"}, true},
		{"empty path", Manifest{""}, true},
		{"duplicate", Manifest{"/a.html", "/a.html"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.m.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() err=%v, wantErr=%v", err, tc.wantErr)
			}
		})
	}
}
