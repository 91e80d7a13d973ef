package offcache

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sidiksssss/wms-dismantle/bucket/memory"
)

type countingRoundTripper struct {
	inner http.RoundTripper
	calls int
}

func (rt *countingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.calls++
	return rt.inner.RoundTrip(req)
}

// TestTransportPassthroughUntilActive: before activation the Transport is
// invisible; afterwards requests are answered by the controller.
func TestTransportInterception(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "origin:"+r.URL.Path)
	}))
	defer srv.Close()

	cc, err := New(Options{
		Version:     "wms-v1",
		Manifest:    Manifest{"/dashboard.html", "/manifest.json"},
		Buckets:     memory.New(),
		Fetcher:     &HTTPFetcher{Client: srv.Client()},
		Origin:      srv.URL,
		SkipWaiting: true,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer cc.Close(ctx)

	base := &countingRoundTripper{inner: srv.Client().Transport}
	client := &http.Client{Transport: &Transport{Controller: cc, Base: base}}

	// not active yet: passthrough via Base
	resp, err := client.Get(srv.URL + "/dashboard.html")
	if err != nil {
		t.Fatalf("passthrough GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "origin:/dashboard.html" {
		t.Fatalf("passthrough body = %q", body)
	}
	if base.calls != 1 {
		t.Fatalf("expected passthrough to use Base, calls=%d", base.calls)
	}

	if err := cc.Install(ctx); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if err := cc.Activate(ctx); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	// active: the controller answers; cache-first asset never reaches Base
	resp, err = client.Get(srv.URL + "/manifest.json")
	if err != nil {
		t.Fatalf("intercepted GET: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "origin:/manifest.json" {
		t.Fatalf("intercepted body = %q", body)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("intercepted status = %d", resp.StatusCode)
	}
	if base.calls != 1 {
		t.Fatalf("intercepted request must not use Base, calls=%d", base.calls)
	}
}
