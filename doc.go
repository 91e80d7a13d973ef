// Package offcache implements the offline caching layer of the WMS Dismantle
// dashboard: a versioned-bucket cache controller that intercepts outgoing HTTP
// requests and keeps a small fixed set of pages available without a network.
//
// Components:
//   - bucket.Store: named byte buckets with atomic batch population
//     (memory, Redis, BigCache, Ristretto backends).
//   - codec.Codec[*Response]: (de)serializes stored responses.
//   - Fetcher: the network primitive; HTTPFetcher wraps *http.Client.
//   - Transport: an http.RoundTripper that routes requests through an active
//     controller and passes through otherwise.
//
// Lifecycle:
//
//	ctrl, _ := offcache.New(offcache.Options{
//	    Version:  "wms-v3",
//	    Manifest: offcache.Manifest{"/teknisi.html", "/login.html", "/dashboard.html", "/manifest.json"},
//	    Buckets:  memory.New(),
//	})
//	_ = ctrl.Install(ctx)  // precache the manifest into bucket "wms-v3"
//	_ = ctrl.Activate(ctx) // evict every other bucket
//
// Exactly one bucket (the configured version tag) survives activation. While
// active, requests for page documents go network-first with a cache fallback;
// everything else is served cache-first. Static assets fetched on a cache miss
// are never written back: only the precache manifest is ever stored.
package offcache
