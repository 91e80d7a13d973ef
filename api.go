package offcache

import (
	"context"

	"github.com/sidiksssss/wms-dismantle/bucket"
	"github.com/sidiksssss/wms-dismantle/codec"
)

// Controller is the offline cache controller: one versioned bucket of
// precached responses plus a per-request routing policy. A controller moves
// through install -> activate -> active exactly once; bumping the version tag
// means building a new controller, whose activation evicts every bucket the
// previous generations left behind.
type Controller interface {
	// Version returns the configured version tag.
	Version() string

	// State reports the lifecycle position.
	State() State

	// Install fetches every manifest resource and commits the batch into the
	// version bucket. All-or-nothing: any failure leaves no bucket in control.
	Install(ctx context.Context) error

	// Activate deletes every bucket whose name differs from the version tag
	// and starts serving intercepted requests.
	Activate(ctx context.Context) error

	// Release models the superseded prior instance letting go of its clients.
	// Only meaningful when SkipWaiting is false.
	Release()

	// HandleFetch applies the routing policy to one intercepted request.
	// Returns ErrNotActive before activation completes.
	HandleFetch(ctx context.Context, req *Request) (*Response, error)

	// Close releases the bucket store.
	Close(ctx context.Context) error
}

// Options tune the controller.
// Only Version, Manifest and Buckets are required; others have sensible defaults.
type Options struct {
	// Required
	Version  string   // cache generation tag, e.g. "wms-v3"
	Manifest Manifest // precache paths; validated by New
	Buckets  bucket.Store

	Fetcher Fetcher                // nil => HTTPFetcher on http.DefaultClient
	Codec   codec.Codec[*Response] // nil => codec.JSON[*Response]
	Logger  Logger                 // nil => NopLogger
	Hooks   Hooks                  // nil => NopHooks

	// Origin is prefixed to manifest paths when building precache requests,
	// e.g. "https://wms.example.com". Required when Fetcher hits a real network.
	Origin string

	// DocumentSuffixes marks network-first page documents. nil => [".html"].
	DocumentSuffixes []string

	// SkipWaiting forcibly supersedes a still-active prior instance: Activate
	// is permitted as soon as Install returns instead of after Release.
	SkipWaiting bool

	// Disabled turns HandleFetch into a network passthrough and makes the
	// lifecycle transitions no-ops on the bucket store.
	Disabled bool
}

func New(opts Options) (Controller, error) {
	return newController(opts)
}
