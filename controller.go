package offcache

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sidiksssss/wms-dismantle/bucket"
	"github.com/sidiksssss/wms-dismantle/codec"
	"github.com/sidiksssss/wms-dismantle/internal/util"
	"github.com/sidiksssss/wms-dismantle/internal/wire"
)

// State is the controller lifecycle position.
type State uint8

const (
	StateNew State = iota
	StateInstalling
	StateWaiting   // installed; a prior instance still controls clients
	StateInstalled // installed; activation permitted
	StateActivating
	StateActive
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateInstalling:
		return "installing"
	case StateWaiting:
		return "waiting"
	case StateInstalled:
		return "installed"
	case StateActivating:
		return "activating"
	case StateActive:
		return "active"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

type controller struct {
	version  string
	manifest Manifest
	buckets  bucket.Store
	fetcher  Fetcher
	codec    codec.Codec[*Response]
	log      Logger
	hooks    Hooks

	origin      string
	docSuffixes []string
	skipWaiting bool
	enabled     bool

	mu    sync.RWMutex
	state State
}

func newController(opts Options) (*controller, error) {
	if opts.Version == "" {
		return nil, fmt.Errorf("offcache: version is required")
	}
	if opts.Buckets == nil {
		return nil, fmt.Errorf("offcache: bucket store is required")
	}
	if err := opts.Manifest.Validate(); err != nil {
		return nil, err
	}

	c := &controller{
		version:     opts.Version,
		manifest:    append(Manifest(nil), opts.Manifest...),
		buckets:     opts.Buckets,
		origin:      opts.Origin,
		skipWaiting: opts.SkipWaiting,
		enabled:     !opts.Disabled,
		state:       StateNew,
	}

	// defaults
	c.fetcher = coalesce[Fetcher](opts.Fetcher, &HTTPFetcher{})
	c.codec = coalesce[codec.Codec[*Response]](opts.Codec, codec.JSON[*Response]{})
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})

	if len(opts.DocumentSuffixes) > 0 {
		c.docSuffixes = append([]string(nil), opts.DocumentSuffixes...)
	} else {
		c.docSuffixes = DefaultDocumentSuffixes
	}

	return c, nil
}

func (c *controller) Version() string { return c.version }

func (c *controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *controller) Close(ctx context.Context) error {
	if c.buckets != nil {
		return c.buckets.Close(ctx)
	}
	return nil
}

// Install fetches every manifest resource and commits the whole batch into
// the bucket named by the version tag. The batch is assembled locally, so a
// mid-manifest failure writes nothing; a failed batch commit deletes the
// bucket it may have created.
func (c *controller) Install(ctx context.Context) error {
	if err := c.transition("install", StateNew, StateInstalling); err != nil {
		return err
	}

	if !c.enabled {
		c.setState(c.postInstallState())
		return nil
	}

	now := uint64(time.Now().Unix())
	entries := make(map[string][]byte, len(c.manifest))
	for _, path := range c.manifest {
		resp, err := c.fetcher.Do(ctx, NewRequest(http.MethodGet, c.origin+path))
		if err == nil && !resp.Ok() {
			err = fmt.Errorf("offcache: precache status %d", resp.Status)
		}
		if err != nil {
			c.hooks.PrecacheError(c.version, path, err)
			c.log.Error("precache fetch failed", Fields{"version": c.version, "path": path, "err": err})
			c.setState(StateNew)
			return &InstallError{Version: c.version, Path: path, FetchErr: err}
		}
		payload, err := c.codec.Encode(resp)
		if err != nil {
			c.hooks.PrecacheError(c.version, path, err)
			c.setState(StateNew)
			return &InstallError{Version: c.version, Path: path, FetchErr: err}
		}
		entries[util.RequestKey(http.MethodGet, path)] = wire.EncodeEntry(now, payload)
	}

	if err := c.buckets.PutAll(ctx, c.version, entries); err != nil {
		cleanupErr := c.buckets.Delete(ctx, c.version)
		c.hooks.PrecacheError(c.version, "", err)
		c.setState(StateNew)
		return &InstallError{Version: c.version, FetchErr: err, CleanupErr: cleanupErr}
	}

	c.hooks.PrecacheComplete(c.version, len(entries))
	c.log.Info("precache complete", Fields{"version": c.version, "entries": len(entries)})
	c.setState(c.postInstallState())
	return nil
}

func (c *controller) postInstallState() State {
	if c.skipWaiting {
		return StateInstalled
	}
	return StateWaiting
}

func (c *controller) Release() {
	c.mu.Lock()
	if c.state == StateWaiting {
		c.state = StateInstalled
	}
	c.mu.Unlock()
}

// Activate evicts every bucket other than the version bucket. Exactly one
// bucket survives; no grace period, no reference counting. Any eviction
// failure aborts the transition and the controller stays installed.
func (c *controller) Activate(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case StateWaiting:
		c.mu.Unlock()
		return ErrWaiting
	case StateInstalled:
		c.state = StateActivating
		c.mu.Unlock()
	default:
		have := c.state
		c.mu.Unlock()
		return &StateError{Op: "activate", Have: have, Want: StateInstalled}
	}

	if !c.enabled {
		c.setState(StateActive)
		return nil
	}

	names, err := c.buckets.Names(ctx)
	if err != nil {
		c.setState(StateInstalled)
		return fmt.Errorf("offcache: enumerate buckets: %w", err)
	}

	var errs []error
	for _, name := range names {
		if name == c.version {
			continue
		}
		if err := c.buckets.Delete(ctx, name); err != nil {
			errs = append(errs, fmt.Errorf("offcache: evict bucket %q: %w", name, err))
			continue
		}
		c.hooks.BucketEvicted(name)
		c.log.Debug("evicted stale bucket", Fields{"name": name})
	}
	if len(errs) > 0 {
		c.setState(StateInstalled)
		return errors.Join(errs...)
	}

	c.setState(StateActive)
	c.log.Info("controller active", Fields{"version": c.version})
	return nil
}

func (c *controller) HandleFetch(ctx context.Context, req *Request) (*Response, error) {
	if !c.enabled {
		return c.fetcher.Do(ctx, req)
	}
	if c.State() != StateActive {
		return nil, ErrNotActive
	}

	key := util.RequestKey(req.Method, req.URL)
	switch Route(c.docSuffixes, req.Path()) {
	case NetworkFirst:
		resp, err := c.fetcher.Do(ctx, req)
		if err == nil {
			return resp, nil
		}
		if cached, ok := c.lookup(ctx, key); ok {
			c.hooks.NetworkFallback(key)
			c.log.Debug("network failed; served cached document", Fields{"key": key, "err": err})
			return cached, nil
		}
		return nil, err
	default: // CacheFirst
		if cached, ok := c.lookup(ctx, key); ok {
			return cached, nil
		}
		// miss goes to the network; the result is not written back. Only the
		// precache manifest is ever stored.
		c.hooks.FetchPassthrough(key)
		return c.fetcher.Do(ctx, req)
	}
}

// lookup reads one entry from the version bucket. Errors and undecodable
// entries degrade to a miss; the bucket contract has no per-entry delete, so
// corrupt entries are reported through hooks rather than removed.
func (c *controller) lookup(ctx context.Context, key string) (*Response, bool) {
	raw, ok, err := c.buckets.Get(ctx, c.version, key)
	if err != nil {
		c.hooks.BucketGetError(key, err)
		c.log.Warn("bucket read error", Fields{"key": key, "err": err})
		return nil, false
	}
	if !ok {
		return nil, false
	}
	_, payload, err := wire.DecodeEntry(raw)
	if err != nil {
		c.hooks.CorruptEntry(key, "frame")
		return nil, false
	}
	resp, err := c.codec.Decode(payload)
	if err != nil {
		c.hooks.CorruptEntry(key, "payload")
		return nil, false
	}
	return resp, true
}

func (c *controller) transition(op string, from, to State) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != from {
		return &StateError{Op: op, Have: c.state, Want: from}
	}
	c.state = to
	return nil
}

func (c *controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}
