package sloghooks

import (
	"log/slog"
	"sync/atomic"

	offcache "github.com/sidiksssss/wms-dismantle"
)

type Options struct {
	// Sampling to avoid floods on the hot fetch path; 0/1 = log all.
	PassthroughEvery  uint64
	CorruptEntryEvery uint64
	// Optional key redactor for deployments whose URLs carry identifiers.
	// Defaults to identity (manifest paths are the operator's own).
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	passthroughCtr atomic.Uint64
	corruptCtr     atomic.Uint64
}

var _ offcache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	return k
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) PrecacheError(version, path string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("offcache.precache_error",
		"version", version,
		"path", path,
		"err", err)
}

func (h *Hooks) PrecacheComplete(version string, entries int) {
	if h.l == nil {
		return
	}
	h.l.Info("offcache.precache_complete",
		"version", version,
		"entries", entries)
}

func (h *Hooks) BucketEvicted(name string) {
	if h.l == nil {
		return
	}
	h.l.Info("offcache.bucket_evicted",
		"name", name)
}

func (h *Hooks) NetworkFallback(key string) {
	if h.l == nil {
		return
	}
	h.l.Info("offcache.network_fallback",
		"key", h.redact(key))
}

func (h *Hooks) FetchPassthrough(key string) {
	if h.l == nil || !sample(h.opts.PassthroughEvery, &h.passthroughCtr) {
		return
	}
	h.l.Debug("offcache.fetch_passthrough",
		"key", h.redact(key))
}

func (h *Hooks) CorruptEntry(key, reason string) {
	if h.l == nil || !sample(h.opts.CorruptEntryEvery, &h.corruptCtr) {
		return
	}
	h.l.Warn("offcache.corrupt_entry",
		"key", h.redact(key),
		"reason", reason)
}

func (h *Hooks) BucketGetError(key string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("offcache.bucket_get_error",
		"key", h.redact(key),
		"err", err)
}
