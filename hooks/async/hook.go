// usage:
//
// import (
//
//	"log/slog"
//
//	offcache "github.com/sidiksssss/wms-dismantle"
//	"github.com/sidiksssss/wms-dismantle/bucket/memory"
//	"github.com/sidiksssss/wms-dismantle/hooks/async"
//	"github.com/sidiksssss/wms-dismantle/sloghooks"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    PassthroughEvery: 10, // sample logs: ~every 10th passthrough
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	ctrl, _ := offcache.New(offcache.Options{
//	    Version:  "wms-v3",
//	    Manifest: offcache.Manifest{"/dashboard.html", "/manifest.json"},
//	    Buckets:  memory.New(),
//	    Hooks:    hooks, // or `raw` if you don’t want async
//	})
package asynchook

import (
	"sync"

	offcache "github.com/sidiksssss/wms-dismantle"
)

type Hooks struct {
	inner offcache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ offcache.Hooks = (*Hooks)(nil)

func New(inner offcache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) PrecacheError(v, p string, err error) {
	h.try(func() { h.inner.PrecacheError(v, p, err) })
}
func (h *Hooks) PrecacheComplete(v string, n int) { h.try(func() { h.inner.PrecacheComplete(v, n) }) }
func (h *Hooks) BucketEvicted(name string)        { h.try(func() { h.inner.BucketEvicted(name) }) }
func (h *Hooks) NetworkFallback(k string)         { h.try(func() { h.inner.NetworkFallback(k) }) }
func (h *Hooks) FetchPassthrough(k string)        { h.try(func() { h.inner.FetchPassthrough(k) }) }
func (h *Hooks) CorruptEntry(k, reason string)    { h.try(func() { h.inner.CorruptEntry(k, reason) }) }
func (h *Hooks) BucketGetError(k string, err error) {
	h.try(func() { h.inner.BucketGetError(k, err) })
}
