// Package ristretto provides a Ristretto-backed bucket store. Ristretto's
// admission policy may reject writes under cost pressure, so PutAll waits for
// the buffers to drain and verifies every entry landed; a rejected entry
// fails the whole batch, preserving the all-or-nothing contract.
package ristretto

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	rc "github.com/dgraph-io/ristretto"

	"github.com/sidiksssss/wms-dismantle/bucket"
)

type Store struct {
	c *rc.Cache

	mu    sync.RWMutex
	index map[string]map[string]struct{} // bucket name -> entry keys
}

var _ bucket.Store = (*Store)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

func New(cfg Config) (*Store, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Store{c: c, index: make(map[string]map[string]struct{})}, nil
}

func storageKey(name, key string) string { return name + "\x00" + key }

func (s *Store) Get(_ context.Context, name, key string) ([]byte, bool, error) {
	s.mu.RLock()
	_, known := s.index[name][key]
	s.mu.RUnlock()
	if !known {
		return nil, false, nil
	}
	v, ok := s.c.Get(storageKey(name, key))
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// drop unexpected entry shape
		s.c.Del(storageKey(name, key))
		return nil, false, nil
	}
	return b, true, nil
}

func (s *Store) PutAll(_ context.Context, name string, entries map[string][]byte) error {
	for k, v := range entries {
		s.c.Set(storageKey(name, k), v, int64(len(v)))
	}
	s.c.Wait()

	rejected := 0
	for k := range entries {
		if _, ok := s.c.Get(storageKey(name, k)); !ok {
			rejected++
		}
	}
	if rejected > 0 {
		for k := range entries {
			s.c.Del(storageKey(name, k))
		}
		return fmt.Errorf("ristretto: admission rejected %d of %d batch entries", rejected, len(entries))
	}

	s.mu.Lock()
	keys, ok := s.index[name]
	if !ok {
		keys = make(map[string]struct{}, len(entries))
		s.index[name] = keys
	}
	for k := range entries {
		keys[k] = struct{}{}
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) Names(_ context.Context) ([]string, error) {
	s.mu.RLock()
	names := make([]string, 0, len(s.index))
	for name := range s.index {
		names = append(names, name)
	}
	s.mu.RUnlock()
	sort.Strings(names)
	return names, nil
}

func (s *Store) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	keys := s.index[name]
	delete(s.index, name)
	s.mu.Unlock()

	for k := range keys {
		s.c.Del(storageKey(name, k))
	}
	return nil
}

func (s *Store) Close(_ context.Context) error {
	s.c.Wait()
	s.c.Close()
	return nil
}

// Metrics exposes Ristretto metrics if enabled (not part of bucket.Store).
func (s *Store) Metrics() *rc.Metrics { return s.c.Metrics }
