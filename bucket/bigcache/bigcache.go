// Package bigcache provides a BigCache-backed bucket store. Entry bytes live
// in BigCache; bucket names and keys are tracked in an in-process index
// because BigCache cannot enumerate its keyspace.
package bigcache

import (
	"context"
	"sort"
	"sync"
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/sidiksssss/wms-dismantle/bucket"
)

type Store struct {
	c *bc.BigCache

	mu    sync.RWMutex
	index map[string]map[string]struct{} // bucket name -> entry keys
}

var _ bucket.Store = (*Store)(nil)

type Config struct {
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New(cfg Config) (*Store, error) {
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.NewBigCache(conf)
	if err != nil {
		return nil, err
	}
	return &Store{c: c, index: make(map[string]map[string]struct{})}, nil
}

// "\x00" cannot appear in bucket names or request keys.
func storageKey(name, key string) string { return name + "\x00" + key }

func (s *Store) Get(_ context.Context, name, key string) ([]byte, bool, error) {
	s.mu.RLock()
	_, known := s.index[name][key]
	s.mu.RUnlock()
	if !known {
		return nil, false, nil
	}
	b, err := s.c.Get(storageKey(name, key))
	if err == bc.ErrEntryNotFound {
		// evicted underneath the index; treat as a miss
		return nil, false, nil
	}
	return b, err == nil, err
}

func (s *Store) PutAll(_ context.Context, name string, entries map[string][]byte) error {
	written := make([]string, 0, len(entries))
	for k, v := range entries {
		if err := s.c.Set(storageKey(name, k), v); err != nil {
			// roll back so no partial bucket satisfies lookups
			for _, wk := range written {
				_ = s.c.Delete(storageKey(name, wk))
			}
			return err
		}
		written = append(written, k)
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
		if err := s.c.Delete(storageKey(name, k)); err != nil && err != bc.ErrEntryNotFound {
			return err
		}
	}
	return nil
}

func (s *Store) Close(_ context.Context) error {
	return s.c.Close()
}
