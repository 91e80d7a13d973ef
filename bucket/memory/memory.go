// Package memory provides the default in-process bucket store.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/sidiksssss/wms-dismantle/bucket"
)

var ErrClosed = errors.New("memory bucket store: closed")

// Store keeps buckets in process memory. Nothing survives a restart, which
// matches a cache whose contents are rebuilt on every install anyway.
type Store struct {
	mu      sync.RWMutex
	buckets map[string]map[string][]byte
}

var _ bucket.Store = (*Store)(nil)

func New() *Store {
	return &Store{buckets: make(map[string]map[string][]byte)}
}

func (s *Store) Get(_ context.Context, name, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.buckets[name]
	if !ok {
		return nil, false, nil
	}
	v, ok := b[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *Store) PutAll(_ context.Context, name string, entries map[string][]byte) error {
	// copy the batch outside the lock, then swap in one step so readers
	// never observe a partially populated bucket
	next := make(map[string][]byte, len(entries))
	for k, v := range entries {
		cp := make([]byte, len(v))
		copy(cp, v)
		next[k] = cp
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buckets == nil {
		return ErrClosed
	}
	if cur, ok := s.buckets[name]; ok {
		merged := make(map[string][]byte, len(cur)+len(next))
		for k, v := range cur {
			merged[k] = v
		}
		for k, v := range next {
			merged[k] = v
		}
		s.buckets[name] = merged
		return nil
	}
	s.buckets[name] = next
	return nil
}

func (s *Store) Names(_ context.Context) ([]string, error) {
	s.mu.RLock()
	names := make([]string, 0, len(s.buckets))
	for name := range s.buckets {
		names = append(names, name)
	}
	s.mu.RUnlock()
	sort.Strings(names)
	return names, nil
}

func (s *Store) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	delete(s.buckets, name)
	s.mu.Unlock()
	return nil
}

func (s *Store) Close(_ context.Context) error {
	s.mu.Lock()
	s.buckets = nil
	s.mu.Unlock()
	return nil
}
