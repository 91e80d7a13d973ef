// Package redis provides a Redis-backed bucket store: one hash per bucket
// plus a registry set for name enumeration.
package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sidiksssss/wms-dismantle/bucket"
)

var ErrNilClient = errors.New("redis bucket store: nil client")

type Store struct {
	rdb         goredis.UniversalClient
	ns          string
	closeClient bool
}

var _ bucket.Store = (*Store)(nil)

type Config struct {
	Client goredis.UniversalClient
	// Namespace isolates this deployment's buckets, e.g. "wms:prod".
	// Empty means "offcache".
	Namespace   string
	CloseClient bool // set true only if this store exclusively owns the client
}

func New(cfg Config) (*Store, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	ns := cfg.Namespace
	if ns == "" {
		ns = "offcache"
	}
	return &Store{rdb: cfg.Client, ns: ns, closeClient: cfg.CloseClient}, nil
}

func (s *Store) hashKey(name string) string { return s.ns + ":bucket:" + name }
func (s *Store) registryKey() string        { return s.ns + ":buckets" }

func (s *Store) Get(ctx context.Context, name, key string) ([]byte, bool, error) {
	b, err := s.rdb.HGet(ctx, s.hashKey(name), key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

// PutAll commits the batch and the registry entry in one MULTI/EXEC, so the
// bucket either appears fully populated or not at all.
func (s *Store) PutAll(ctx context.Context, name string, entries map[string][]byte) error {
	args := make([]any, 0, len(entries)*2)
	for k, v := range entries {
		args = append(args, k, v)
	}
	_, err := s.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		if len(args) > 0 {
			p.HSet(ctx, s.hashKey(name), args...)
		}
		p.SAdd(ctx, s.registryKey(), name)
		return nil
	})
	return err
}

func (s *Store) Names(ctx context.Context) ([]string, error) {
	return s.rdb.SMembers(ctx, s.registryKey()).Result()
}

func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Del(ctx, s.hashKey(name))
		p.SRem(ctx, s.registryKey(), name)
		return nil
	})
	return err
}

// Close releases the underlying redis client only when this store owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (s *Store) Close(context.Context) error {
	if s.closeClient {
		if err := s.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
