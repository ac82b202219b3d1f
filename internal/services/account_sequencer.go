package services

import (
	"context"
	"slices"
	"sync"

	"banking-client/internal/models"
)

func accountKey(id models.ID) string {
	return "account:" + id.String()
}

func limitKey(category models.LimitCategory) string {
	return "limit:" + string(category)
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

// AccountSequencer lets one operation at a time work on a given key. Keys are
// always taken in sorted order so overlapping sets cannot deadlock. A nil
// sequencer never blocks.
type AccountSequencer struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

func NewAccountSequencer() *AccountSequencer {
	return &AccountSequencer{
		locks: make(map[string]*keyLock),
	}
}

// Lock waits for every key or for ctx to end. The returned func releases them.
func (s *AccountSequencer) Lock(ctx context.Context, keys ...string) (func(), error) {
	if s == nil {
		return func() {}, nil
	}

	keys = slices.Clone(keys)
	slices.Sort(keys)
	keys = slices.Compact(keys)

	held := make([]string, 0, len(keys))
	for _, key := range keys {
		lock := s.acquireRef(key)
		select {
		case lock.ch <- struct{}{}:
			held = append(held, key)
		case <-ctx.Done():
			s.releaseRef(key)
			s.unlock(held)
			return nil, ctx.Err()
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() { s.unlock(held) })
	}, nil
}

func (s *AccountSequencer) unlock(keys []string) {
	for i := len(keys) - 1; i >= 0; i-- {
		s.mu.Lock()
		lock := s.locks[keys[i]]
		s.mu.Unlock()

		<-lock.ch
		s.releaseRef(keys[i])
	}
}

func (s *AccountSequencer) acquireRef(key string) *keyLock {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[key]
	if !ok {
		lock = &keyLock{ch: make(chan struct{}, 1)}
		s.locks[key] = lock
	}
	lock.refs++
	return lock
}

func (s *AccountSequencer) releaseRef(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[key]
	if !ok {
		return
	}
	lock.refs--
	if lock.refs == 0 {
		delete(s.locks, key)
	}
}

