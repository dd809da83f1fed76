package cache

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

const (
	searchPrefix = "search:"
	infoPrefix   = "info:"
)

func SearchKey(topic string) string { return searchPrefix + topic }

func InfoKey(item string) string { return infoPrefix + item }

// SearchPrefix matches every topic listing.
func SearchPrefix() string { return searchPrefix }

// backend is satisfied by *lru.Cache and by the unbounded map below.
type backend interface {
	Get(key string) (json.RawMessage, bool)
	Add(key string, value json.RawMessage) bool
	Remove(key string) bool
	Keys() []string
	Len() int
}

// Store keeps backend responses by query key. Entries live until they are
// invalidated; with a positive capacity the least recently used entry is
// evicted once the store is full.
type Store struct {
	entries backend
	logger  *zap.Logger
}

// New returns an unbounded store when capacity <= 0.
func New(capacity int, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if capacity <= 0 {
		return &Store{entries: newUnbounded(), logger: logger}, nil
	}
	c, err := lru.New[string, json.RawMessage](capacity)
	if err != nil {
		return nil, err
	}
	return &Store{entries: c, logger: logger}, nil
}

func (s *Store) Get(key string) (json.RawMessage, bool) {
	return s.entries.Get(key)
}

func (s *Store) Put(key string, value json.RawMessage) {
	if s.entries.Add(key, value) {
		s.logger.Debug("cache evicted oldest entry", zap.String("inserted", key))
	}
}

// Invalidate drops key and reports whether an entry was actually removed.
func (s *Store) Invalidate(key string) bool {
	if !s.entries.Remove(key) {
		return false
	}
	s.logger.Info("cache invalidated", zap.String("key", key))
	return true
}

func (s *Store) InvalidatePrefix(prefix string) int {
	n := 0
	for _, key := range s.entries.Keys() {
		if strings.HasPrefix(key, prefix) && s.Invalidate(key) {
			n++
		}
	}
	return n
}

func (s *Store) Len() int {
	return s.entries.Len()
}

// Keys returns the cached keys in lexical order.
func (s *Store) Keys() []string {
	keys := s.entries.Keys()
	sort.Strings(keys)
	return keys
}

type unbounded struct {
	mu sync.RWMutex
	m  map[string]json.RawMessage
}

func newUnbounded() *unbounded {
	return &unbounded{m: make(map[string]json.RawMessage)}
}

func (u *unbounded) Get(key string) (json.RawMessage, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	v, ok := u.m[key]
	return v, ok
}

func (u *unbounded) Add(key string, value json.RawMessage) bool {
	u.mu.Lock()
	u.m[key] = value
	u.mu.Unlock()
	return false
}

func (u *unbounded) Remove(key string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.m[key]; !ok {
		return false
	}
	delete(u.m, key)
	return true
}

func (u *unbounded) Keys() []string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]string, 0, len(u.m))
	for k := range u.m {
		out = append(out, k)
	}
	return out
}

func (u *unbounded) Len() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.m)
}
