package domain

import (
	"context"
	"sync"
)

// Session is a per-resolve memoization scope. Extensions use it to cache
// network lookups for the duration of one CalcBasis call; the core
// neither reads nor writes it. There is no process-global session.
type Session struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
}

type sessionEntry struct {
	once  sync.Once
	value any
	err   error
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{entries: make(map[string]*sessionEntry)}
}

// Memoize returns the cached value for key, computing it with fn on first
// use. Concurrent callers for the same key share one computation; errors
// are cached as well.
func (s *Session) Memoize(key string, fn func() (any, error)) (any, error) {
	s.mu.Lock()
	entry, ok := s.entries[key]
	if !ok {
		entry = &sessionEntry{}
		s.entries[key] = entry
	}
	s.mu.Unlock()

	entry.once.Do(func() {
		entry.value, entry.err = fn()
	})
	return entry.value, entry.err
}

type sessionCtxKey struct{}

// WithSession returns a context carrying the session.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// SessionFrom extracts the session from ctx, or nil when the call is not
// running inside a session scope.
func SessionFrom(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionCtxKey{}).(*Session)
	return s
}
