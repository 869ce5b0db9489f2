// Package callbackstore keeps oversized callback payloads server-side.
//
// Telegram limits callback_data to 64 bytes. Compact swaps every payload over
// the limit for a short token; Expand (or ExpandQuery) turns the data of a
// pressed button back into the original payload.
package callbackstore

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	"tgobjects/pkg/dto"
	"tgobjects/pkg/keyboard"
	"tgobjects/pkg/logx"
)

// TokenKey is the callback parameter that carries a token.
const TokenKey = "t"

const (
	defaultTTL     = 15 * time.Minute
	defaultMax     = 5000
	defaultCleanup = time.Minute
)

// Store is an in-memory TTL store for callback payloads. Tokens never contain
// ':' or ';', so they are safe as a parameter value.
type Store struct {
	mu sync.RWMutex

	max int
	ttl time.Duration

	// cleanupInterval controls how often an O(n) sweep drops expired tokens,
	// instead of scanning on every Put/Get.
	cleanupInterval time.Duration
	nextCleanup     time.Time

	now func() time.Time
	log logx.Logger

	m map[string]entry
}

type entry struct {
	data string
	exp  time.Time
}

// New creates a Store. Defaults: ttl=15m, max=5000, cleanupInterval=1m.
func New() *Store {
	return &Store{
		ttl:             defaultTTL,
		max:             defaultMax,
		cleanupInterval: defaultCleanup,
		now:             time.Now,
		m:               map[string]entry{},
	}
}

// WithTTL sets the token TTL; d <= 0 restores the default.
func (s *Store) WithTTL(d time.Duration) *Store {
	if d <= 0 {
		d = defaultTTL
	}
	s.mu.Lock()
	s.ttl = d
	s.mu.Unlock()
	return s
}

// WithMax sets the maximum number of live entries; n <= 0 restores the default.
func (s *Store) WithMax(n int) *Store {
	if n <= 0 {
		n = defaultMax
	}
	s.mu.Lock()
	s.max = n
	s.mu.Unlock()
	return s
}

// WithCleanupInterval sets how often expired tokens are swept.
func (s *Store) WithCleanupInterval(d time.Duration) *Store {
	if d <= 0 {
		d = defaultCleanup
	}
	s.mu.Lock()
	s.cleanupInterval = d
	s.mu.Unlock()
	return s
}

// WithLogger sets the logger used for compaction and lookup misses.
func (s *Store) WithLogger(l logx.Logger) *Store {
	s.mu.Lock()
	s.log = l.With(logx.String("component", "callbackstore"))
	s.mu.Unlock()
	return s
}

// WithClock replaces time.Now, for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
	return s
}

// Len returns the number of stored entries, expired ones included until the
// next sweep.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// Put stores data and returns a short token ("~" + 8 base64url chars).
func (s *Store) Put(data string) string {
	now := s.clock()
	s.maybeCleanup(now)

	var buf [6]byte
	for {
		_, _ = rand.Read(buf[:])
		tok := "~" + base64.RawURLEncoding.EncodeToString(buf[:])

		s.mu.Lock()
		if _, exists := s.m[tok]; exists {
			s.mu.Unlock()
			continue
		}
		s.m[tok] = entry{data: data, exp: now.Add(s.ttl)}
		s.enforceMaxLocked()
		s.mu.Unlock()
		return tok
	}
}

// Get returns the data stored under tok, if it has not expired.
func (s *Store) Get(tok string) (string, bool) {
	if tok == "" {
		return "", false
	}
	now := s.clock()
	s.maybeCleanup(now)

	s.mu.RLock()
	e, ok := s.m[tok]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if now.After(e.exp) {
		s.mu.Lock()
		if e2, ok := s.m[tok]; ok && now.After(e2.exp) {
			delete(s.m, tok)
		}
		s.mu.Unlock()
		return "", false
	}
	return e.data, true
}

// Compact returns kb with every callback payload longer than
// keyboard.MaxCallbackDataLen replaced by a token parameter. Short payloads,
// targets, labels and widths are kept.
func (s *Store) Compact(kb keyboard.Keyboard) keyboard.Keyboard {
	compacted := 0
	out := kb.MapButtons(func(b keyboard.Button) keyboard.Button {
		data := b.CallbackData()
		if len(data) <= keyboard.MaxCallbackDataLen {
			return b
		}
		compacted++
		return b.WithoutParams().WithParam(TokenKey, s.Put(data))
	})
	if compacted > 0 {
		s.logger().Debug("compacted callback data", logx.Int("buttons", compacted))
	}
	return out
}

// Expand resolves callback data produced by a compacted button. Data that does
// not carry a token is returned unchanged. ok is false only for an unknown or
// expired token.
func (s *Store) Expand(data string) (string, bool) {
	ps := keyboard.ParseCallbackData(data)
	if len(ps) != 1 || ps[0].Key != TokenKey {
		return data, true
	}
	full, ok := s.Get(ps[0].Value)
	if !ok {
		s.logger().Debug("callback token not found", logx.String("token", ps[0].Value))
	}
	return full, ok
}

// ExpandQuery is Expand applied to the data of a callback query.
func (s *Store) ExpandQuery(q dto.CallbackQuery) (dto.CallbackQuery, bool) {
	data, ok := s.Expand(q.Data)
	if !ok {
		return q, false
	}
	q.Data = data
	return q, true
}

func (s *Store) clock() time.Time {
	s.mu.RLock()
	now := s.now
	s.mu.RUnlock()
	return now()
}

func (s *Store) logger() logx.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.log
}

func (s *Store) maybeCleanup(now time.Time) {
	s.mu.RLock()
	next := s.nextCleanup
	s.mu.RUnlock()
	if !next.IsZero() && now.Before(next) {
		return
	}

	s.mu.Lock()
	// Re-check under lock.
	if s.nextCleanup.IsZero() {
		s.nextCleanup = now.Add(s.cleanupInterval)
	} else if !now.Before(s.nextCleanup) {
		for k, e := range s.m {
			if now.After(e.exp) {
				delete(s.m, k)
			}
		}
		s.nextCleanup = now.Add(s.cleanupInterval)
	}
	s.mu.Unlock()
}

func (s *Store) enforceMaxLocked() {
	over := len(s.m) - s.max
	if over <= 0 {
		return
	}
	// Best-effort eviction: remove arbitrary entries until within limit.
	for k := range s.m {
		delete(s.m, k)
		over--
		if over <= 0 {
			break
		}
	}
}
