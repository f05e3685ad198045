// Package session provides an in-memory, TTL-bounded store for
// partner-uploaded facility portfolios (spec.md §4.5). A session holds
// a company name and its facility list under an opaque random
// (36-character UUID) id; entries idle past their TTL are reaped
// lazily on access and by a periodic sweep.
//
// Grounds on the teacher's internal/auth/lockout.go: an
// RWMutex-guarded map, a background time.Ticker reap loop, lazy
// expiry on read.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/climatefin/riskcore/internal/facility"
)

// ErrSessionNotFound is returned for an unknown or expired id. It is
// also returned for an id that once existed and has since been reaped,
// so a caller cannot distinguish "never existed" from "expired" —
// spec.md §4.5 invariant (iv).
var ErrSessionNotFound = errors.New("session: not found")

const (
	// DefaultTTL is how long a session survives without a touch.
	DefaultTTL = 2 * time.Hour
	// DefaultReapInterval is the period of the background sweep.
	DefaultReapInterval = 10 * time.Minute
)

// Session is one partner's uploaded portfolio.
type Session struct {
	ID          string              `json:"id"`
	CompanyName string              `json:"company_name"`
	Facilities  []facility.Facility `json:"facilities"`
	CreatedAt   time.Time           `json:"created_at"`
	LastAccess  time.Time           `json:"last_access"`
}

type entry struct {
	session    Session
	lastAccess time.Time
}

// Store is a concurrency-safe, TTL-bounded session table.
type Store struct {
	ttl          time.Duration
	reapInterval time.Duration
	now          func() time.Time
	stop         chan struct{}

	mu      sync.RWMutex
	entries map[string]*entry
}

// Option configures a Store.
type Option func(*Store)

// WithTTL overrides the default 2-hour sliding expiry.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// WithClock overrides the store's clock, used by tests to exercise TTL
// behaviour without sleeping in real time.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithReapInterval overrides the background sweep period.
func WithReapInterval(interval time.Duration) Option {
	return func(s *Store) { s.reapInterval = interval }
}

// NewStore builds a Store and starts its periodic reap loop.
func NewStore(opts ...Option) *Store {
	s := &Store{
		ttl:          DefaultTTL,
		reapInterval: DefaultReapInterval,
		now:          time.Now,
		stop:         make(chan struct{}),
		entries:      make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.reapLoop(s.reapInterval)
	return s
}

// Close stops the background reap loop. Safe to call once.
func (s *Store) Close() {
	close(s.stop)
}

// Create stores a new session for companyName and facilities, copying
// the slice so later caller mutation cannot corrupt the stored
// portfolio, and returns its opaque id.
func (s *Store) Create(companyName string, facilities []facility.Facility) (string, error) {
	id, err := newID()
	if err != nil {
		return "", err
	}
	now := s.now()
	copied := make([]facility.Facility, len(facilities))
	copy(copied, facilities)

	s.mu.Lock()
	s.entries[id] = &entry{
		session: Session{
			ID: id, CompanyName: companyName, Facilities: copied,
			CreatedAt: now, LastAccess: now,
		},
		lastAccess: now,
	}
	s.mu.Unlock()
	return id, nil
}

// Get returns the session for id, updating its last_access and
// extending its TTL. An unknown or expired id returns
// ErrSessionNotFound.
func (s *Store) Get(id string) (Session, error) {
	now := s.now()

	s.mu.Lock()
	e, ok := s.entries[id]
	if !ok || now.Sub(e.lastAccess) > s.ttl {
		delete(s.entries, id)
		s.mu.Unlock()
		return Session{}, ErrSessionNotFound
	}
	e.lastAccess = now
	e.session.LastAccess = now
	out := e.session
	out.Facilities = append([]facility.Facility(nil), e.session.Facilities...)
	s.mu.Unlock()
	return out, nil
}

// Touch refreshes id's last_access without returning its contents.
func (s *Store) Touch(id string) error {
	_, err := s.Get(id)
	return err
}

// ListFacilities returns id's facility portfolio.
func (s *Store) ListFacilities(id string) ([]facility.Facility, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return sess.Facilities, nil
}

// Delete removes id unconditionally; deleting an unknown id is a
// no-op, matching spec.md §4.5's no-existence-leak invariant.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

func (s *Store) reapLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.reapExpired()
		}
	}
}

func (s *Store) reapExpired() {
	now := s.now()
	s.mu.Lock()
	for id, e := range s.entries {
		if now.Sub(e.lastAccess) > s.ttl {
			delete(s.entries, id)
		}
	}
	s.mu.Unlock()
}

// newID returns an opaque 128-bit random id as a canonical 36-character
// UUID string (spec.md §6 S6: partner session ids are 36 characters).
func newID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
