package session

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/climatefin/riskcore/internal/facility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func sampleFacilities() []facility.Facility {
	return []facility.Facility{{ID: "a", Sector: "steel"}}
}

func TestCreateGetRoundTrip(t *testing.T) {
	store := NewStore(WithReapInterval(time.Hour))
	defer store.Close()

	id, err := store.Create("Acme Corp", sampleFacilities())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	sess, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", sess.CompanyName)
	assert.Equal(t, sampleFacilities(), sess.Facilities)
}

func TestGetUnknownIDReturnsNotFound(t *testing.T) {
	store := NewStore(WithReapInterval(time.Hour))
	defer store.Close()

	_, err := store.Get("does-not-exist")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// Invariant 6: entries idle past the TTL are reaped lazily on access.
func TestGetReapsExpiredEntryLazily(t *testing.T) {
	clock := newFakeClock(time.Now())
	store := NewStore(WithClock(clock.Now), WithTTL(2*time.Hour), WithReapInterval(time.Hour))
	defer store.Close()

	id, err := store.Create("Acme Corp", sampleFacilities())
	require.NoError(t, err)

	clock.Advance(2*time.Hour + time.Second)
	_, err = store.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// A touch within the TTL window slides the expiry forward.
func TestGetWithinTTLExtendsLastAccess(t *testing.T) {
	clock := newFakeClock(time.Now())
	store := NewStore(WithClock(clock.Now), WithTTL(2*time.Hour), WithReapInterval(time.Hour))
	defer store.Close()

	id, err := store.Create("Acme Corp", sampleFacilities())
	require.NoError(t, err)

	clock.Advance(90 * time.Minute)
	_, err = store.Get(id)
	require.NoError(t, err)

	clock.Advance(90 * time.Minute)
	_, err = store.Get(id)
	assert.NoError(t, err, "touch at 90m should have slid the 2h TTL forward past 180m total elapsed")
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	store := NewStore(WithReapInterval(time.Hour))
	defer store.Close()
	assert.NotPanics(t, func() { store.Delete("does-not-exist") })
}

func TestCreateReturnsDistinctOpaqueIDs(t *testing.T) {
	store := NewStore(WithReapInterval(time.Hour))
	defer store.Close()

	id1, err := store.Create("A", sampleFacilities())
	require.NoError(t, err)
	id2, err := store.Create("B", sampleFacilities())
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
	assert.Len(t, id1, 36) // canonical UUID string, spec.md §6 S6
}

func TestListFacilitiesReturnsStoredPortfolio(t *testing.T) {
	store := NewStore(WithReapInterval(time.Hour))
	defer store.Close()

	id, err := store.Create("Acme Corp", sampleFacilities())
	require.NoError(t, err)

	facilities, err := store.ListFacilities(id)
	require.NoError(t, err)
	assert.Equal(t, sampleFacilities(), facilities)
}

// Concurrent readers racing a delete must each see either the
// pre-delete session or ErrSessionNotFound, never a corrupted read.
func TestConcurrentGetDuringDeleteIsSafe(t *testing.T) {
	store := NewStore(WithReapInterval(time.Hour))
	defer store.Close()

	id, err := store.Create("Acme Corp", sampleFacilities())
	require.NoError(t, err)

	var wg sync.WaitGroup
	var okCount, notFoundCount int64

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Get(id)
			if err == nil {
				atomic.AddInt64(&okCount, 1)
			} else {
				atomic.AddInt64(&notFoundCount, 1)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		store.Delete(id)
	}()
	wg.Wait()

	assert.Equal(t, int64(50), okCount+notFoundCount)
}

func TestCreateCopiesFacilitiesSlice(t *testing.T) {
	store := NewStore(WithReapInterval(time.Hour))
	defer store.Close()

	facilities := sampleFacilities()
	id, err := store.Create("Acme Corp", facilities)
	require.NoError(t, err)

	facilities[0].ID = "mutated"
	sess, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "a", sess.Facilities[0].ID)
}
