//go:build unit

package state_test

import (
	"testing"

	"corral-store/internal/domain/animal"
	"corral-store/internal/state"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *state.Store {
	return state.NewStore(state.AppState{
		Filter:   "all",
		Page:     1,
		PageSize: 8,
		Loading:  true,
	}, nil)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestStore_ApplyMergesLastWriteWins(t *testing.T) {
	s := newStore()

	s.Apply(state.Patch{Filter: strPtr("male"), Page: intPtr(3)})
	s.Apply(state.Patch{Filter: strPtr("female")})
	s.Apply(state.Patch{Loading: boolPtr(false)})

	got := s.Snapshot()
	assert.Equal(t, "female", got.Filter, "last write per field wins")
	assert.Equal(t, 3, got.Page, "untouched field keeps earlier write")
	assert.Equal(t, 8, got.PageSize, "never-written field keeps initial value")
	assert.False(t, got.Loading)
}

func TestStore_SnapshotIsIndependent(t *testing.T) {
	s := newStore()
	items := []state.Item{{ID: uuid.New(), Name: "Zeus", Status: animal.StatusAvailable}}
	s.Apply(state.Patch{Animals: &items})

	snap := s.Snapshot()
	snap.Animals[0].Name = "mutated"
	snap.Filter = "mutated"

	fresh := s.Snapshot()
	assert.Equal(t, "Zeus", fresh.Animals[0].Name, "mutating a snapshot must not leak into the store")
	assert.Equal(t, "all", fresh.Filter)
}

func TestStore_SubscribeReceivesEachUpdateOnce(t *testing.T) {
	s := newStore()

	var got []state.AppState
	s.Subscribe(func(snap state.AppState) {
		got = append(got, snap)
	})

	s.Apply(state.Patch{Filter: strPtr("male")})

	require.Len(t, got, 1)
	assert.Equal(t, s.Snapshot(), got[0], "listener snapshot equals a Snapshot taken right after")
}

func TestStore_UnsubscribeStopsNotifications(t *testing.T) {
	s := newStore()

	calls := 0
	unsub := s.Subscribe(func(state.AppState) { calls++ })

	s.Apply(state.Patch{Page: intPtr(2)})
	unsub()
	s.Apply(state.Patch{Page: intPtr(3)})
	s.Apply(state.Patch{Page: intPtr(4)})

	assert.Equal(t, 1, calls)
}

func TestStore_UnsubscribeFromInsideListener(t *testing.T) {
	s := newStore()

	secondCalls := 0
	var unsubSecond func()
	s.Subscribe(func(state.AppState) {
		// Removes the later listener mid-fan-out; it must not run, for this
		// cycle or any after it.
		unsubSecond()
	})
	unsubSecond = s.Subscribe(func(state.AppState) { secondCalls++ })

	s.Apply(state.Patch{Page: intPtr(2)})
	s.Apply(state.Patch{Page: intPtr(3)})

	assert.Equal(t, 0, secondCalls)
}

func TestStore_PanickingListenerDoesNotBlockOthers(t *testing.T) {
	s := newStore()

	var secondGot *state.AppState
	s.Subscribe(func(state.AppState) {
		panic("render failed")
	})
	s.Subscribe(func(snap state.AppState) {
		secondGot = &snap
	})

	s.Apply(state.Patch{Filter: strPtr("female")})

	require.NotNil(t, secondGot, "second listener still runs after the first panics")
	assert.Equal(t, "female", secondGot.Filter, "and sees the same snapshot")
}

func TestStore_SubscribeDuringFanOutDeferredToNextCycle(t *testing.T) {
	s := newStore()

	lateCalls := 0
	s.Subscribe(func(state.AppState) {
		if lateCalls == 0 {
			s.Subscribe(func(state.AppState) { lateCalls++ })
		}
	})

	s.Apply(state.Patch{Page: intPtr(2)})
	assert.Equal(t, 0, lateCalls, "listener added mid-cycle is not called for that cycle")

	s.Apply(state.Patch{Page: intPtr(3)})
	assert.Equal(t, 1, lateCalls, "but is called on the next one")
}

func TestStore_NestedValuesReplacedWholesale(t *testing.T) {
	s := newStore()

	first := []state.Item{{ID: uuid.New(), Name: "Zeus"}, {ID: uuid.New(), Name: "Hera"}}
	second := []state.Item{{ID: uuid.New(), Name: "Ares"}}

	s.Apply(state.Patch{Animals: &first})
	s.Apply(state.Patch{Animals: &second})

	got := s.Snapshot()
	require.Len(t, got.Animals, 1, "slice fields are replaced, not deep-merged")
	assert.Equal(t, "Ares", got.Animals[0].Name)
}
