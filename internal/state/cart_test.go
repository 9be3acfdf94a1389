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

func availableItem(name string, cents int64) state.Item {
	return state.Item{
		ID:     uuid.New(),
		Name:   name,
		Plate:  "P-" + name,
		Sex:    animal.SexMale,
		Status: animal.StatusAvailable,
		Price:  animal.MustMoney(cents),
	}
}

func TestCart_AddCapturesPriceSnapshot(t *testing.T) {
	s := newStore()
	cart := state.NewCart(s)

	item := availableItem("Zeus", 15000)
	require.NoError(t, cart.Add(item))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, item.ID, lines[0].ItemID)
	assert.Equal(t, int64(15000), lines[0].PriceAtAdd.Cents())
}

func TestCart_AddIsIdempotentOnIdentity(t *testing.T) {
	s := newStore()
	cart := state.NewCart(s)

	item := availableItem("Zeus", 15000)
	require.NoError(t, cart.Add(item))

	// Catalog price changes after the first add; the snapshot must not move.
	item.Price = animal.MustMoney(99999)
	require.NoError(t, cart.Add(item))

	lines := cart.Lines()
	require.Len(t, lines, 1, "no duplicate line for the same identity")
	assert.Equal(t, int64(15000), lines[0].PriceAtAdd.Cents(), "first captured price wins")
}

func TestCart_AddRejectsUnavailableItem(t *testing.T) {
	cases := []struct {
		name string
		item state.Item
	}{
		{name: "zero item", item: state.Item{}},
		{name: "sold item", item: state.Item{ID: uuid.New(), Name: "Ares", Status: animal.StatusSold, Price: animal.MustMoney(100)}},
		{name: "deleted item", item: state.Item{ID: uuid.New(), Name: "Hades", Status: animal.StatusDeleted, Price: animal.MustMoney(100)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newStore()
			cart := state.NewCart(s)

			err := cart.Add(tc.item)

			assert.ErrorIs(t, err, state.ErrInvalidItem)
			assert.Empty(t, cart.Lines(), "cart remains unchanged")
			assert.NotEmpty(t, s.Snapshot().Err, "error slot populated for renderers")
		})
	}
}

func TestCart_RemoveAbsentIsNoOp(t *testing.T) {
	s := newStore()
	cart := state.NewCart(s)
	require.NoError(t, cart.Add(availableItem("Zeus", 15000)))

	notifications := 0
	s.Subscribe(func(state.AppState) { notifications++ })

	cart.Remove(uuid.New())

	assert.Len(t, cart.Lines(), 1)
	assert.Equal(t, 0, notifications, "no notification cycle for a no-op removal")
}

func TestCart_RemoveThenClear(t *testing.T) {
	s := newStore()
	cart := state.NewCart(s)

	a := availableItem("Zeus", 15000)
	b := availableItem("Hera", 9999)
	require.NoError(t, cart.Add(a))
	require.NoError(t, cart.Add(b))

	cart.Remove(a.ID)
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, b.ID, lines[0].ItemID)

	cart.Clear()
	assert.Empty(t, cart.Lines())
}

func TestCart_MutationsNotifyExactlyOnce(t *testing.T) {
	s := newStore()
	cart := state.NewCart(s)

	notifications := 0
	s.Subscribe(func(state.AppState) { notifications++ })

	item := availableItem("Zeus", 15000)
	require.NoError(t, cart.Add(item))
	assert.Equal(t, 1, notifications)

	cart.Remove(item.ID)
	assert.Equal(t, 2, notifications)

	cart.Clear()
	assert.Equal(t, 3, notifications)
}

func TestCart_TotalSumsCapturedPrices(t *testing.T) {
	cases := []struct {
		name      string
		cents     []int64
		wantTotal string
	}{
		{name: "empty cart", cents: nil, wantTotal: "0.00"},
		{name: "single line", cents: []int64{15000}, wantTotal: "150.00"},
		{name: "two lines with fractional cents", cents: []int64{15000, 9999}, wantTotal: "249.99"},
		{name: "five lines", cents: []int64{101, 9999, 15000, 33, 1}, wantTotal: "251.34"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newStore()
			cart := state.NewCart(s)
			for i, c := range tc.cents {
				require.NoError(t, cart.Add(availableItem(string(rune('A'+i)), c)))
			}

			assert.Equal(t, tc.wantTotal, cart.Total().String())
		})
	}
}
