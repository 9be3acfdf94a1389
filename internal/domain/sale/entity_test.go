//go:build unit

package sale_test

import (
	"testing"
	"time"

	"corral-store/internal/domain/animal"
	"corral-store/internal/domain/sale"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNewSale(t *testing.T) {
	t.Run("total is the sum of captured prices", func(t *testing.T) {
		lines := []sale.Line{
			{ItemID: uuid.New(), UnitPrice: animal.MustMoney(15000)},
			{ItemID: uuid.New(), UnitPrice: animal.MustMoney(9999)},
		}

		s, err := sale.NewSale(uuid.New(), lines, testNow)

		require.NoError(t, err)
		assert.Equal(t, int64(24999), s.Total().Cents())
		assert.Equal(t, sale.StatusConfirmed, s.Status())
		assert.Equal(t, "confirmed", s.Status().String())
		assert.NoError(t, s.VerifyTotal())
	})

	t.Run("requires at least one line", func(t *testing.T) {
		_, err := sale.NewSale(uuid.New(), nil, testNow)
		assert.ErrorIs(t, err, sale.ErrNoLines)
	})

	t.Run("rejects the same item twice", func(t *testing.T) {
		id := uuid.New()
		lines := []sale.Line{
			{ItemID: id, UnitPrice: animal.MustMoney(100)},
			{ItemID: id, UnitPrice: animal.MustMoney(100)},
		}
		_, err := sale.NewSale(uuid.New(), lines, testNow)
		assert.ErrorIs(t, err, sale.ErrDuplicateItem)
	})

	t.Run("lines are copied, not aliased", func(t *testing.T) {
		lines := []sale.Line{{ItemID: uuid.New(), UnitPrice: animal.MustMoney(100)}}
		s, err := sale.NewSale(uuid.New(), lines, testNow)
		require.NoError(t, err)

		lines[0].UnitPrice = animal.MustMoney(999999)
		assert.Equal(t, int64(100), s.Lines()[0].UnitPrice.Cents())
	})
}

func TestVerifyTotal(t *testing.T) {
	lines := []sale.Line{{ItemID: uuid.New(), UnitPrice: animal.MustMoney(100)}}
	s := sale.ReconstructSale(uuid.New(), uuid.New(), animal.MustMoney(999), sale.StatusConfirmed, lines, testNow)
	assert.ErrorIs(t, s.VerifyTotal(), sale.ErrTotalMismatch)
}

func TestItemIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	lines := []sale.Line{
		{ItemID: a, UnitPrice: animal.MustMoney(1)},
		{ItemID: b, UnitPrice: animal.MustMoney(2)},
	}
	s, err := sale.NewSale(uuid.New(), lines, testNow)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, s.ItemIDs())
}
