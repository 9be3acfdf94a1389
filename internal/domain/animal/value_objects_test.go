//go:build unit

package animal_test

import (
	"strings"
	"testing"

	"corral-store/internal/domain/animal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := animal.NewMoney(-1)
		assert.ErrorIs(t, err, animal.ErrNegativeMoney)
	})

	t.Run("integer totals never drift", func(t *testing.T) {
		// The classic float trap: 0.1 + 0.2. In cents it is exact.
		sum := animal.MustMoney(10).Add(animal.MustMoney(20))
		assert.Equal(t, int64(30), sum.Cents())
	})

	t.Run("formats with two decimals", func(t *testing.T) {
		tests := []struct {
			cents int64
			want  string
		}{
			{0, "0.00"},
			{5, "0.05"},
			{100, "1.00"},
			{15000, "150.00"},
			{24999, "249.99"},
			{25134, "251.34"},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, animal.MustMoney(tt.cents).String())
		}
	})
}

func TestPlate(t *testing.T) {
	t.Run("requires a value", func(t *testing.T) {
		_, err := animal.NewPlate("")
		assert.ErrorIs(t, err, animal.ErrEmptyPlate)
	})

	t.Run("caps the length", func(t *testing.T) {
		_, err := animal.NewPlate(strings.Repeat("x", animal.MaxPlateLength+1))
		assert.ErrorIs(t, err, animal.ErrPlateTooLong)
	})

	t.Run("keeps the value", func(t *testing.T) {
		p, err := animal.NewPlate("BR-0042")
		require.NoError(t, err)
		assert.Equal(t, "BR-0042", p.String())
	})
}

func TestSexAndStatus(t *testing.T) {
	_, err := animal.NewSex("neither")
	assert.ErrorIs(t, err, animal.ErrInvalidSex)

	sex, err := animal.NewSex("female")
	require.NoError(t, err)
	assert.Equal(t, animal.SexFemale, sex)

	_, err = animal.NewStatus("pending")
	assert.ErrorIs(t, err, animal.ErrInvalidStatus)
}
