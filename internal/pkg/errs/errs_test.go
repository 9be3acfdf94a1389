//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"corral-store/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("sale details write failed")
	cause := errs.New("connection reset")

	t.Run("mark is visible to the standard errors.Is", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("original cause stays in the chain", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, cause.Error(), err.Error())
	})

	t.Run("mark survives further wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(cause, sentinel), "confirm sale")
		assert.ErrorIs(t, err, sentinel)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("nil cause collapses to the mark itself", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)
		require.Error(t, err)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("unrelated sentinel does not match", func(t *testing.T) {
		other := errs.New("customer resolution failed")
		err := errs.Mark(cause, sentinel)
		assert.NotErrorIs(t, err, other)
	})
}
