//go:build unit

package rateref_test

import (
	"testing"

	"resource-backend/internal/domain/rateref"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		r, err := rateref.New("standard")
		require.NoError(t, err)
		assert.Equal(t, "standard", r.RateID())
		assert.Equal(t, "#standard", r.LinkName())
	})

	t.Run("rate id is trimmed", func(t *testing.T) {
		r, err := rateref.New("  standard  ")
		require.NoError(t, err)
		assert.Equal(t, "standard", r.RateID())
	})

	t.Run("empty rate id", func(t *testing.T) {
		_, err := rateref.New("   ")
		assert.ErrorIs(t, err, rateref.ErrEmptyRateID)
	})
}

func TestRateIDFromLinkName(t *testing.T) {
	t.Run("marker prefix is stripped", func(t *testing.T) {
		rateID, ok := rateref.RateIDFromLinkName("#standard")
		assert.True(t, ok)
		assert.Equal(t, "standard", rateID)
	})

	t.Run("unmarked name is rejected", func(t *testing.T) {
		_, ok := rateref.RateIDFromLinkName("standard")
		assert.False(t, ok)
	})
}
