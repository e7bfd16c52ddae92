//go:build unit

package converter_test

import (
	"testing"
	"time"

	"resource-backend/internal/domain/lifecycle"
	"resource-backend/internal/infra/converter"
	"resource-backend/internal/kernel"

	"github.com/stretchr/testify/assert"
)

func TestToRateRefRM(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rateCents := int64(10000)
	link := kernel.RateLink{
		ID:          "rr-1",
		ResourceID:  "r-1",
		Name:        "#standard",
		Description: "Stored description",
		RateCents:   &rateCents,
		RateType:    "hourly",
		Currency:    "USD",
		State:       lifecycle.StateActive,
		CreatedAt:   now,
		CreatedBy:   "system",
		ModifiedAt:  now,
		ModifiedBy:  "system",
	}

	t.Run("live catalog entry supplies the title", func(t *testing.T) {
		entry := kernel.RateEntry{
			Name:        "standard",
			Description: "Standard hourly rate",
			RateCents:   10000,
			RateType:    "hourly",
			Currency:    "USD",
		}

		got := converter.ToRateRefRM(&link, &entry)
		assert.Equal(t, "rr-1", got.ID)
		assert.Equal(t, "standard", got.RateID)
		assert.Equal(t, "Standard hourly rate", got.RateTitle)
		assert.Equal(t, now, got.CreatedAt)
		assert.Equal(t, "system", got.CreatedBy)
	})

	t.Run("missing catalog entry falls back to the stored description", func(t *testing.T) {
		got := converter.ToRateRefRM(&link, nil)
		assert.Equal(t, "Stored description", got.RateTitle)
	})
}
