//go:build unit

package converter_test

import (
	"testing"
	"time"

	"resource-backend/internal/domain/lifecycle"
	"resource-backend/internal/infra/converter"
	"resource-backend/internal/kernel"
	"resource-backend/internal/usecase/readmodel"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestToResourceRM(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	contactID := "c-1"
	base := kernel.Resource{
		ID:         "r-1",
		Name:       "Jane Doe",
		ContactID:  &contactID,
		Categories: []string{kernel.CategoryProject},
		State:      lifecycle.StateActive,
		CreatedAt:  now,
		CreatedBy:  "system",
		ModifiedAt: now,
		ModifiedBy: "system",
	}

	t.Run("resolved contact supplies the name parts", func(t *testing.T) {
		contact := kernel.Contact{
			ID:        "c-1",
			FirstName: "Jane",
			LastName:  "Doe",
			FullName:  "Jane Doe",
			State:     lifecycle.StateActive,
		}

		got := converter.ToResourceRM(&base, &contact)
		want := &readmodel.ResourceRM{
			ID:         "r-1",
			Name:       "Jane Doe",
			FirstName:  "Jane",
			LastName:   "Doe",
			ContactID:  "c-1",
			CreatedAt:  now,
			CreatedBy:  "system",
			ModifiedAt: now,
			ModifiedBy: "system",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("unexpected read model (-want +got):\n%s", diff)
		}
	})

	t.Run("missing contact derives parts from the display name", func(t *testing.T) {
		res := base
		res.Name = "Doe, Jane"
		res.ContactID = nil

		got := converter.ToResourceRM(&res, nil)
		assert.Empty(t, got.ContactID)
		assert.Equal(t, "Doe", got.LastName)
		assert.Equal(t, "Jane", got.FirstName)
	})

	t.Run("display name without comma is all last name", func(t *testing.T) {
		res := base
		res.Name = "Conference Room A"
		res.ContactID = nil

		got := converter.ToResourceRM(&res, nil)
		assert.Equal(t, "Conference Room A", got.LastName)
		assert.Empty(t, got.FirstName)
	})

	t.Run("only the first comma splits", func(t *testing.T) {
		res := base
		res.Name = "Doe, Jane, PhD"
		res.ContactID = nil

		got := converter.ToResourceRM(&res, nil)
		assert.Equal(t, "Doe", got.LastName)
		assert.Equal(t, "Jane, PhD", got.FirstName)
	})
}
