//go:build unit

package resource_test

import (
	"strings"
	"testing"

	"resource-backend/internal/domain/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		r, err := resource.New("Jane the Contractor", "Jane", "Doe", "c-1")
		require.NoError(t, err)
		assert.Equal(t, "Jane the Contractor", r.Name())
		assert.Equal(t, "Jane", r.FirstName())
		assert.Equal(t, "Doe", r.LastName())
		assert.Equal(t, "c-1", r.ContactID())
	})

	t.Run("name is optional", func(t *testing.T) {
		r, err := resource.New("", "Jane", "Doe", "c-1")
		require.NoError(t, err)
		assert.Empty(t, r.Name())
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		r, err := resource.New("  padded  ", " Jane ", " Doe ", " c-1 ")
		require.NoError(t, err)
		assert.Equal(t, "padded", r.Name())
		assert.Equal(t, "Jane", r.FirstName())
		assert.Equal(t, "Doe", r.LastName())
		assert.Equal(t, "c-1", r.ContactID())
	})

	tests := []struct {
		name      string
		rname     string
		firstName string
		lastName  string
		contactID string
		errIs     error
	}{
		{"missing first name", "", "", "Doe", "c-1", resource.ErrEmptyFirstName},
		{"missing last name", "", "Jane", "", "c-1", resource.ErrEmptyLastName},
		{"missing contact id", "", "Jane", "Doe", "", resource.ErrEmptyContactID},
		{"whitespace only first name", "", "   ", "Doe", "c-1", resource.ErrEmptyFirstName},
		{"name too long", strings.Repeat("x", resource.MaxNameLength+1), "Jane", "Doe", "c-1", resource.ErrNameTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resource.New(tt.rname, tt.firstName, tt.lastName, tt.contactID)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestResolveDisplayName(t *testing.T) {
	t.Run("explicit name wins", func(t *testing.T) {
		r, err := resource.New("Explicit", "Jane", "Doe", "c-1")
		require.NoError(t, err)
		assert.Equal(t, "Explicit", r.ResolveDisplayName("Jane Doe"))
	})

	t.Run("falls back to contact full name", func(t *testing.T) {
		r, err := resource.New("", "Jane", "Doe", "c-1")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", r.ResolveDisplayName("Jane Doe"))
	})

	t.Run("falls back to last comma first", func(t *testing.T) {
		r, err := resource.New("", "Jane", "Doe", "c-1")
		require.NoError(t, err)
		assert.Equal(t, "Doe, Jane", r.ResolveDisplayName(""))
	})
}
