package area

import (
	"testing"

	"cable-billing/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestNewArea(t *testing.T) {
	t.Run("defaults collection date", func(t *testing.T) {
		a, err := NewArea(" Sai Lane ", 1, nil)
		assert.NoError(t, err)
		assert.Equal(t, "Sai Lane", a.Name)
		assert.Equal(t, DefaultCollectionDate, a.CollectionDate)
	})

	t.Run("accepts bounds", func(t *testing.T) {
		for _, day := range []int{0, 15, 30} {
			a, err := NewArea("Music College", 1, intPtr(day))
			assert.NoError(t, err)
			assert.Equal(t, day, a.CollectionDate)
		}
	})

	t.Run("rejects out of range collection date", func(t *testing.T) {
		for _, day := range []int{-1, 31} {
			_, err := NewArea("Music College", 1, intPtr(day))
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		}
	})

	t.Run("requires agent", func(t *testing.T) {
		_, err := NewArea("Music College", 0, nil)
		var vErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "agentId", vErr.Field)
	})

	t.Run("requires name", func(t *testing.T) {
		_, err := NewArea("  ", 1, nil)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}
