package validate

import (
	"testing"

	"cable-billing/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestPhoneNumber(t *testing.T) {
	assert.NoError(t, PhoneNumber("phone", "0771234567"))
	assert.ErrorIs(t, PhoneNumber("phone", "771234567"), apperrors.ErrValidation)
	assert.ErrorIs(t, PhoneNumber("phone", "0871234567"), apperrors.ErrValidation)
	assert.ErrorIs(t, PhoneNumber("phone", "07712345678"), apperrors.ErrValidation)
	assert.ErrorIs(t, PhoneNumber("phone", "07712a4567"), apperrors.ErrValidation)
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank("name", "Sai"))
	assert.ErrorIs(t, NotBlank("name", "   "), apperrors.ErrValidation)
}

func TestRange(t *testing.T) {
	assert.NoError(t, Range("collection_date", 0, 0, 30))
	assert.NoError(t, Range("collection_date", 30, 0, 30))
	assert.ErrorIs(t, Range("collection_date", 31, 0, 30), apperrors.ErrValidation)
	assert.ErrorIs(t, Range("collection_date", -1, 0, 30), apperrors.ErrValidation)
}

func TestAmount(t *testing.T) {
	assert.NoError(t, Amount("amount", 0))
	assert.NoError(t, Amount("amount", MaxAmount))
	assert.ErrorIs(t, Amount("amount", MaxAmount+1), apperrors.ErrValidation)
	assert.ErrorIs(t, Amount("amount", -1), apperrors.ErrValidation)
}
