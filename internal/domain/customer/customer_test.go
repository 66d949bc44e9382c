package customer

import (
	"testing"

	"cable-billing/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCustomerNumber(t *testing.T) {
	assert.Equal(t, "Sai1", GenerateCustomerNumber("Sai Lane", 0))
	assert.Equal(t, "Mus13", GenerateCustomerNumber("Music College", 12))
	assert.Equal(t, "AB5", GenerateCustomerNumber("AB", 4))
	assert.Equal(t, "2nd8", GenerateCustomerNumber(" 2nd Croos Kallady", 7))
}

func TestCustomerValidate(t *testing.T) {
	valid := func() *Customer {
		return &Customer{
			FirstName:   " Kumar ",
			PhoneNumber: "0771234567",
			AreaID:      3,
			IdentityNo:  "199728402249",
		}
	}

	t.Run("valid customer is trimmed", func(t *testing.T) {
		c := valid()
		assert.NoError(t, c.Validate())
		assert.Equal(t, "Kumar", c.FirstName)
	})

	tests := map[string]func(c *Customer){
		"firstName":   func(c *Customer) { c.FirstName = "" },
		"phoneNumber": func(c *Customer) { c.PhoneNumber = "123" },
		"areaId":      func(c *Customer) { c.AreaID = 0 },
		"identityNo":  func(c *Customer) { c.IdentityNo = "123" },
	}
	for field, mutate := range tests {
		t.Run(field, func(t *testing.T) {
			c := valid()
			mutate(c)
			err := c.Validate()
			var vErr *apperrors.ValidationError
			if assert.ErrorAs(t, err, &vErr) {
				assert.Equal(t, field, vErr.Field)
			}
		})
	}
}
