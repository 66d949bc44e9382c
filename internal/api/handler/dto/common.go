package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cable-billing/internal/pkg/validate"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type TokenRequest struct {
	Role string `json:"role"`
	ID   int64  `json:"id"`
}

func (r *TokenRequest) Validate() error {
	switch strings.ToLower(strings.TrimSpace(r.Role)) {
	case "superuser":
		return nil
	case "employee", "customer":
		if r.ID <= 0 {
			return fmt.Errorf("id must be a positive number for role %q", r.Role)
		}
		return nil
	default:
		return fmt.Errorf("role must be one of superuser, employee, customer")
	}
}

type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// FormatMoney renders whole currency units with two decimals.
func FormatMoney(amount int64) string {
	return decimal.NewFromInt(amount).StringFixed(2)
}

// ParseMoney accepts a decimal string that must hold a whole amount in [0, validate.MaxAmount].
func ParseMoney(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %w", err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount cannot be negative")
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, fmt.Errorf("amount must be a whole number")
	}
	if d.GreaterThan(decimal.NewFromInt(validate.MaxAmount)) {
		return 0, fmt.Errorf("amount cannot exceed %d", validate.MaxAmount)
	}
	return d.IntPart(), nil
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func ParseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s format (use YYYY-MM-DD): %w", field, err)
	}
	return t, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
