package billing

import (
	"fmt"
	"time"

	"cable-billing/internal/domain/connection"
	"cable-billing/internal/pkg/apperrors"
	"cable-billing/internal/pkg/dates"
	"cable-billing/internal/pkg/validate"
)

type Description string

const (
	DescriptionMonthly           Description = "Monthly"
	DescriptionZeroDisconnection Description = "ZeroDisconnection"
	DescriptionZeroReconnection  Description = "ZeroReconnection"
)

const (
	// PeriodDays is the length of a full billing period and the pro-ration divisor.
	PeriodDays = 30
	// BackfillThresholdDays is how far the latest bill may trail before a new period is billed.
	BackfillThresholdDays = 30
)

// ErrPeriodAlreadyBilled is returned when an explicit end date falls before the next unbilled day.
var ErrPeriodAlreadyBilled = fmt.Errorf("%w: period already billed", apperrors.ErrValidation)

// Bill covers FromDate through ToDate inclusive. Amount is in whole currency units.
type Bill struct {
	ID           int64       `json:"id"`
	ConnectionID int64       `json:"connectionId"`
	FromDate     time.Time   `json:"fromDate"`
	ToDate       time.Time   `json:"toDate"`
	Amount       int64       `json:"amount"`
	Description  Description `json:"description"`
	CreatedAt    time.Time   `json:"createdAt"`
}

func (b Bill) Days() int {
	return dates.DaysBetween(b.FromDate, b.ToDate) + 1
}

// Tariff is the monthly fee by box type.
type Tariff struct {
	DigitalFee int64
	AnalogFee  int64
}

func (t Tariff) MonthlyFee(hasDigitalBox bool) int64 {
	if hasDigitalBox {
		return t.DigitalFee
	}
	return t.AnalogFee
}

func (t Tariff) Validate() error {
	if t.DigitalFee < 0 || t.AnalogFee < 0 {
		return fmt.Errorf("%w: fees cannot be negative", apperrors.ErrInvalidArgument)
	}
	if t.DigitalFee > validate.MaxAmount || t.AnalogFee > validate.MaxAmount {
		return fmt.Errorf("%w: fees cannot exceed %d", apperrors.ErrInvalidArgument, validate.MaxAmount)
	}
	return nil
}

type GenerateOptions struct {
	// EndDate closes a partial period; the amount is pro-rated over it.
	EndDate *time.Time
	// Amount overrides the tariff fee before pro-ration.
	Amount      *int64
	Description Description
}

// NextBill computes the bill that directly follows latest, or starts at the
// connection start date when latest is nil. It does not persist anything.
func NextBill(conn *connection.Connection, latest *Bill, tariff Tariff, opts GenerateOptions) (*Bill, error) {
	if conn == nil {
		return nil, fmt.Errorf("%w: connection cannot be nil", apperrors.ErrInvalidArgument)
	}

	from := dates.Date(conn.StartDate)
	if latest != nil {
		from = dates.AddDays(latest.ToDate, 1)
	}

	amount := tariff.MonthlyFee(conn.HasDigitalBox)
	if opts.Amount != nil {
		amount = *opts.Amount
	}
	if err := validate.Amount("amount", amount); err != nil {
		return nil, err
	}

	description := opts.Description
	if description == "" {
		description = DescriptionMonthly
	}

	to := dates.AddDays(from, PeriodDays-1)
	if opts.EndDate != nil {
		to = dates.Date(*opts.EndDate)
		days := dates.DaysBetween(from, to) + 1
		if days <= 0 {
			return nil, fmt.Errorf("%w: next period starts %s, end date %s", ErrPeriodAlreadyBilled,
				from.Format(time.DateOnly), to.Format(time.DateOnly))
		}
		amount = amount * int64(days) / PeriodDays
	}

	return &Bill{
		ConnectionID: conn.ID,
		FromDate:     from,
		ToDate:       to,
		Amount:       amount,
		Description:  description,
	}, nil
}

// PlanBackfill returns the monthly bills an active connection is missing as of asOf,
// oldest first. asOf is fixed for the whole plan so the loop always terminates.
func PlanBackfill(conn *connection.Connection, latest *Bill, tariff Tariff, asOf time.Time) ([]Bill, error) {
	if conn == nil || !conn.Active {
		return nil, nil
	}

	lastTo := dates.AddDays(conn.StartDate, -1)
	if latest != nil {
		lastTo = dates.Date(latest.ToDate)
	}

	var planned []Bill
	prev := latest
	for dates.DaysBetween(lastTo, asOf) > BackfillThresholdDays {
		next, err := NextBill(conn, prev, tariff, GenerateOptions{Description: DescriptionMonthly})
		if err != nil {
			return nil, err
		}
		planned = append(planned, *next)
		prev = next
		lastTo = next.ToDate
	}
	return planned, nil
}

func SumBills(bills []Bill) int64 {
	var total int64
	for _, b := range bills {
		total += b.Amount
	}
	return total
}
