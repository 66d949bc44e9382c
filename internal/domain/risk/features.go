package risk

import (
	"time"

	"cable-billing/internal/domain/customer"
	"cable-billing/internal/pkg/apperrors"
)

const (
	carrierCount   = 3
	defaultWidth   = 8
	carrierAirtel  = 0
	carrierDialog  = 1
	carrierMobital = 2
)

// numericTail lists the values appended after the payment offsets: month, age, collection date.
var numericTail = [...]string{"month", "age", "collectionDate"}

// Profile is everything the feature builders read about a customer.
type Profile struct {
	CustomerID       int64
	AreaName         string
	CollectionDate   int
	AgentName        string
	PhoneNumber      string
	IdentityNo       string
	HasDigitalBox    bool
	OfferPowerIntake bool
	// RecentPayments holds payment dates, oldest first.
	RecentPayments []time.Time
}

// CarrierIndex guesses the mobile carrier from the third digit of a local number:
// 6 or 7 is Dialog, 0 or 1 is Airtel, anything else Mobital.
func CarrierIndex(phoneNumber string) (int, error) {
	if len(phoneNumber) < 3 {
		return 0, apperrors.NewValidationError("phoneNumber", "too short to identify the carrier")
	}
	switch phoneNumber[2] {
	case '6', '7':
		return carrierDialog, nil
	case '0', '1':
		return carrierAirtel, nil
	default:
		return carrierMobital, nil
	}
}

func OneHot(size, index int) []float64 {
	v := make([]float64, size)
	if index >= 0 && index < size {
		v[index] = 1
	}
	return v
}

func (c *Contract) AreaVector(areaName string) []float64 {
	return OneHot(len(c.Delay.Areas), indexOf(c.Delay.Areas, areaName))
}

func (c *Contract) AgentVector(agentName string) []float64 {
	return OneHot(len(c.Delay.Agents), indexOf(c.Delay.Agents, agentName))
}

func (c *Contract) CarrierVector(phoneNumber string) ([]float64, error) {
	idx, err := CarrierIndex(phoneNumber)
	if err != nil {
		return nil, err
	}
	return OneHot(len(c.Delay.Carriers), idx), nil
}

// PaymentOffsets returns the day offsets of the latest payments relative to the
// collection date, left-padded to the time series length.
func (c *Contract) PaymentOffsets(payments []time.Time, collectionDate int) []float64 {
	n := c.Delay.TimeSeriesOffset
	if len(payments) > n {
		payments = payments[len(payments)-n:]
	}
	offsets := make([]float64, 0, n)
	for i := len(payments); i < n; i++ {
		offsets = append(offsets, c.Delay.PaddingValue)
	}
	for _, p := range payments {
		offsets = append(offsets, float64(p.Day()-collectionDate))
	}
	return offsets
}

// DelayVector builds the normalized input of the payment delay model.
func (c *Contract) DelayVector(p Profile, now time.Time) ([]float64, error) {
	id, err := customer.ParseIdentity(p.IdentityNo)
	if err != nil {
		return nil, err
	}
	carrier, err := c.CarrierVector(p.PhoneNumber)
	if err != nil {
		return nil, err
	}

	numeric := c.PaymentOffsets(p.RecentPayments, p.CollectionDate)
	numeric = append(numeric, float64(now.Month()), float64(id.Age(now)), float64(p.CollectionDate))
	for i := range numeric {
		numeric[i] = (numeric[i] - c.Delay.Mean[i]) / c.Delay.Variance[i]
	}

	vector := make([]float64, 0, c.DelayWidth())
	vector = append(vector, numeric...)
	vector = append(vector, c.AreaVector(p.AreaName)...)
	vector = append(vector, boolFeature(id.IsMale()), boolFeature(p.HasDigitalBox))
	vector = append(vector, carrier...)
	vector = append(vector, c.AgentVector(p.AgentName)...)
	return vector, nil
}

// DefaultVector builds the input of the default classifier:
// area, agent, carrier, gender and box rates, power intake flag, age and collection date.
func (c *Contract) DefaultVector(p Profile, now time.Time) ([]float64, error) {
	id, err := customer.ParseIdentity(p.IdentityNo)
	if err != nil {
		return nil, err
	}
	carrierIdx, err := CarrierIndex(p.PhoneNumber)
	if err != nil {
		return nil, err
	}

	box := "analog"
	if p.HasDigitalBox {
		box = "digital"
	}

	d := c.Default
	vector := make([]float64, 0, defaultWidth)
	vector = append(vector,
		c.rate(d.AreaRates, p.AreaName),
		c.rate(d.AgentRates, p.AgentName),
		c.rate(d.CarrierRates, c.Delay.Carriers[carrierIdx]),
		c.rate(d.GenderRates, string(id.Gender())),
		c.rate(d.BoxRates, box),
		boolFeature(p.OfferPowerIntake),
		float64(id.Age(now)),
		float64(p.CollectionDate),
	)
	return vector, nil
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
