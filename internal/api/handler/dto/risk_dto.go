package dto

import (
	"cable-billing/internal/domain/risk"
)

type RiskResponse struct {
	CustomerID          string  `json:"customerId"`
	ExpectedDelay       int     `json:"expectedDelay"`
	ExpectedPaymentDate string  `json:"expectedPaymentDate"`
	DefaultProbability  float64 `json:"defaultProbability"`
}

func NewRiskResponse(a *risk.Assessment) RiskResponse {
	if a == nil {
		return RiskResponse{}
	}
	return RiskResponse{
		CustomerID:          formatID(a.CustomerID),
		ExpectedDelay:       a.ExpectedDelay,
		ExpectedPaymentDate: FormatDate(a.ExpectedPaymentDate),
		DefaultProbability:  a.DefaultProbability,
	}
}
