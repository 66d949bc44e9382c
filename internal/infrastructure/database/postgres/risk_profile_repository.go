package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cable-billing/internal/domain/risk"
	"cable-billing/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

// RiskProfileRepository assembles scoring inputs from the customer, its area,
// the responsible agent and the latest payments.
type RiskProfileRepository struct {
	db             DBPool
	payments       *PaymentRepository
	recentPayments int
	logger         *slog.Logger
}

var _ risk.ProfileReader = (*RiskProfileRepository)(nil)

func NewRiskProfileRepository(db DBPool, payments *PaymentRepository, recentPayments int, logger *slog.Logger) *RiskProfileRepository {
	if db == nil || payments == nil {
		panic("DBPool and PaymentRepository cannot be nil for RiskProfileRepository")
	}
	return &RiskProfileRepository{
		db:             db,
		payments:       payments,
		recentPayments: recentPayments,
		logger:         defaultLogger("RiskProfileRepository", logger),
	}
}

func (r *RiskProfileRepository) LoadProfile(ctx context.Context, customerID int64) (*risk.Profile, error) {
	query := `
        SELECT cu.id, a.name, a.collection_date, ag.first_name, cu.phone_number, cu.identity_no,
            cu.has_digital_box, cu.offer_power_intake
        FROM customers cu
        JOIN areas a ON a.id = cu.area_id
        JOIN agents ag ON ag.id = a.agent_id
        WHERE cu.id = $1`

	var p risk.Profile
	start := time.Now()
	err := r.db.QueryRow(ctx, query, customerID).Scan(
		&p.CustomerID, &p.AreaName, &p.CollectionDate, &p.AgentName, &p.PhoneNumber, &p.IdentityNo,
		&p.HasDigitalBox, &p.OfferPowerIntake,
	)
	observe("LoadRiskProfile", start, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Customer not found for risk profile", slog.Int64("customerID", customerID))
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	recent, err := r.payments.FindRecentByCustomer(ctx, customerID, r.recentPayments)
	if err != nil {
		return nil, err
	}
	p.RecentPayments = make([]time.Time, 0, len(recent))
	for _, pay := range recent {
		p.RecentPayments = append(p.RecentPayments, pay.PaidAt)
	}
	return &p, nil
}
