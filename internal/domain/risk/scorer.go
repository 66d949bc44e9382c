package risk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"cable-billing/internal/infrastructure/monitoring"
	"cable-billing/internal/pkg/apperrors"
)

const (
	scorerDelay   = "expected_delay"
	scorerDefault = "default_probability"

	daysPerWeek = 7
)

// ProfileReader loads the scoring inputs of one customer.
type ProfileReader interface {
	LoadProfile(ctx context.Context, customerID int64) (*Profile, error)
}

// ModelSource hands out the trained artifacts.
type ModelSource interface {
	DelayModel(ctx context.Context) (Model, error)
	DefaultModel(ctx context.Context) (Model, error)
	Scaler(ctx context.Context) (Scaler, error)
}

type Assessment struct {
	CustomerID          int64
	ExpectedDelay       int
	ExpectedPaymentDate time.Time
	DefaultProbability  float64
}

type Service interface {
	// ExpectedDelay is the predicted payment day of the current month, rounded down to whole weeks
	// and shifted by the collection date.
	ExpectedDelay(ctx context.Context, customerID int64) (int, error)
	ExpectedPaymentDate(ctx context.Context, customerID int64) (time.Time, error)
	DefaultProbability(ctx context.Context, customerID int64) (float64, error)
	Assess(ctx context.Context, customerID int64) (*Assessment, error)
}

var _ Service = (*scorer)(nil)

type scorer struct {
	profiles ProfileReader
	models   ModelSource
	contract *Contract
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(profiles ProfileReader, models ModelSource, contract *Contract, logger *slog.Logger) Service {
	if profiles == nil || models == nil || contract == nil {
		panic("risk scorer dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	return &scorer{
		profiles: profiles,
		models:   models,
		contract: contract,
		logger:   logger.With(slog.String("component", "riskScorer")),
		now:      time.Now,
	}
}

func (s *scorer) ExpectedDelay(ctx context.Context, customerID int64) (int, error) {
	p, err := s.profiles.LoadProfile(ctx, customerID)
	if err != nil {
		return 0, err
	}
	return s.expectedDelay(ctx, p, s.now())
}

func (s *scorer) ExpectedPaymentDate(ctx context.Context, customerID int64) (time.Time, error) {
	now := s.now()
	delay, err := s.ExpectedDelay(ctx, customerID)
	if err != nil {
		return time.Time{}, err
	}
	return paymentDate(now, delay), nil
}

func (s *scorer) DefaultProbability(ctx context.Context, customerID int64) (float64, error) {
	p, err := s.profiles.LoadProfile(ctx, customerID)
	if err != nil {
		return 0, err
	}
	return s.defaultProbability(ctx, p, s.now())
}

func (s *scorer) Assess(ctx context.Context, customerID int64) (*Assessment, error) {
	p, err := s.profiles.LoadProfile(ctx, customerID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	delay, err := s.expectedDelay(ctx, p, now)
	if err != nil {
		return nil, err
	}
	prob, err := s.defaultProbability(ctx, p, now)
	if err != nil {
		return nil, err
	}
	return &Assessment{
		CustomerID:          customerID,
		ExpectedDelay:       delay,
		ExpectedPaymentDate: paymentDate(now, delay),
		DefaultProbability:  prob,
	}, nil
}

func (s *scorer) expectedDelay(ctx context.Context, p *Profile, now time.Time) (delay int, err error) {
	defer func() { s.record(ctx, scorerDelay, p.CustomerID, err) }()

	vector, err := s.contract.DelayVector(*p, now)
	if err != nil {
		return 0, err
	}
	model, err := s.models.DelayModel(ctx)
	if err != nil {
		return 0, err
	}
	score, err := model.Predict(ctx, vector)
	if err != nil {
		return 0, fmt.Errorf("delay prediction failed: %w", err)
	}
	return WeekFloor(score) + p.CollectionDate, nil
}

func (s *scorer) defaultProbability(ctx context.Context, p *Profile, now time.Time) (prob float64, err error) {
	defer func() { s.record(ctx, scorerDefault, p.CustomerID, err) }()

	vector, err := s.contract.DefaultVector(*p, now)
	if err != nil {
		return 0, err
	}
	scaler, err := s.models.Scaler(ctx)
	if err != nil {
		return 0, err
	}
	model, err := s.models.DefaultModel(ctx)
	if err != nil {
		return 0, err
	}
	scaled, err := scaler.Transform(vector)
	if err != nil {
		return 0, err
	}
	out, err := model.Predict(ctx, scaled)
	if err != nil {
		return 0, fmt.Errorf("default prediction failed: %w", err)
	}
	return clamp01(1 - out), nil
}

func (s *scorer) record(ctx context.Context, name string, customerID int64, err error) {
	switch {
	case err == nil:
		monitoring.RecordPrediction(name, "success")
	case errors.Is(err, apperrors.ErrModelUnavailable):
		monitoring.RecordPrediction(name, "unavailable")
		s.logger.ErrorContext(ctx, "Risk model unavailable", slog.String("scorer", name),
			slog.Int64("customerID", customerID), slog.Any("error", err))
	default:
		monitoring.RecordPrediction(name, "error")
		s.logger.WarnContext(ctx, "Risk scoring failed", slog.String("scorer", name),
			slog.Int64("customerID", customerID), slog.Any("error", err))
	}
}

// WeekFloor rounds a day count down to a multiple of seven.
func WeekFloor(score float64) int {
	return int(math.Floor(score/daysPerWeek)) * daysPerWeek
}

// paymentDate places the delay in the current month; overflowing days roll into the next month.
func paymentDate(now time.Time, delay int) time.Time {
	return time.Date(now.Year(), now.Month(), delay, 0, 0, 0, 0, time.UTC)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
