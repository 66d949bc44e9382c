package risk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sync"

	"cable-billing/internal/pkg/apperrors"

	"golang.org/x/sync/singleflight"
)

const (
	artifactDelayModel   = "delay_model"
	artifactDefaultModel = "default_model"
	artifactScaler       = "standard_scaler"

	kindLinear   = "linear"
	kindLogistic = "logistic"
)

// Model is a trained predictor taking a fixed width feature vector.
type Model interface {
	Predict(ctx context.Context, features []float64) (float64, error)
}

type Scaler interface {
	Transform(features []float64) ([]float64, error)
}

// LinearModel is the exported form of a linear regression or a logistic classifier.
type LinearModel struct {
	Kind         string    `json:"kind"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

func (m *LinearModel) Predict(ctx context.Context, features []float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(features) != len(m.Coefficients) {
		return 0, fmt.Errorf("%w: expected %d features, got %d",
			apperrors.ErrModelUnavailable, len(m.Coefficients), len(features))
	}
	z := m.Intercept
	for i, f := range features {
		z += m.Coefficients[i] * f
	}
	if m.Kind == kindLogistic {
		return 1 / (1 + math.Exp(-z)), nil
	}
	return z, nil
}

// StandardScaler mirrors a fitted mean/scale standardization.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func (s *StandardScaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.Mean) {
		return nil, fmt.Errorf("%w: scaler expects %d features, got %d",
			apperrors.ErrModelUnavailable, len(s.Mean), len(features))
	}
	out := make([]float64, len(features))
	for i, f := range features {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (f - s.Mean[i]) / scale
	}
	return out, nil
}

type ArtifactPaths struct {
	DelayModel   string
	DefaultModel string
	Scaler       string
}

// ArtifactStore loads model artifacts from disk. Without caching every call reads
// the files again; with caching the first load is shared and kept until Invalidate.
type ArtifactStore struct {
	paths        ArtifactPaths
	delayWidth   int
	defaultWidth int
	cache        bool
	logger       *slog.Logger

	group  singleflight.Group
	mu     sync.RWMutex
	loaded map[string]any
}

func NewArtifactStore(paths ArtifactPaths, contract *Contract, cache bool, logger *slog.Logger) *ArtifactStore {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("No logger provided to ArtifactStore, using default stderr logger with WARN level.")
	}
	return &ArtifactStore{
		paths:        paths,
		delayWidth:   contract.DelayWidth(),
		defaultWidth: defaultWidth,
		cache:        cache,
		logger:       logger.With("component", "ArtifactStore"),
		loaded:       make(map[string]any),
	}
}

func (s *ArtifactStore) DelayModel(ctx context.Context) (Model, error) {
	v, err := s.get(ctx, artifactDelayModel, func() (any, error) {
		return loadLinearModel(s.paths.DelayModel, s.delayWidth)
	})
	if err != nil {
		return nil, err
	}
	return v.(Model), nil
}

func (s *ArtifactStore) DefaultModel(ctx context.Context) (Model, error) {
	v, err := s.get(ctx, artifactDefaultModel, func() (any, error) {
		return loadLinearModel(s.paths.DefaultModel, s.defaultWidth)
	})
	if err != nil {
		return nil, err
	}
	return v.(Model), nil
}

func (s *ArtifactStore) Scaler(ctx context.Context) (Scaler, error) {
	v, err := s.get(ctx, artifactScaler, func() (any, error) {
		return loadScaler(s.paths.Scaler, s.defaultWidth)
	})
	if err != nil {
		return nil, err
	}
	return v.(Scaler), nil
}

// Invalidate drops cached artifacts so the next call reads them from disk.
func (s *ArtifactStore) Invalidate() {
	s.mu.Lock()
	s.loaded = make(map[string]any)
	s.mu.Unlock()
	s.logger.Info("Model artifact cache invalidated")
}

func (s *ArtifactStore) get(ctx context.Context, name string, load func() (any, error)) (any, error) {
	if !s.cache {
		v, err := load()
		if err != nil {
			return nil, s.unavailable(ctx, name, err)
		}
		return v, nil
	}

	s.mu.RLock()
	v, ok := s.loaded[name]
	s.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, err, _ := s.group.Do(name, func() (any, error) {
		s.mu.RLock()
		cached, ok := s.loaded[name]
		s.mu.RUnlock()
		if ok {
			return cached, nil
		}
		loaded, err := load()
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.loaded[name] = loaded
		s.mu.Unlock()
		s.logger.InfoContext(ctx, "Model artifact loaded", slog.String("artifact", name))
		return loaded, nil
	})
	if err != nil {
		return nil, s.unavailable(ctx, name, err)
	}
	return v, nil
}

func (s *ArtifactStore) unavailable(ctx context.Context, name string, err error) error {
	s.logger.ErrorContext(ctx, "Failed to load model artifact", slog.String("artifact", name), slog.Any("error", err))
	return apperrors.NewModelUnavailableError(name, err)
}

func loadLinearModel(path string, width int) (*LinearModel, error) {
	var m LinearModel
	if err := readJSON(path, &m); err != nil {
		return nil, err
	}
	if m.Kind == "" {
		m.Kind = kindLinear
	}
	if m.Kind != kindLinear && m.Kind != kindLogistic {
		return nil, fmt.Errorf("unknown model kind %q", m.Kind)
	}
	if len(m.Coefficients) != width {
		return nil, fmt.Errorf("model %s has %d coefficients, contract requires %d", path, len(m.Coefficients), width)
	}
	return &m, nil
}

func loadScaler(path string, width int) (*StandardScaler, error) {
	var s StandardScaler
	if err := readJSON(path, &s); err != nil {
		return nil, err
	}
	if len(s.Mean) != width || len(s.Scale) != width {
		return nil, fmt.Errorf("scaler %s does not match the %d wide default vector", path, width)
	}
	return &s, nil
}

func readJSON(path string, dst any) error {
	if path == "" {
		return errors.New("artifact path is not configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
