package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cable-billing/internal/api/handler/dto"
	"cable-billing/internal/config"
	"cable-billing/internal/domain/authz"
	"cable-billing/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentRepo struct {
	payments []payment.Payment
}

func (f *fakePaymentRepo) Create(context.Context, *payment.Payment) error { return nil }

func (f *fakePaymentRepo) FindByConnection(context.Context, int64) ([]payment.Payment, error) {
	return f.payments, nil
}

func (f *fakePaymentRepo) FindByCustomer(context.Context, int64) ([]payment.Payment, error) {
	return f.payments, nil
}

func (f *fakePaymentRepo) FindAll(context.Context) ([]payment.Payment, error) { return f.payments, nil }

func (f *fakePaymentRepo) SumByConnection(context.Context, int64) (int64, error) { return 0, nil }

func (f *fakePaymentRepo) FindRecentByCustomer(context.Context, int64, int) ([]payment.Payment, error) {
	return f.payments, nil
}

type openResolver struct{}

func (openResolver) AreaSubject(context.Context, int64) (authz.Subject, error) { return authz.Subject{}, nil }

func (openResolver) CustomerSubject(context.Context, int64) (authz.Subject, error) {
	return authz.Subject{}, nil
}

func (openResolver) ConnectionSubject(context.Context, int64) (authz.Subject, error) {
	return authz.Subject{}, nil
}

func newTestRouter(t *testing.T, authEnabled bool) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Server.Auth = config.AuthConfig{Enabled: authEnabled, JWTSecret: "router-secret", TokenTTL: time.Hour}
	repo := &fakePaymentRepo{payments: []payment.Payment{{ID: 1, ConnectionID: 7, EmployeeID: 5, Amount: 900}}}

	svc := Services{
		Payments: payment.NewService(repo, nil, logger),
		Guard:    authz.NewGuard(openResolver{}, logger),
	}
	return SetupRouter(svc, cfg, nil, logger)
}

func TestSetupRouterHealth(t *testing.T) {
	router := newTestRouter(t, true)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSetupRouterSwaggerRedirect(t *testing.T) {
	router := newTestRouter(t, false)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger", nil))

	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/swagger/index.html", rec.Header().Get("Location"))
}

func TestSetupRouterMetrics(t *testing.T) {
	router := newTestRouter(t, false)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cable_billing_http_requests_total")
}

func TestSetupRouterAuth(t *testing.T) {
	t.Run("protected routes need a token", func(t *testing.T) {
		router := newTestRouter(t, true)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payments", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("issued token grants access", func(t *testing.T) {
		router := newTestRouter(t, true)
		tokenRec := httptest.NewRecorder()
		router.ServeHTTP(tokenRec, httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"role":"superuser"}`)))
		require.Equal(t, http.StatusOK, tokenRec.Code)
		var token dto.TokenResponse
		require.NoError(t, json.NewDecoder(tokenRec.Body).Decode(&token))

		req := httptest.NewRequest(http.MethodGet, "/payments", nil)
		req.Header.Set("Authorization", token.Token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var payments []dto.PaymentResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&payments))
		require.Len(t, payments, 1)
		assert.Equal(t, "900.00", payments[0].Amount)
	})

	t.Run("customer token is forbidden from payment ledger", func(t *testing.T) {
		router := newTestRouter(t, true)
		tokenRec := httptest.NewRecorder()
		router.ServeHTTP(tokenRec, httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"role":"customer","id":3}`)))
		var token dto.TokenResponse
		require.NoError(t, json.NewDecoder(tokenRec.Body).Decode(&token))

		req := httptest.NewRequest(http.MethodGet, "/payments", nil)
		req.Header.Set("Authorization", token.Token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("auth disabled acts as superuser", func(t *testing.T) {
		router := newTestRouter(t, false)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payments", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
