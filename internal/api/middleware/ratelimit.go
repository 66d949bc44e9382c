package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"cable-billing/internal/config"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const unknownClient = "unknown"

// windowCounter counts hits of key inside a fixed window shared by all replicas.
type windowCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

type redisCounter struct {
	client redis.Cmdable
}

func (c redisCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// RateLimiterMiddleware limits requests per client IP. It uses an in-process token
// bucket per IP, or a redis fixed window when a redis client is supplied.
type RateLimiterMiddleware struct {
	limiters sync.Map
	counter  windowCounter
	cfg      config.RateLimitConfig
	logger   *slog.Logger
}

func NewRateLimiterMiddleware(cfg config.RateLimitConfig, logger *slog.Logger) *RateLimiterMiddleware {
	rl := &RateLimiterMiddleware{
		cfg:    cfg,
		logger: logger.With("component", "RateLimiter"),
	}
	if cfg.Enabled {
		go rl.cleanupLimiters()
	}
	return rl
}

func NewRedisRateLimiterMiddleware(cfg config.RateLimitConfig, client redis.Cmdable, logger *slog.Logger) *RateLimiterMiddleware {
	if client == nil {
		logger.Warn("Redis rate limiting requested without a client; using in-process limiter")
		return NewRateLimiterMiddleware(cfg, logger)
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Second
	}
	logger.Info("Rate limiter backed by redis", "rps", cfg.RPS, "window", cfg.Window)
	return &RateLimiterMiddleware{
		counter: redisCounter{client: client},
		cfg:     cfg,
		logger:  logger.With("component", "RateLimiter"),
	}
}

func (rl *RateLimiterMiddleware) getLimiter(ip string) *rate.Limiter {
	limiter, _ := rl.limiters.LoadOrStore(ip, rate.NewLimiter(rate.Limit(rl.cfg.RPS), rl.cfg.Burst))
	return limiter.(*rate.Limiter)
}

func (rl *RateLimiterMiddleware) cleanupLimiters() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.limiters.Range(func(key, value any) bool {
			limiter := value.(*rate.Limiter)
			if limiter.Tokens() >= float64(rl.cfg.Burst) {
				rl.limiters.Delete(key)
			}
			return true
		})
	}
}

func (rl *RateLimiterMiddleware) extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ip := strings.TrimSpace(strings.Split(xff, ",")[0])
		if net.ParseIP(ip) != nil {
			return ip
		}
	}

	if xRealIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); net.ParseIP(xRealIP) != nil {
		return xRealIP
	}

	if ip, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return ip
	}
	if parsed := net.ParseIP(r.RemoteAddr); parsed != nil {
		return parsed.String()
	}
	return unknownClient
}

// allow reports whether the request may proceed. Redis failures let the request through.
func (rl *RateLimiterMiddleware) allow(ctx context.Context, ip string) bool {
	if rl.counter == nil {
		return rl.getLimiter(ip).Allow()
	}

	limit := int64(rl.cfg.RPS * rl.cfg.Window.Seconds())
	if limit < 1 {
		limit = 1
	}
	count, err := rl.counter.Hit(ctx, "ratelimit:"+ip, rl.cfg.Window)
	if err != nil {
		rl.logger.ErrorContext(ctx, "Rate limit counter failed, allowing request", slog.String("ip", ip), slog.Any("error", err))
		return true
	}
	return count <= limit
}

func (rl *RateLimiterMiddleware) Middleware(next http.Handler) http.Handler {
	if !rl.cfg.Enabled {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := rl.extractIP(r)
		if !rl.allow(r.Context(), ip) {
			rl.logger.WarnContext(r.Context(), "Rate limit exceeded", slog.String("ip", ip))
			w.Header().Set("Content-Type", "application/json")
			if rl.counter != nil {
				w.Header().Set("Retry-After", fmt.Sprintf("%.0f", rl.cfg.Window.Seconds()))
			}
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]string{
					"message": "Rate limit exceeded",
				},
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
