package jwtauth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"cable-billing/internal/domain/authz"
	"cable-billing/internal/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "cable-billing"

// Claims carries the actor in a signed token. Subject holds the actor ID.
type Claims struct {
	Role    string `json:"role"`
	IsAdmin bool   `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

// Issue signs a token for actor that expires after ttl.
func Issue(secret string, actor authz.Actor, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("%w: jwt secret is not configured", apperrors.ErrInternalServer)
	}
	if actor.Kind == authz.KindAnonymous {
		return "", fmt.Errorf("%w: cannot issue a token for an anonymous actor", apperrors.ErrInvalidArgument)
	}
	claims := Claims{
		Role:    actor.Kind.String(),
		IsAdmin: actor.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(actor.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse verifies tokenString and returns the actor it names.
func Parse(secret, tokenString string) (authz.Actor, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return authz.Anonymous(), fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, errOrInvalid(err))
	}

	id, _ := strconv.ParseInt(claims.Subject, 10, 64)
	switch claims.Role {
	case authz.KindSuperUser.String():
		return authz.SuperUser(), nil
	case authz.KindEmployee.String():
		if id <= 0 {
			break
		}
		return authz.Employee(id, claims.IsAdmin), nil
	case authz.KindCustomer.String():
		if id <= 0 {
			break
		}
		return authz.Customer(id), nil
	}
	return authz.Anonymous(), fmt.Errorf("%w: token names no valid actor", apperrors.ErrUnauthorized)
}

// ParseRole maps a role name to an actor kind.
func ParseRole(role string) (authz.Kind, error) {
	for _, k := range []authz.Kind{authz.KindCustomer, authz.KindEmployee, authz.KindSuperUser} {
		if role == k.String() {
			return k, nil
		}
	}
	return authz.KindAnonymous, apperrors.NewValidationError("role", "must be customer, employee or superuser")
}

func errOrInvalid(err error) error {
	if err != nil {
		return err
	}
	return errors.New("token is not valid")
}
