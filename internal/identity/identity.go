// Package identity is the single place user identity is resolved from a
// request. Handlers never read user ids from query parameters.
package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/moodverse/moodverse-backend/internal/config"
)

// DemoUserID is the fixed identity assigned to credential-less requests when
// demo mode is enabled.
var DemoUserID = uuid.MustParse("00000000-0000-0000-0000-000000000d30")

var ErrNoIdentity = errors.New("no authenticated identity in request")

// Resolver maps a request to a user id. The demo fallback is an explicit
// configuration switch, never a silent default.
type Resolver struct {
	demoMode bool
}

func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{demoMode: cfg.DemoMode}
}

// Resolve extracts the user UUID from the JWT claims stored in the Fiber
// context. With demo mode on, a request without a token resolves to
// DemoUserID instead of failing.
func (r *Resolver) Resolve(c *fiber.Ctx) (uuid.UUID, error) {
	userID, err := fromToken(c)
	if err == nil {
		return userID, nil
	}
	if r.demoMode {
		return DemoUserID, nil
	}
	return uuid.Nil, err
}

func fromToken(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, ErrNoIdentity
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}
