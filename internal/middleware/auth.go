package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/moodverse/moodverse-backend/internal/config"
	"github.com/moodverse/moodverse-backend/internal/dto"
)

func JWTProtected(cfg *config.Config) fiber.Handler {
	jwtHandler := jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})

	if !cfg.DemoMode {
		return jwtHandler
	}

	// Demo mode: requests without credentials fall through to the demo
	// identity instead of being rejected.
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) == "" {
			return c.Next()
		}
		return jwtHandler(c)
	}
}
