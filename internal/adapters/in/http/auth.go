package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/generated/servers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "fastfood.actor"

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrInvalidToken    = errors.New("invalid or expired token")
)

// Claims are the token claims the service relies on. The subject carries the
// account UUID.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticate verifies HS256 bearer tokens signed with secret and stores the
// resulting kernel.Actor on the echo context. Requests without an
// Authorization header pass through anonymously; handlers that act on behalf
// of someone answer 401 for them.
func Authenticate(secret []byte) echo.MiddlewareFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	keyFunc := func(*jwt.Token) (any, error) {
		return secret, nil
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(ctx)
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return unauthorized(ctx, ErrUnauthenticated)
			}

			claims := &Claims{}
			if _, err := parser.ParseWithClaims(raw, claims, keyFunc); err != nil {
				return unauthorized(ctx, ErrInvalidToken)
			}
			actor, err := claims.actor()
			if err != nil {
				return unauthorized(ctx, ErrInvalidToken)
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func (c *Claims) actor() (kernel.Actor, error) {
	id, err := kernel.UUIDFromString(c.Subject)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("subject: %w", err)
	}
	role, err := kernel.ParseRole(c.Role)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("role: %w", err)
	}
	return kernel.NewActor(id, role)
}

func actorFrom(ctx echo.Context) (kernel.Actor, error) {
	actor, ok := ctx.Get(actorContextKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, ErrUnauthenticated
	}
	return actor, nil
}

func unauthorized(ctx echo.Context, err error) error {
	ctx.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: err.Error(),
	})
}
