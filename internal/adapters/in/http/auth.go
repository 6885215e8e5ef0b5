package http

import (
	"net/http"
	"strings"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// Claims is the payload of a signed access token.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenSigner issues and verifies HMAC-signed access tokens. The token
// carries the user's identifier and role; everything else about the actor is
// derived server-side on each request.
type TokenSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenSigner creates a signer with the given secret and token lifetime.
func NewTokenSigner(secret string, ttl time.Duration) TokenSigner {
	return TokenSigner{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Sign issues a token for the given user.
func (s TokenSigner) Sign(userID kernel.UUID, role user.Role) (string, error) {
	claims := &Claims{
		UserID: userID.String(),
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies a token and rebuilds the actor it identifies.
// Returns an UnauthorizedError for any invalid, expired, or malformed token.
func (s TokenSigner) Parse(tokenString string) (services.Actor, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return services.Actor{}, errs.NewUnauthorizedErrorWithCause("invalid token", err)
	}
	if !token.Valid {
		return services.Actor{}, errs.NewUnauthorizedError("invalid token")
	}

	userID, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return services.Actor{}, errs.NewUnauthorizedErrorWithCause("invalid token", err)
	}
	role, err := user.RoleFromString(claims.Role)
	if err != nil {
		return services.Actor{}, errs.NewUnauthorizedErrorWithCause("invalid token", err)
	}

	actor, err := services.NewActor(userID, role)
	if err != nil {
		return services.Actor{}, errs.NewUnauthorizedErrorWithCause("invalid token", err)
	}
	return actor, nil
}

// AuthMiddleware verifies the request's bearer token and stores the
// resulting actor in the request context for the route handlers.
func AuthMiddleware(signer TokenSigner) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := ExtractToken(c)
			if tokenString == "" {
				return c.JSON(http.StatusUnauthorized, errorEnvelope("missing token"))
			}

			actor, err := signer.Parse(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorEnvelope("invalid token"))
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// ExtractToken reads the access token from the token query parameter or the
// Authorization header. The query parameter exists for websocket clients,
// which cannot set headers from the browser API.
func ExtractToken(c echo.Context) string {
	if t := c.QueryParam("token"); t != "" {
		return t
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// ActorFromContext reads the actor the middleware stored for this request.
// The second return is false on routes mounted without the middleware.
func ActorFromContext(c echo.Context) (services.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(services.Actor)
	return actor, ok
}
