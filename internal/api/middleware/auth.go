package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// RevocationChecker reports whether a session token id has been revoked.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Auth validates the session token and injects the caller's identity into
// the request context. A missing, malformed, expired, or revoked token
// yields 403 with no partial data; protected handlers never run without a
// decoded identity.
func Auth(jwtSecret string, revoked RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}

			if revoked != nil {
				jti, _ := claims["jti"].(string)
				if jti != "" {
					isRevoked, revErr := revoked.IsRevoked(c.Request().Context(), jti)
					if revErr != nil {
						return revErr
					}
					if isRevoked {
						return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
					}
				}
			}

			c.Set("user_id", claims["sub"])
			c.Set("role", claims["role"])
			c.Set("token", parts[1])

			return next(c)
		}
	}
}
