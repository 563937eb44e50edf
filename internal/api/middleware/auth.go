package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// RevocationChecker reports whether a username's tokens have been invalidated
// (staff deactivation denylists the account in Redis).
type RevocationChecker interface {
	IsRevoked(ctx context.Context, username string) (bool, error)
}

// Auth validates the JWT, rejects revoked accounts and injects claims into
// context. revoked may be nil, in which case the denylist check is skipped.
func Auth(jwtSecret string, revoked RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			username, _ := claims["username"].(string)
			if revoked != nil {
				// Fail open on checker errors so an unavailable denylist does
				// not lock out the whole API.
				if isRevoked, err := revoked.IsRevoked(c.Request().Context(), username); err == nil && isRevoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			c.Set("username", username)
			c.Set("role", claims["role"])
			c.Set("station_codes", stationCodes(claims))

			return next(c)
		}
	}
}

// stationCodes extracts the station_codes claim, which JSON decoding leaves
// as []interface{}.
func stationCodes(claims jwt.MapClaims) []string {
	raw, _ := claims["station_codes"].([]interface{})
	codes := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			codes = append(codes, s)
		}
	}
	return codes
}
