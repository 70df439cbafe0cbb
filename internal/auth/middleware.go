package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// ContextKey is the echo context key under which validated claims are stored.
const ContextKey = "user"

// Middleware returns the authentication gate for protected routes. Per
// request: no Authorization header rejects with 401; the header value is
// stripped of quotes and an optional Bearer prefix, decoded, and checked for
// expiry; on success the claims are attached to the request context.
func Middleware(tokens *TokenService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: ContextKey,
		// The default Authorization lookup insists on a Bearer prefix;
		// clients of this API send the token with or without it.
		TokenLookupFuncs: []middleware.ValuesExtractor{
			func(c echo.Context) ([]string, error) {
				header := c.Request().Header.Get(echo.HeaderAuthorization)
				if header == "" {
					return nil, errors.New("authorization header not provided")
				}
				return []string{header}, nil
			},
		},
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			claims, err := tokens.Decode(normalizeToken(raw))
			if err != nil {
				return nil, ErrInvalidToken
			}
			if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
				return nil, ErrTokenExpired
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			message := "authorization header not provided"
			switch {
			case errors.Is(err, ErrTokenExpired):
				message = ErrTokenExpired.Error()
			case errors.Is(err, ErrInvalidToken):
				message = ErrInvalidToken.Error()
			}
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"status":  "error",
				"message": message,
			})
		},
	})
}

// ClaimsFromContext returns the claims attached by Middleware, or nil when
// the request was not authenticated.
func ClaimsFromContext(c echo.Context) *Claims {
	claims, _ := c.Get(ContextKey).(*Claims)
	return claims
}

// normalizeToken strips surrounding quotes and an optional Bearer prefix from
// the Authorization header value. Clients send the token with or without the
// scheme, some with the value still quoted.
func normalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	token = strings.ReplaceAll(token, `"`, "")
	token = strings.ReplaceAll(token, "'", "")
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token
}
