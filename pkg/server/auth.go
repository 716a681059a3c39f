package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	jwtverifier "github.com/okta/okta-jwt-verifier-golang"
)

const userContextKey = "straysense.user"

// TokenVerifier validates bearer tokens and resolves them to an opaque user
// id. The engine and most endpoints work fine anonymously; only saved
// records are scoped to the user.
type TokenVerifier struct {
	verifier *jwtverifier.JwtVerifier
}

func NewTokenVerifier(issuer, audience string) *TokenVerifier {
	jv := jwtverifier.JwtVerifier{
		Issuer: issuer,
		ClaimsToValidate: map[string]string{
			"aud": audience,
		},
	}
	return &TokenVerifier{verifier: jv.New()}
}

// Verify returns the token's subject.
func (v *TokenVerifier) Verify(token string) (string, error) {
	jwt, err := v.verifier.VerifyAccessToken(token)
	if err != nil {
		return "", err
	}
	sub, ok := jwt.Claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("token has no subject claim")
	}
	return sub, nil
}

// identity resolves the request's user. Requests without a token stay
// anonymous; an invalid token is rejected rather than downgraded.
func (s *Server) identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(userContextKey, "")

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || s.Verifier == nil {
				return next(c)
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "malformed authorization header")
			}

			sub, err := s.Verifier.Verify(strings.TrimSpace(token))
			if err != nil {
				log.Warn("token verification failed", "error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(userContextKey, sub)
			return next(c)
		}
	}
}

func userID(c echo.Context) string {
	if v, ok := c.Get(userContextKey).(string); ok {
		return v
	}
	return ""
}
