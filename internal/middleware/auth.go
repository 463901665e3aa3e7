package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"dinas_portal/internal/domain/models"
	appjwt "dinas_portal/internal/lib/jwt"
	"dinas_portal/internal/lib/logger/sl"
	"dinas_portal/internal/transport/http/dto/response"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo-contrib/session"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const (
	SessionName     = "admin_session"
	SessionTokenKey = "token"
	TokenCookieName = "admin_token"
	LoginPagePath   = "/admin/login"

	tokenContextKey  = "jwt"
	claimsContextKey = "claims"
)

var errNoSessionToken = errors.New("no token in session")

type RevocationChecker interface {
	CheckRevoked(ctx context.Context, claims models.TokenClaims) error
}

// AdminGuard lets through requests that carry a valid, unrevoked admin token
// in the Authorization header, the admin_token cookie or the admin session.
type AdminGuard struct {
	log     *slog.Logger
	revoked RevocationChecker
	jwt     echo.MiddlewareFunc
}

func NewAdminGuard(log *slog.Logger, secret string, revoked RevocationChecker) *AdminGuard {
	g := &AdminGuard{
		log:     log,
		revoked: revoked,
	}

	g.jwt = echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(secret),
		SigningMethod: echojwt.AlgorithmHS256,
		ContextKey:    tokenContextKey,
		TokenLookup:   "header:Authorization:Bearer ,cookie:" + TokenCookieName,
		TokenLookupFuncs: []echomw.ValuesExtractor{
			sessionToken,
		},
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(appjwt.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			g.log.Debug("token rejected", slog.String("path", c.Request().URL.Path), sl.Err(err))
			return deny(c)
		},
	})

	return g
}

func (g *AdminGuard) Name() string { return "admin_guard" }

func (g *AdminGuard) Intercept(next echo.HandlerFunc) echo.HandlerFunc {
	return g.jwt(g.checkClaims(next))
}

func (g *AdminGuard) checkClaims(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		const op = "middleware.AdminGuard"

		token, ok := c.Get(tokenContextKey).(*jwt.Token)
		if !ok {
			return deny(c)
		}
		raw, ok := token.Claims.(*appjwt.Claims)
		if !ok {
			return deny(c)
		}

		claims, err := raw.ToModel()
		if err != nil || !claims.Role.Valid() {
			return deny(c)
		}

		if err := g.revoked.CheckRevoked(c.Request().Context(), claims); err != nil {
			g.log.Info("token refused", slog.String("op", op), slog.String("jti", claims.ID), sl.Err(err))
			return deny(c)
		}

		c.Set(claimsContextKey, claims)

		return next(c)
	}
}

// ClaimsFromContext returns the claims stored by AdminGuard.
func ClaimsFromContext(c echo.Context) (models.TokenClaims, bool) {
	claims, ok := c.Get(claimsContextKey).(models.TokenClaims)
	return claims, ok
}

func sessionToken(c echo.Context) ([]string, error) {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return nil, err
	}

	token, ok := sess.Values[SessionTokenKey].(string)
	if !ok || token == "" {
		return nil, errNoSessionToken
	}

	return []string{token}, nil
}

func deny(c echo.Context) error {
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
	}
	return c.Redirect(http.StatusFound, LoginPagePath)
}
