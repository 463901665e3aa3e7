package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"dinas_portal/internal/lib/logger/sl"
	"dinas_portal/internal/middleware"
	"dinas_portal/internal/services/auth"
	"dinas_portal/internal/transport/http/dto/request"
	"dinas_portal/internal/transport/http/dto/response"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	adminHomePath  = "/admin"
	loginErrorPath = middleware.LoginPagePath + "?error=1"
)

// Login godoc
// @Summary Login admin
// @Description Menerima JSON atau form. Token juga disimpan di sesi dan cookie admin_token. Form diarahkan ke /admin.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Kredensial"
// @Success 200 {object} response.Response{data=object{token=string,expiresAt=string,user=models.User}}
// @Failure 400 {object} response.Response "Format permintaan salah"
// @Failure 401 {object} response.Response "Username atau password salah"
// @Failure 429 {object} response.Response "Terlalu banyak permintaan"
// @Router /api/auth/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(
		slog.String("op", op),
	)

	form := isFormRequest(c)

	var req request.LoginRequest
	if err := c.Bind(&req); err != nil || c.Validate(req) != nil {
		if form {
			return c.Redirect(http.StatusFound, loginErrorPath)
		}
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	token, user, err := r.AuthService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			log.Error("login failed", sl.Err(err))
			return c.JSON(http.StatusInternalServerError, response.ErrInternal)
		}

		log.Warn("invalid credentials", slog.String("username", req.Username))
		if form {
			return c.Redirect(http.StatusFound, loginErrorPath)
		}
		return c.JSON(http.StatusUnauthorized, response.ErrorResponse(response.MsgInvalidCredentials))
	}

	if err := r.storeToken(c, token.AccessToken, token.ExpiresAt); err != nil {
		log.Error("failed to save session", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	log.Info("admin logged in", slog.String("username", user.Username))

	if form {
		return c.Redirect(http.StatusFound, adminHomePath)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]interface{}{
		"token":     token.AccessToken,
		"expiresAt": token.ExpiresAt,
		"user":      user,
	}))
}

// Logout godoc
// @Summary Logout
// @Description Mencabut token yang dikirim, lalu menghapus sesi dan cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 500 {object} response.Response "Kesalahan server"
// @Router /api/auth/logout [post]
func (r *Routers) Logout(c echo.Context) error {
	const op = "http.routers.Logout"

	log := r.log.With(
		slog.String("op", op),
	)

	ctx := c.Request().Context()

	if raw := requestToken(c); raw != "" {
		claims, err := r.TokenService.ParseToken(ctx, raw)
		if err == nil {
			if err := r.TokenService.RevokeToken(ctx, claims); err != nil {
				log.Error("failed to revoke token", sl.Err(err))
				return c.JSON(http.StatusInternalServerError, response.ErrInternal)
			}
		}
	}

	if err := r.storeToken(c, "", time.Time{}); err != nil {
		log.Warn("failed to clear session", sl.Err(err))
	}

	if isFormRequest(c) {
		return c.Redirect(http.StatusFound, middleware.LoginPagePath)
	}

	return c.JSON(http.StatusOK, response.MessageResponse(response.MsgLoggedOut))
}

// Me godoc
// @Summary Admin saat ini
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response{data=object{id=string,username=string,role=string,expiresAt=string}}
// @Failure 401 {object} response.Response "Belum login"
// @Security ApiKeyAuth
// @Router /api/auth/me [get]
func (r *Routers) Me(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]interface{}{
		"id":        claims.UserID,
		"username":  claims.Username,
		"role":      claims.Role,
		"expiresAt": claims.ExpiresAt,
	}))
}

// storeToken writes the token into the session and the admin_token cookie.
// An empty token clears both.
func (r *Routers) storeToken(c echo.Context, token string, expiresAt time.Time) error {
	maxAge := -1
	if token != "" {
		maxAge = int(time.Until(expiresAt).Seconds())
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   r.opts.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	sess, err := session.Get(middleware.SessionName, c)
	if err != nil {
		return err
	}

	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   r.opts.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if token == "" {
		delete(sess.Values, middleware.SessionTokenKey)
	} else {
		sess.Values[middleware.SessionTokenKey] = token
	}

	return sess.Save(c.Request(), c.Response())
}

func requestToken(c echo.Context) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}

	if cookie, err := c.Cookie(middleware.TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	if sess, err := session.Get(middleware.SessionName, c); err == nil {
		if token, ok := sess.Values[middleware.SessionTokenKey].(string); ok {
			return token
		}
	}

	return ""
}
