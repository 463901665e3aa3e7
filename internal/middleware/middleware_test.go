package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dinas_portal/internal/domain/models"
	appjwt "dinas_portal/internal/lib/jwt"
	"dinas_portal/internal/lib/logger/handlers/slogdiscard"
	"dinas_portal/internal/metrics"
	"dinas_portal/internal/ratelimit"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type recorder struct {
	name  string
	calls *[]string
}

func (r recorder) Name() string { return r.name }

func (r recorder) Intercept(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		*r.calls = append(*r.calls, r.name)
		return next(c)
	}
}

func TestPipeline_Order(t *testing.T) {
	var calls []string

	p := NewPipeline(recorder{"a", &calls}, recorder{"b", &calls}).
		With(recorder{"c", &calls})

	assert.Equal(t, []string{"a", "b", "c"}, p.Names())

	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		calls = append(calls, "handler")
		return c.NoContent(http.StatusOK)
	}, p.Middleware())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"a", "b", "c", "handler"}, calls)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusTeapot, "pong")
	}, NewPipeline(NewRequestLogger(log)).Middleware())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping?x=1", nil))

	assert.Contains(t, buf.String(), `"uri":"/ping?x=1"`)
	assert.Contains(t, buf.String(), `"status":418`)
}

func TestPrometheus(t *testing.T) {
	e := echo.New()
	e.GET("/metrics-test/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusAccepted)
	}, NewPipeline(NewPrometheus()).Middleware())

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-test/:id", "202")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"1", "2"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics-test/"+id, nil))
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func TestRateLimit(t *testing.T) {
	newServer := func(l ratelimit.Limiter) *echo.Echo {
		e := echo.New()
		e.POST("/api/laporan", func(c echo.Context) error {
			return c.NoContent(http.StatusCreated)
		}, NewPipeline(NewRateLimit(slogdiscard.NewDiscardLogger(), l)).Middleware())
		return e
	}

	post := func(e *echo.Echo, ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/laporan", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("burst then reject", func(t *testing.T) {
		e := newServer(ratelimit.NewMemoryLimiter(0.001, 2, time.Minute))

		assert.Equal(t, http.StatusCreated, post(e, "10.0.0.1").Code)
		assert.Equal(t, http.StatusCreated, post(e, "10.0.0.1").Code)

		rec := post(e, "10.0.0.1")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), "Terlalu banyak permintaan, coba lagi nanti")

		assert.Equal(t, http.StatusCreated, post(e, "10.0.0.2").Code)
	})

	t.Run("limiter error lets request through", func(t *testing.T) {
		e := newServer(failingLimiter{})
		assert.Equal(t, http.StatusCreated, post(e, "10.0.0.3").Code)
	})
}

type stubRevocation struct {
	revoked map[string]bool
}

func (s stubRevocation) CheckRevoked(_ context.Context, claims models.TokenClaims) error {
	if s.revoked[claims.ID] {
		return errors.New("revoked")
	}
	return nil
}

func issue(t *testing.T) (string, models.TokenClaims) {
	t.Helper()
	user := models.User{ID: uuid.New(), Username: "admin", Role: models.RoleAdmin}
	tok, claims, err := appjwt.NewToken(user, time.Hour, testSecret)
	require.NoError(t, err)
	return tok.AccessToken, claims
}

func guardedServer(rev stubRevocation) *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("session-secret"))))

	guard := NewPipeline(NewAdminGuard(slogdiscard.NewDiscardLogger(), testSecret, rev)).Middleware()

	handler := func(c echo.Context) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.String(http.StatusOK, claims.Username)
	}

	e.GET("/api/admin/berita", handler, guard)
	e.GET("/admin", handler, guard)
	e.GET("/session/:token", func(c echo.Context) error {
		sess, _ := session.Get(SessionName, c)
		sess.Values[SessionTokenKey] = c.Param("token")
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})

	return e
}

func TestAdminGuard(t *testing.T) {
	token, claims := issue(t)

	tests := []struct {
		name     string
		path     string
		prepare  func(r *http.Request)
		revoked  bool
		wantCode int
	}{
		{
			name:     "bearer header",
			path:     "/api/admin/berita",
			prepare:  func(r *http.Request) { r.Header.Set(echo.HeaderAuthorization, "Bearer "+token) },
			wantCode: http.StatusOK,
		},
		{
			name:     "cookie",
			path:     "/api/admin/berita",
			prepare:  func(r *http.Request) { r.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token}) },
			wantCode: http.StatusOK,
		},
		{
			name:     "missing token api",
			path:     "/api/admin/berita",
			prepare:  func(r *http.Request) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "missing token page",
			path:     "/admin",
			prepare:  func(r *http.Request) {},
			wantCode: http.StatusFound,
		},
		{
			name:     "bad signature",
			path:     "/api/admin/berita",
			prepare:  func(r *http.Request) { r.Header.Set(echo.HeaderAuthorization, "Bearer "+token+"x") },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "revoked",
			path:     "/api/admin/berita",
			prepare:  func(r *http.Request) { r.Header.Set(echo.HeaderAuthorization, "Bearer "+token) },
			revoked:  true,
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rev := stubRevocation{revoked: map[string]bool{}}
			if tt.revoked {
				rev.revoked[claims.ID] = true
			}
			e := guardedServer(rev)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			switch tt.wantCode {
			case http.StatusOK:
				assert.Equal(t, "admin", rec.Body.String())
			case http.StatusFound:
				assert.Equal(t, LoginPagePath, rec.Header().Get(echo.HeaderLocation))
			case http.StatusUnauthorized:
				assert.Contains(t, rec.Body.String(), `"success":false`)
			}
		})
	}
}

func TestAdminGuard_Session(t *testing.T) {
	token, _ := issue(t)
	e := guardedServer(stubRevocation{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/session/"+token, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", rec.Body.String())
}
