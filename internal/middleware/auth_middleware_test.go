package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bobTheBar/domain"
	"bobTheBar/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-secret"

func protected(e *echo.Echo) {
	e.POST("/bottles", func(c echo.Context) error {
		return c.String(http.StatusCreated, "ok")
	}, AuthMiddleware(testSecret), AdminOnly())
}

func call(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/bottles", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func token(t *testing.T, secret, role string, ttl time.Duration) string {
	t.Helper()
	tok, err := utils.GenerateJWT(secret, "7", role, ttl)
	require.NoError(t, err)
	return tok
}

func TestAuthMiddleware(t *testing.T) {
	e := echo.New()
	protected(e)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + token(t, "other", domain.RoleAdmin, time.Hour), http.StatusUnauthorized},
		{"expired", "Bearer " + token(t, testSecret, domain.RoleAdmin, -time.Minute), http.StatusUnauthorized},
		{"member", "Bearer " + token(t, testSecret, domain.RoleMember, time.Hour), http.StatusForbidden},
		{"admin", "Bearer " + token(t, testSecret, domain.RoleAdmin, time.Hour), http.StatusCreated},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, call(e, tc.header).Code)
		})
	}
}

func TestErrorHandler(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"rate limit exceeded"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Not Found"}`, rec.Body.String())
}
