package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/activity/1", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error { return c.NoContent(http.StatusOK) }

func signTestToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  7,
		"role": "teacher",
		"name": "Ms. Carter",
		"exp":  exp.Unix(),
		"iat":  time.Now().Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func TestRequireRole(t *testing.T) {
	h := RequireRole("teacher", "admin")(okHandler)

	for _, role := range []string{"teacher", "admin", "Admin"} {
		ctx, rec := newAuthContext("")
		ctx.Set("role", role)
		require.NoError(t, h(ctx), "role=%s", role)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	// student (หรือไม่มี role เลย) ต้องโดน 403 — เช่น DELETE /activity/:id
	for _, role := range []string{"student", "parent", ""} {
		ctx, _ := newAuthContext("")
		if role != "" {
			ctx.Set("role", role)
		}
		err := h(ctx)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he, "role=%q", role)
		assert.Equal(t, http.StatusForbidden, he.Code)
	}
}

func TestRequireAuthAttachesClaims(t *testing.T) {
	tok := signTestToken(t, testSecret, time.Now().Add(time.Hour))

	var gotID uint
	var gotRole, gotName string
	h := RequireAuth(testSecret)(func(c echo.Context) error {
		gotID, _ = c.Get("user_id").(uint)
		gotRole, _ = c.Get("role").(string)
		gotName, _ = c.Get("name").(string)
		return c.NoContent(http.StatusOK)
	})

	ctx, rec := newAuthContext("Bearer " + tok)
	require.NoError(t, h(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(7), gotID)
	assert.Equal(t, "teacher", gotRole)
	assert.Equal(t, "Ms. Carter", gotName)
}

func TestRequireAuthRejectsBadTokens(t *testing.T) {
	h := RequireAuth(testSecret)(okHandler)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + signTestToken(t, "other-secret", time.Now().Add(time.Hour))},
		{"expired", "Bearer " + signTestToken(t, testSecret, time.Now().Add(-time.Hour))},
	}
	for _, tc := range cases {
		ctx, _ := newAuthContext(tc.header)
		err := h(ctx)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he, tc.name)
		assert.Equal(t, http.StatusUnauthorized, he.Code, tc.name)
	}
}
