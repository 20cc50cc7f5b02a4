package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (chi.Router, jwt.Service) {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret-key", "30m", "168h", "10m", "10m")

	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
	r.Use(AuthRequired(jwtService.JWTAuth()))

	r.With(RequirePermission(user.PermissionManageUsers)).Get("/admin", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.With(RequirePermission(user.PermissionDeleteProfile)).Get("/employees/{employeeId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
		id, role, ok := CallerIdentity(r)
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("X-Employee-ID", id)
		w.Header().Set("X-Role", role)
		w.WriteHeader(http.StatusOK)
	})

	return r, jwtService
}

func get(t *testing.T, router chi.Router, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired_MissingToken(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)
	rec := get(t, router, "/me", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_GarbageToken(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)
	rec := get(t, router, "/me", "not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RejectsRefreshToken(t *testing.T) {
	t.Parallel()

	router, jwtService := newTestRouter(t)
	refresh, _, err := jwtService.GenerateRefreshToken("Empaa11bb22")
	require.NoError(t, err)

	rec := get(t, router, "/me", refresh)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_AcceptsAccessToken(t *testing.T) {
	t.Parallel()

	router, jwtService := newTestRouter(t)
	access, _, err := jwtService.GenerateAccessToken("Empaa11bb22", "jane@acme.test", user.RoleEmployee)
	require.NoError(t, err)

	rec := get(t, router, "/me", access)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Empaa11bb22", rec.Header().Get("X-Employee-ID"))
	assert.Equal(t, "employee", rec.Header().Get("X-Role"))
}

func TestRequirePermission_RoleGate(t *testing.T) {
	t.Parallel()

	router, jwtService := newTestRouter(t)

	admin, _, err := jwtService.GenerateAccessToken("Empadmin001", "admin@acme.test", user.RoleHRAdmin)
	require.NoError(t, err)
	worker, _, err := jwtService.GenerateAccessToken("Empaa11bb22", "jane@acme.test", user.RoleEmployee)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(t, router, "/admin", admin).Code)
	assert.Equal(t, http.StatusForbidden, get(t, router, "/admin", worker).Code)
}

func TestRequirePermission_SelfAccess(t *testing.T) {
	t.Parallel()

	router, jwtService := newTestRouter(t)
	worker, _, err := jwtService.GenerateAccessToken("Empaa11bb22", "jane@acme.test", user.RoleEmployee)
	require.NoError(t, err)

	// Employees lack deleteProfile yet may address their own record.
	assert.Equal(t, http.StatusOK, get(t, router, "/employees/Empaa11bb22", worker).Code)
	assert.Equal(t, http.StatusForbidden, get(t, router, "/employees/Empcc33dd44", worker).Code)
}
