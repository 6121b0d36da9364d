package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/store-analytics-api/internal/domain"
	"github.com/vfg2006/store-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/store-analytics-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	m.Run()
}

type fakeValidator struct {
	claims *domain.Claims
	err    error
}

func (f fakeValidator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		header         string
		validator      fakeValidator
		expectedStatus int
	}{
		{
			name:           "Healthcheck é público",
			path:           "/healthcheck",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Sem header Authorization",
			path:           "/v1/analytics/overview",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Header sem Bearer",
			path:           "/v1/analytics/overview",
			header:         "Basic abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Token expirado",
			path:           "/v1/analytics/overview",
			header:         "Bearer abc",
			validator:      fakeValidator{err: authenticating.ErrExpiredToken},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Token válido",
			path:           "/v1/analytics/overview",
			header:         "Bearer abc",
			validator:      fakeValidator{claims: &domain.Claims{UserID: 1, UserRoleID: RoleAdmin}},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_ExpiredTokenCode(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/trend", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := httptest.NewRecorder()

	AuthMiddleware(fakeValidator{err: authenticating.ErrExpiredToken})(okHandler()).ServeHTTP(rec, req)

	assert.Contains(t, rec.Body.String(), "AUTH_007")
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		expectedStatus int
	}{
		{name: "Administrador", claims: &domain.Claims{UserRoleID: RoleAdmin}, expectedStatus: http.StatusOK},
		{name: "Supervisor", claims: &domain.Claims{UserRoleID: RoleSupervisor}, expectedStatus: http.StatusOK},
		{name: "Cliente sem permissão", claims: &domain.Claims{UserRoleID: RoleClient}, expectedStatus: http.StatusForbidden},
		{name: "Sem autenticação", claims: nil, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/analytics/top", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}
			rec := httptest.NewRecorder()

			AdminOrSupervisor()(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	t.Run("Origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/overview", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/overview", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight não chega ao handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/analytics/overview", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(fmt.Sprintf("falha inesperada %d", 1))
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/overview", nil)
	rec := httptest.NewRecorder()

	LoggingMiddleware()(LogPanicMiddleware()(panicking)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}
