package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-analytics-api/internal/config"
	"github.com/vfg2006/store-analytics-api/internal/domain"
	"github.com/vfg2006/store-analytics-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/store-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/store-analytics-api/pkg/log"
	"github.com/vfg2006/store-analytics-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	m.Run()
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"http://localhost:3000"}},
		Auth:   config.Auth{Secret: "segredo-de-teste"},
		Analytics: config.Analytics{
			Timezone:           "UTC",
			DefaultGranularity: "daily",
			DefaultTopN:        5,
		},
	}
}

func TestServer_Routes(t *testing.T) {
	cfg := testConfig()
	auth := authenticating.NewService(cfg)

	supervisorToken, err := auth.GenerateToken(7, middleware.RoleSupervisor, time.Hour)
	require.NoError(t, err)
	clientToken, err := auth.GenerateToken(8, middleware.RoleClient, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name           string
		method         string
		path           string
		token          string
		setup          func(analyzer *mocks.MockAnalyzer)
		expectedStatus int
	}{
		{
			name:           "Healthcheck sem token",
			method:         http.MethodGet,
			path:           "/healthcheck",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Relatório sem token",
			method:         http.MethodGet,
			path:           "/v1/analytics/overview",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Cliente não acessa relatórios",
			method:         http.MethodGet,
			path:           "/v1/analytics/trend",
			token:          clientToken,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "Supervisor acessa relatórios",
			method: http.MethodGet,
			path:   "/v1/analytics/entities?range=week",
			token:  supervisorToken,
			setup: func(analyzer *mocks.MockAnalyzer) {
				analyzer.EXPECT().EntityStats(gomock.Any(), gomock.Any()).Return([]domain.EntityStats{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Supervisor não dispara cron",
			method:         http.MethodPost,
			path:           "/v1/cron/driver-ranking/run",
			token:          supervisorToken,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Rota inexistente",
			method:         http.MethodGet,
			path:           "/v1/analytics/forecast",
			token:          supervisorToken,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			analyzer := mocks.NewMockAnalyzer(ctrl)
			if tt.setup != nil {
				tt.setup(analyzer)
			}

			srv, err := New(cfg, analyzer, nil, auth, nil)
			require.NoError(t, err)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			srv.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestNew_InvalidGranularity(t *testing.T) {
	cfg := testConfig()
	cfg.Analytics.DefaultGranularity = "hourly"

	_, err := New(cfg, nil, nil, authenticating.NewService(cfg), nil)
	assert.Error(t, err)
}
