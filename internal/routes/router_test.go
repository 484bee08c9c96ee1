package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dare/enterprisehub/internal/api"
	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/config"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/metrics"
	"dare/enterprisehub/internal/models/entities"
	gormModels "dare/enterprisehub/internal/models/gorm"
	"dare/enterprisehub/internal/services"
	"dare/enterprisehub/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
	Data    json.RawMessage   `json:"data"`
}

type testServer struct {
	t       *testing.T
	gdb     *gorm.DB
	deps    *api.Dependencies
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gdb := testutil.NewTestDB(t)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	deps := api.InitDependencies(gdb, sqlx.NewDb(sqlDB, "sqlite3"), common.NewCacheService(time.Minute, time.Minute), nil,
		metrics.NewMetricsRegistry(reg), api.Options{
			JWTSecret:     "router-test-secret-router-test-secret",
			TokenTTL:      time.Hour,
			DashboardTTL:  time.Minute,
			PermissionTTL: time.Minute,
		})
	require.NoError(t, deps.Services.RBAC.SeedDefaults(context.Background()))

	return &testServer{
		t:    t,
		gdb:  gdb,
		deps: deps,
		handler: RegisterRoutes(deps, RouterOptions{
			AllowedOrigins: []string{"http://localhost:3000"},
			Gatherer:       reg,
			UpSince:        time.Now(),
		}),
	}
}

func (s *testServer) createUser(username string, role constants.UserRole) *gormModels.User {
	s.t.Helper()
	hash, err := services.HashPassword("password123")
	require.NoError(s.t, err)
	u := &gormModels.User{Username: username, PasswordHash: hash, Role: role, IsActive: true}
	require.NoError(s.t, s.gdb.Create(u).Error)
	return u
}

func (s *testServer) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func (s *testServer) login(username string) string {
	s.t.Helper()
	rec, env := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": username, "password": "password123"})
	require.Equal(s.t, http.StatusOK, rec.Code, env.Message)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(s.t, data.Token)
	return data.Token
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(http.MethodGet, "/healthCheck", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", env.Status)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec, _ = s.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "enterprisehub_http_requests_total")
}

func TestHealthReportsRedisDown(t *testing.T) {
	s := newTestServer(t)
	mr := miniredis.RunT(t)
	s.deps.Redis = common.NewRedisClient(config.RedisConfig{Host: mr.Host(), Port: mr.Port()})

	rec, _ := s.do(http.MethodGet, "/healthCheck", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	mr.Close()
	rec, env := s.do(http.MethodGet, "/healthCheck", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "down", env.Message)

	var report entities.HealthReport
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, "ok", report.Dependencies["database"].State)
	assert.Equal(t, "down", report.Dependencies["redis"].State)
	assert.NotEmpty(t, report.Dependencies["redis"].Detail)
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(http.MethodGet, "/api/v1/businesses", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = s.do(http.MethodGet, "/api/v1/businesses", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	s.createUser("grace", constants.RoleManager)
	rec, env := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "grace", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, constants.MsgInvalidLogin, env.Message)
}

func TestCreateBusinessEndToEnd(t *testing.T) {
	s := newTestServer(t)
	s.createUser("manager", constants.RoleManager)
	token := s.login("manager")

	rec, env := s.do(http.MethodPost, "/api/v1/youth", token, map[string]any{
		"firstName": "Amina", "lastName": "Kabugo", "district": "Kasese", "gender": "Female",
	})
	require.Equal(t, http.StatusCreated, rec.Code, env.Message)
	var youth struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &youth))

	rec, env = s.do(http.MethodPost, "/api/v1/businesses", token, map[string]any{
		"businessName":          "Rwenzori Crafts",
		"district":              "Kasese",
		"dareModel":             "Collaborative",
		"sector":                "Creative Arts",
		"expectedWeeklyRevenue": 25000,
		"youthIds":              []uint{youth.ID},
	})
	require.Equal(t, http.StatusCreated, rec.Code, env.Message)

	var business struct {
		ID                     uint     `json:"id"`
		ExpectedMonthlyRevenue *float64 `json:"expectedMonthlyRevenue"`
		Youth                  []struct {
			YouthID uint   `json:"youthId"`
			Role    string `json:"role"`
		} `json:"youth"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &business))
	require.Len(t, business.Youth, 1)
	assert.Equal(t, youth.ID, business.Youth[0].YouthID)
	assert.Equal(t, "Owner", business.Youth[0].Role)
	require.NotNil(t, business.ExpectedMonthlyRevenue)
	assert.Equal(t, 100000.0, *business.ExpectedMonthlyRevenue)

	rec, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/v1/businesses/%d/youth/%d", business.ID, youth.ID), token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "last owner stays")

	rec, _ = s.do(http.MethodGet, fmt.Sprintf("/api/v1/businesses/%d", business.ID+100), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = s.do(http.MethodGet, "/api/v1/businesses/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidationErrorsAreFieldMapped(t *testing.T) {
	s := newTestServer(t)
	s.createUser("manager", constants.RoleManager)
	token := s.login("manager")

	rec, env := s.do(http.MethodPost, "/api/v1/businesses", token, map[string]any{
		"businessName": "Nowhere Ltd",
		"district":     "Kampala",
		"dareModel":    "Collaborative",
		"youthIds":     []uint{},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Errors, "district")
	assert.Contains(t, env.Errors, "youthIds")

	rec, _ = s.do(http.MethodPost, "/api/v1/businesses", token, map[string]any{"unexpected": true})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPermissionsEnforced(t *testing.T) {
	s := newTestServer(t)
	s.createUser("visitor", constants.RoleUser)
	s.createUser("admin", constants.RoleAdmin)
	visitor := s.login("visitor")
	admin := s.login("admin")

	rec, _ := s.do(http.MethodGet, "/api/v1/businesses", visitor, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := s.do(http.MethodPost, "/api/v1/businesses", visitor, map[string]any{"businessName": "x"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, constants.MsgForbidden, env.Message)

	rec, _ = s.do(http.MethodGet, "/api/v1/dashboard/stats", visitor, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = s.do(http.MethodGet, "/api/v1/dashboard/stats", admin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = s.do(http.MethodGet, "/api/v1/me", visitor, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me struct {
		Permissions []string `json:"permissions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, []string{"businesses:read"}, me.Permissions)
}

func TestLoginRateLimited(t *testing.T) {
	s := newTestServer(t)

	var last int
	for i := 0; i < 6; i++ {
		rec, _ := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "ghost", "password": "password123"})
		last = rec.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}
