package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/docs"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/infrastructure/auth"
	"github.com/sitedesk/sitedesk/internal/infrastructure/config"
	"github.com/sitedesk/sitedesk/internal/infrastructure/database/dbtest"
	"github.com/sitedesk/sitedesk/internal/infrastructure/repository"
	sharedConfig "github.com/sitedesk/sitedesk/internal/shared/config"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

const routerTestSecret = "router-test-secret"

func testConfig() *config.Config {
	return &config.Config{
		Server: sharedConfig.ServerConfig{Mode: "test", AllowedOrigins: []string{"*"}},
		Auth:   sharedConfig.AuthConfig{JWTSecret: routerTestSecret},
		Complaint: sharedConfig.ComplaintConfig{
			SLAHours:            48,
			ResidentMaxPageSize: 200,
			AdminMaxPageSize:    500,
			SequenceBackend:     sharedConfig.SequenceBackendDB,
			MaxAttachments:      10,
			MaxAttachmentLength: 500,
		},
		Notification: sharedConfig.NotificationConfig{
			DefaultChannel:   "sms",
			MaxAttempts:      5,
			DispatchInterval: time.Minute,
			BatchSize:        50,
			ClaimLease:       time.Minute,
		},
		Catalog: sharedConfig.CatalogConfig{CacheTTL: time.Minute},
	}
}

func bearer(t *testing.T, userID uint, role user.Role) string {
	t.Helper()
	now := time.Now()
	claims := auth.Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(routerTestSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRouter_AccessControl(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := dbtest.NewSQLite(t)
	log := logger.NewNop()

	resident, err := user.NewUser(user.RoleResident, "Resident", "", "", "SITE-A", "Site A", "101-1001")
	require.NoError(t, err)
	require.NoError(t, repository.NewUserRepository(db, log).Upsert(context.Background(), resident))

	router, err := NewRouter(db, testConfig(), log)
	require.NoError(t, err)
	router.SetupRoutes()
	t.Cleanup(func() { router.Shutdown(context.Background()) })

	tests := []struct {
		name   string
		method string
		path   string
		auth   string
		status int
	}{
		{"health", nethttp.MethodGet, "/health", "", nethttp.StatusOK},
		{"metrics", nethttp.MethodGet, "/metrics", "", nethttp.StatusOK},
		{"public categories", nethttp.MethodGet, "/api/v1/public/categories", "", nethttp.StatusOK},
		{"resident without token", nethttp.MethodGet, "/api/v1/resident/complaints", "", nethttp.StatusUnauthorized},
		{"resident profile", nethttp.MethodGet, "/api/v1/resident/profile", bearer(t, resident.ID(), user.RoleResident), nethttp.StatusOK},
		{"resident list", nethttp.MethodGet, "/api/v1/resident/complaints", bearer(t, resident.ID(), user.RoleResident), nethttp.StatusOK},
		{"resident on admin console", nethttp.MethodGet, "/api/v1/admin/complaints", bearer(t, resident.ID(), user.RoleResident), nethttp.StatusForbidden},
		{"role mismatch with profile", nethttp.MethodGet, "/api/v1/admin/complaints", bearer(t, resident.ID(), user.RoleAdmin), nethttp.StatusUnauthorized},
		{"unknown profile", nethttp.MethodGet, "/api/v1/resident/profile", bearer(t, resident.ID()+100, user.RoleResident), nethttp.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := httptest.NewRecorder()

			router.GetEngine().ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

var ginParam = regexp.MustCompile(`:(\w+)`)

func TestRouter_EveryRouteIsDocumented(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router, err := NewRouter(dbtest.NewSQLite(t), testConfig(), logger.NewNop())
	require.NoError(t, err)
	router.SetupRoutes()
	t.Cleanup(func() { router.Shutdown(context.Background()) })

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))

	documented := 0
	for _, route := range router.GetEngine().Routes() {
		if route.Path == "/metrics" || strings.HasPrefix(route.Path, "/swagger") {
			continue
		}
		path := ginParam.ReplaceAllString(route.Path, "{$1}")
		ops, ok := doc.Paths[path]
		if !assert.True(t, ok, "%s %s is not documented", route.Method, path) {
			continue
		}
		_, ok = ops[strings.ToLower(route.Method)]
		assert.True(t, ok, "%s %s is not documented", route.Method, path)
		documented++
	}
	assert.Positive(t, documented)
}
