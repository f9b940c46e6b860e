package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authservice "github.com/empreweb/empreweb-backend/internal/auth/service"
	contentservice "github.com/empreweb/empreweb-backend/internal/content/service"
	"github.com/empreweb/empreweb-backend/internal/logging"
	"github.com/empreweb/empreweb-backend/internal/notify"
	"github.com/empreweb/empreweb-backend/internal/storage/redisdb"
)

func buildTestRouter(t *testing.T, origins []string) *gin.Engine {
	t.Helper()
	SetGinMode("test")

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := redisdb.NewStore(client)
	log := logging.Nop()

	return BuildRouter(RouterDeps{
		ServiceName: "empreweb-api",
		Version:     "test",
		CORSOrigins: origins,
		Log:         log,
		Store:       store,
		Auth:        authservice.NewAuthService("secret123", "k", log),
		Content:     contentservice.NewContentService(store, notify.Nop{}, log),
	})
}

func TestBuildRouter_Routes(t *testing.T) {
	r := buildTestRouter(t, nil)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/api/servicios", "", http.StatusOK},
		{http.MethodGet, "/api/resenas", "", http.StatusOK},
		{http.MethodPost, "/api/servicios", `{"titulo":"x"}`, http.StatusUnauthorized},
		{http.MethodPost, "/api/login", `{"password":"secret123"}`, http.StatusOK},
		{http.MethodPost, "/api/contacto", `{"nombre":"a","email":"b","mensaje":"c"}`, http.StatusOK},
	}

	for _, tt := range tests {
		var req *http.Request
		if tt.body != "" {
			req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(tt.method, tt.path, nil)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, tt.want, w.Code, "%s %s", tt.method, tt.path)
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	}
}

func TestBuildRouter_CORS(t *testing.T) {
	t.Run("any origin by default", func(t *testing.T) {
		r := buildTestRouter(t, nil)
		req := httptest.NewRequest(http.MethodGet, "/api/servicios", nil)
		req.Header.Set("Origin", "https://example.org")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("restricted origins", func(t *testing.T) {
		r := buildTestRouter(t, []string{"https://empreweb.cl"})

		req := httptest.NewRequest(http.MethodOptions, "/api/servicios", nil)
		req.Header.Set("Origin", "https://empreweb.cl")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Authorization")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, "https://empreweb.cl", w.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodGet, "/api/servicios", nil)
		req.Header.Set("Origin", "https://evil.example")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, err := OpenStore(t.Context(), StoreOptions{})
	assert.Error(t, err)
}
