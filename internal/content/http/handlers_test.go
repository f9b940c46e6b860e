package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authhttp "github.com/empreweb/empreweb-backend/internal/auth/http"
	"github.com/empreweb/empreweb-backend/internal/auth/middleware"
	authservice "github.com/empreweb/empreweb-backend/internal/auth/service"
	"github.com/empreweb/empreweb-backend/internal/content/domain"
	"github.com/empreweb/empreweb-backend/internal/content/service"
	"github.com/empreweb/empreweb-backend/internal/logging"
	"github.com/empreweb/empreweb-backend/internal/storage/redisdb"
)

type failingNotifier struct{ calls int }

func (n *failingNotifier) Notify(context.Context, domain.ContactSubmission) error {
	n.calls++
	return errors.New("smtp: connection refused")
}

type testAPI struct {
	router   *gin.Engine
	mr       *miniredis.Miniredis
	notifier *failingNotifier
}

func setupAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	log := logging.Nop()
	n := &failingNotifier{}
	authSvc := authservice.NewAuthService("secret123", "test-secret", log)
	contentSvc := service.NewContentService(redisdb.NewStore(client), n, log)

	r := gin.New()
	api := r.Group("/api")
	authhttp.New(authSvc).Register(api)
	New(contentSvc, log).Register(api, middleware.RequireAdmin(authSvc))

	return &testAPI{router: r, mr: mr, notifier: n}
}

func (a *testAPI) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) login(t *testing.T) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/login", "", `{"password":"secret123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (a *testAPI) services(t *testing.T) []domain.Service {
	t.Helper()
	w := a.do(t, http.MethodGet, "/api/servicios", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []domain.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	return list
}

func TestLogin_TokenAuthorizesMutation(t *testing.T) {
	a := setupAPI(t)
	token := a.login(t)

	w := a.do(t, http.MethodPost, "/api/servicios", token, `{"titulo":"Plan A","categoria":"web"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = a.do(t, http.MethodPost, "/api/login", "", `{"password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "token")
}

func TestCreateService_RoundTrip(t *testing.T) {
	a := setupAPI(t)
	token := a.login(t)

	w := a.do(t, http.MethodPost, "/api/servicios", token,
		`{"titulo":"Plan A","precio":"$10","desc":"x,y","categoria":"web"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.CategoryWeb, created.Category)
	assert.Equal(t, []string{"x", "y"}, created.Features())

	list := a.services(t)
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])
}

func TestCreateService_Validation(t *testing.T) {
	a := setupAPI(t)
	token := a.login(t)

	w := a.do(t, http.MethodPost, "/api/servicios", token, `{"titulo":"x","categoria":"servicio"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(t, http.MethodPost, "/api/servicios", token, `{"titulo":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Empty(t, a.services(t))
}

func TestUpdateService(t *testing.T) {
	a := setupAPI(t)
	token := a.login(t)

	w := a.do(t, http.MethodPost, "/api/servicios", token, `{"titulo":"Plan A","precio":"$10","categoria":"web"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created domain.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = a.do(t, http.MethodPut, "/api/servicios/"+created.ID, token,
		`{"_id":"hijack","titulo":"Plan A+","precio":"$12","categoria":"web","destacado":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	list := a.services(t)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "Plan A+", list[0].Title)
	assert.Equal(t, "$12", list[0].Price)
	assert.True(t, list[0].Featured)

	w = a.do(t, http.MethodPut, "/api/servicios/missing", token, `{"titulo":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(t, http.MethodPut, "/api/servicios/"+created.ID, "", `{"titulo":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteService(t *testing.T) {
	a := setupAPI(t)
	token := a.login(t)

	w := a.do(t, http.MethodPost, "/api/servicios", token, `{"titulo":"Plan A","categoria":"web"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created domain.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	t.Run("without token is rejected and keeps the record", func(t *testing.T) {
		w := a.do(t, http.MethodDelete, "/api/servicios/"+created.ID, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Len(t, a.services(t), 1)
	})

	t.Run("with token removes it", func(t *testing.T) {
		w := a.do(t, http.MethodDelete, "/api/servicios/"+created.ID, token, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true,"deleted":true}`, w.Body.String())
		assert.Empty(t, a.services(t))
	})

	t.Run("second delete is a no-op", func(t *testing.T) {
		w := a.do(t, http.MethodDelete, "/api/servicios/"+created.ID, "Bearer "+token, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true,"deleted":false}`, w.Body.String())
	})
}

func TestReviews(t *testing.T) {
	a := setupAPI(t)

	w := a.do(t, http.MethodPost, "/api/resenas", "", `{"nombre":"Ana","comentario":"Great","estrellas":5}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created domain.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = a.do(t, http.MethodPost, "/api/resenas", "", `{"nombre":"Luis","comentario":"Ok"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"estrellas":5`)

	w = a.do(t, http.MethodGet, "/api/resenas", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []domain.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, created, list[0])

	w = a.do(t, http.MethodDelete, "/api/resenas/"+created.ID, "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(t, http.MethodDelete, "/api/resenas/"+created.ID, a.login(t), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitContact_PersistsDespiteNotifierFailure(t *testing.T) {
	a := setupAPI(t)

	w := a.do(t, http.MethodPost, "/api/contacto", "", `{"nombre":"Pedro","email":"p@example.com","mensaje":"Hola"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Equal(t, 1, a.notifier.calls)

	keys := a.mr.Keys()
	var stored []string
	for _, k := range keys {
		if strings.HasPrefix(k, "content:contactos:") && !strings.HasSuffix(k, ":index") && !strings.HasSuffix(k, ":seq") {
			stored = append(stored, k)
		}
	}
	require.Len(t, stored, 1)
	raw, err := a.mr.Get(stored[0])
	require.NoError(t, err)
	assert.Contains(t, raw, `"nombre":"Pedro"`)
}

func TestStoreFailure_Returns500(t *testing.T) {
	a := setupAPI(t)
	a.mr.Close()

	w := a.do(t, http.MethodGet, "/api/servicios", "", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
