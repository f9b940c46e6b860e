package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/empreweb/empreweb-backend/internal/auth/service"
	"github.com/empreweb/empreweb-backend/internal/logging"
)

func setupLoginRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(service.NewAuthService("secret123", "k", logging.Nop())).Register(r.Group("/api"))
	return r
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	r := setupLoginRouter()

	t.Run("correct password returns token", func(t *testing.T) {
		w := postLogin(r, `{"password":"secret123"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp loginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := postLogin(r, `{"password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotContains(t, w.Body.String(), "token")
	})

	t.Run("malformed body", func(t *testing.T) {
		w := postLogin(r, `{`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
