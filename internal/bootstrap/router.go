package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/empreweb/empreweb-backend/internal/api/http"
	reqmw "github.com/empreweb/empreweb-backend/internal/api/http/middleware"
	authhttp "github.com/empreweb/empreweb-backend/internal/auth/http"
	authmw "github.com/empreweb/empreweb-backend/internal/auth/middleware"
	authservice "github.com/empreweb/empreweb-backend/internal/auth/service"
	contenthttp "github.com/empreweb/empreweb-backend/internal/content/http"
	contentservice "github.com/empreweb/empreweb-backend/internal/content/service"
	"github.com/empreweb/empreweb-backend/internal/logging"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	Log         logging.Logger
	Store       httpapi.Pinger
	Auth        *authservice.AuthService
	Content     *contentservice.ContentService
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqmw.RequestIDMiddleware(dep.Log))
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	authhttp.New(dep.Auth).Register(api)

	contentHandler := contenthttp.New(dep.Content, dep.Log)
	contentHandler.Register(api, authmw.RequireAdmin(dep.Auth))

	return r
}

// No configured origins means any origin may call the API.
func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", reqmw.HeaderRequestID)
	cfg.ExposeHeaders = []string{reqmw.HeaderRequestID}
	return cfg
}
