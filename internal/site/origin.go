package site

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// SameOrigin rejects state-changing requests whose Origin (or, lacking that, Referer) names another host.
// Requests carrying neither header pass.
func SameOrigin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}

		src := c.GetHeader("Origin")
		if src == "" {
			src = c.GetHeader("Referer")
		}
		if src == "" || sameHost(c.Request, src) {
			c.Next()
			return
		}

		c.AbortWithStatus(http.StatusForbidden)
	}
}

func sameHost(r *http.Request, src string) bool {
	u, err := url.Parse(src)
	if err != nil || u.Host == "" {
		return false
	}
	if u.Host == r.Host {
		return true
	}
	fwd := r.Header.Get("X-Forwarded-Host")
	return fwd != "" && u.Host == fwd
}
