package site

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	cookieToken = "empreweb_admin"
	cookieEdit  = "empreweb_edit"
	cookieTheme = "empreweb_theme"

	tokenMaxAge = 365 * 24 * 60 * 60
)

// Session is the admin state a browser carries between requests.
// LoggedIn only means a token is held; the API decides whether it is still good.
type Session struct {
	Token    string
	LoggedIn bool
	EditMode bool
	DarkMode bool
}

func LoadSession(c *gin.Context) *Session {
	s := &Session{DarkMode: true}
	if tok, err := c.Cookie(cookieToken); err == nil && tok != "" {
		s.Token = tok
		s.LoggedIn = true
	}
	if v, err := c.Cookie(cookieEdit); err == nil && v == "1" {
		s.EditMode = s.LoggedIn
	}
	if v, err := c.Cookie(cookieTheme); err == nil && v == "light" {
		s.DarkMode = false
	}
	return s
}

func (s *Session) Login(token string) {
	s.Token = token
	s.LoggedIn = token != ""
}

// Logout drops the token and leaves edit mode.
func (s *Session) Logout() {
	s.Token = ""
	s.LoggedIn = false
	s.EditMode = false
}

// ToggleEditMode flips edit mode for a logged-in admin and reports the new value.
func (s *Session) ToggleEditMode() bool {
	if !s.LoggedIn {
		s.EditMode = false
		return false
	}
	s.EditMode = !s.EditMode
	return s.EditMode
}

func (s *Session) ToggleTheme() {
	s.DarkMode = !s.DarkMode
}

// Save writes the session back as cookies.
func (s *Session) Save(c *gin.Context, secure bool) {
	if s.LoggedIn {
		setCookie(c, cookieToken, s.Token, tokenMaxAge, secure, true)
	} else {
		setCookie(c, cookieToken, "", -1, secure, true)
	}

	if s.EditMode {
		setCookie(c, cookieEdit, "1", 0, secure, true)
	} else {
		setCookie(c, cookieEdit, "", -1, secure, true)
	}

	theme := "dark"
	if !s.DarkMode {
		theme = "light"
	}
	setCookie(c, cookieTheme, theme, tokenMaxAge, secure, false)
}

// setCookie writes a root-path cookie that browsers withhold from cross-site POSTs.
func setCookie(c *gin.Context, name, value string, maxAge int, secure, httpOnly bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", secure, httpOnly)
}
