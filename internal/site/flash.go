package site

import (
	"encoding/base64"
	"strings"

	"github.com/gin-gonic/gin"
)

const cookieFlash = "empreweb_flash"

type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
	FlashInfo    FlashKind = "info"
)

// Flash is a one-shot toast shown on the next page render.
type Flash struct {
	Kind    FlashKind
	Message string
}

func setFlash(c *gin.Context, secure bool, kind FlashKind, msg string) {
	v := base64.RawURLEncoding.EncodeToString([]byte(string(kind) + "|" + msg))
	setCookie(c, cookieFlash, v, 60, secure, true)
}

func popFlash(c *gin.Context, secure bool) *Flash {
	v, err := c.Cookie(cookieFlash)
	if err != nil || v == "" {
		return nil
	}
	setCookie(c, cookieFlash, "", -1, secure, true)

	raw, err := base64.RawURLEncoding.DecodeString(v)
	if err != nil {
		return nil
	}
	kind, msg, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil
	}
	return &Flash{Kind: FlashKind(kind), Message: msg}
}
