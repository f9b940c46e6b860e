package site

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/empreweb/empreweb-backend/config"
	"github.com/empreweb/empreweb-backend/internal/content/domain"
	"github.com/empreweb/empreweb-backend/internal/logging"
	"github.com/empreweb/empreweb-backend/internal/notify"
)

// NewServicePlaceholder is what "add item" creates in a section before the admin edits it.
func NewServicePlaceholder(cat domain.Category) domain.Service {
	return domain.Service{Title: "Nuevo Item", Price: "$0", Description: "Característica 1", Category: cat}
}

type Options struct {
	WhatsAppNumber string
	NotifyStrategy string
	ContactEmail   string
	SecureCookies  bool
}

type Handler struct {
	api  *Client
	opt  Options
	log  logging.Logger
	hero *HeroRotator
	now  func() time.Time
}

func NewHandler(api *Client, opt Options, log logging.Logger) *Handler {
	return &Handler{
		api:  api,
		opt:  opt,
		log:  log.With("component", "site"),
		hero: NewHeroRotator(time.Now()),
		now:  time.Now,
	}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.Index)
	r.POST("/tema", h.ToggleTheme)

	r.POST("/resenas", h.CreateReview)
	r.POST("/contacto", h.SubmitContact)

	admin := r.Group("/admin", SameOrigin())
	admin.POST("/login", h.Login)
	admin.POST("/logout", h.Logout)
	admin.POST("/edit", h.ToggleEditMode)
	admin.POST("/servicios", h.AddService)
	admin.POST("/servicios/:id", h.SaveService)
	admin.POST("/servicios/:id/delete", h.DeleteService)
	admin.POST("/resenas/:id/delete", h.DeleteReview)
}

type pageData struct {
	Session        *Session
	Flash          *Flash
	Sections       Sections
	Reviews        []domain.Review
	HeroWord       string
	HeroWords      []string
	HeroIntervalMs int64
	WhatsAppNumber string
	ContactEmail   string
	Categories     []domain.Category
	Year           int
}

func (h *Handler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	sess := LoadSession(c)
	flash := popFlash(c, h.opt.SecureCookies)

	catalog, err := LoadCatalog(ctx, h.api)
	if err != nil {
		h.log.Error(ctx, "load catalog", "error", err)
		flash = &Flash{Kind: FlashError, Message: "Error al cargar datos"}
	}

	now := h.now()
	c.HTML(http.StatusOK, "index.html", pageData{
		Session:        sess,
		Flash:          flash,
		Sections:       catalog.Sections(),
		Reviews:        catalog.Reviews,
		HeroWord:       h.hero.Word(now),
		HeroWords:      h.hero.Words(),
		HeroIntervalMs: h.hero.IntervalMillis(),
		WhatsAppNumber: h.opt.WhatsAppNumber,
		ContactEmail:   h.opt.ContactEmail,
		Categories:     domain.Categories,
		Year:           now.Year(),
	})
}

func (h *Handler) ToggleTheme(c *gin.Context) {
	sess := LoadSession(c)
	sess.ToggleTheme()
	sess.Save(c, h.opt.SecureCookies)
	h.back(c, "")
}

func (h *Handler) Login(c *gin.Context) {
	sess := LoadSession(c)

	token, err := h.api.Login(c.Request.Context(), c.PostForm("password"))
	if err != nil {
		h.logAPIError(c, "admin login", err)
		h.flash(c, FlashError, "Contraseña incorrecta")
		h.back(c, "")
		return
	}

	sess.Login(token)
	sess.Save(c, h.opt.SecureCookies)
	h.flash(c, FlashSuccess, "Acceso concedido.")
	h.back(c, "")
}

func (h *Handler) Logout(c *gin.Context) {
	sess := LoadSession(c)
	sess.Logout()
	sess.Save(c, h.opt.SecureCookies)
	h.flash(c, FlashInfo, "Sesión cerrada")
	h.back(c, "")
}

func (h *Handler) ToggleEditMode(c *gin.Context) {
	sess := LoadSession(c)
	sess.ToggleEditMode()
	sess.Save(c, h.opt.SecureCookies)
	h.back(c, "")
}

func (h *Handler) AddService(c *gin.Context) {
	sess := LoadSession(c)
	cat := domain.Category(c.PostForm("categoria"))

	if _, err := h.api.CreateService(c.Request.Context(), sess.Token, NewServicePlaceholder(cat)); err != nil {
		h.flashAPIError(c, "add service", err, "No se pudo crear el item")
	}
	h.back(c, anchorFor(cat))
}

// SaveService commits the card's draft: the listed record with the submitted fields applied.
func (h *Handler) SaveService(c *gin.Context) {
	ctx := c.Request.Context()
	sess := LoadSession(c)
	id := c.Param("id")

	services, err := h.api.ListServices(ctx)
	if err != nil {
		h.flashAPIError(c, "load service", err, "Error al cargar datos")
		h.back(c, "")
		return
	}
	svc, ok := Catalog{Services: services}.FindService(id)
	if !ok {
		h.flash(c, FlashError, "El item ya no existe")
		h.back(c, "")
		return
	}

	draft := NewDraft(svc)
	draft.Edit(formValue(c, "titulo"), formValue(c, "precio"), formValue(c, "desc"))
	if !draft.Dirty() {
		h.back(c, anchorFor(svc.Category))
		return
	}

	if _, err := h.api.UpdateService(ctx, sess.Token, id, draft.Commit()); err != nil {
		h.flashAPIError(c, "update service", err, "No se pudo guardar")
	} else {
		h.flash(c, FlashSuccess, "Sincronizado")
	}
	h.back(c, anchorFor(svc.Category))
}

func (h *Handler) DeleteService(c *gin.Context) {
	sess := LoadSession(c)

	if _, err := h.api.DeleteService(c.Request.Context(), sess.Token, c.Param("id")); err != nil {
		h.flashAPIError(c, "delete service", err, "No se pudo eliminar")
	}
	h.back(c, anchorFor(domain.Category(c.PostForm("categoria"))))
}

func (h *Handler) DeleteReview(c *gin.Context) {
	sess := LoadSession(c)

	if _, err := h.api.DeleteReview(c.Request.Context(), sess.Token, c.Param("id")); err != nil {
		h.flashAPIError(c, "delete review", err, "No se pudo eliminar")
	}
	h.back(c, "resenas")
}

func (h *Handler) CreateReview(c *gin.Context) {
	rating, _ := strconv.Atoi(c.PostForm("estrellas"))
	r := domain.Review{
		Name:    strings.TrimSpace(c.PostForm("nombre")),
		Comment: strings.TrimSpace(c.PostForm("comentario")),
		Rating:  rating,
	}

	if _, err := h.api.CreateReview(c.Request.Context(), r); err != nil {
		h.flashAPIError(c, "create review", err, "Error al publicar")
	} else {
		h.flash(c, FlashSuccess, "¡Reseña publicada!")
	}
	h.back(c, "resenas")
}

// SubmitContact stores the message through the API, then opens WhatsApp when that is the strategy.
func (h *Handler) SubmitContact(c *gin.Context) {
	sub := domain.ContactSubmission{
		Name:    strings.TrimSpace(c.PostForm("nombre")),
		Email:   strings.TrimSpace(c.PostForm("email")),
		Message: strings.TrimSpace(c.PostForm("mensaje")),
	}

	if err := h.api.SubmitContact(c.Request.Context(), sub); err != nil {
		h.flashAPIError(c, "submit contact", err, "Error al enviar")
		h.back(c, "contacto")
		return
	}

	if h.opt.NotifyStrategy == config.NotifyWhatsApp && h.opt.WhatsAppNumber != "" {
		c.Redirect(http.StatusSeeOther, notify.WhatsAppLink(h.opt.WhatsAppNumber, notify.WhatsAppText(sub)))
		return
	}

	h.flash(c, FlashSuccess, "¡Mensaje enviado! Te contactaremos pronto.")
	h.back(c, "contacto")
}

func (h *Handler) flash(c *gin.Context, kind FlashKind, msg string) {
	setFlash(c, h.opt.SecureCookies, kind, msg)
}

func (h *Handler) back(c *gin.Context, anchor string) {
	target := "/"
	if anchor != "" {
		target += "#" + anchor
	}
	c.Redirect(http.StatusSeeOther, target)
}

// A stale token shows up here as ErrUnauthorized; the session is left alone.
func (h *Handler) flashAPIError(c *gin.Context, op string, err error, msg string) {
	h.logAPIError(c, op, err)
	if errors.Is(err, ErrUnauthorized) {
		msg = "No autorizado"
	}
	h.flash(c, FlashError, msg)
}

func (h *Handler) logAPIError(c *gin.Context, op string, err error) {
	if errors.Is(err, ErrUnauthorized) {
		h.log.Warn(c.Request.Context(), op+" rejected", "error", err)
		return
	}
	h.log.Error(c.Request.Context(), op+" failed", "error", err)
}

func formValue(c *gin.Context, key string) *string {
	v, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	return &v
}

func anchorFor(cat domain.Category) string {
	switch cat {
	case domain.CategoryPrincipal:
		return "servicios-principales"
	case domain.CategoryWeb, domain.CategoryLanding, domain.CategoryAdicional:
		return string(cat)
	default:
		return ""
	}
}
