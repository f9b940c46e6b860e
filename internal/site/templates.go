package site

import (
	"embed"
	"html/template"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/empreweb/empreweb-backend/internal/content/domain"
	"github.com/empreweb/empreweb-backend/internal/notify"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates; hand the result to gin's SetHTMLTemplate.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html")
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"stars":   stars,
		"initial": initial,
		"icon":    principalIcon,
		"section": newPriceSection,
		"quote": func(number string, svc domain.Service) string {
			return notify.WhatsAppLink(number, notify.QuoteText(svc.Title))
		},
	}
}

// priceSection feeds the "price-section" template.
type priceSection struct {
	ID       string
	Title    string
	Subtitle string
	Items    []domain.Service
	Edit     bool
	WhatsApp string
}

func newPriceSection(id, title, subtitle string, items []domain.Service, edit bool, whatsApp string) priceSection {
	return priceSection{ID: id, Title: title, Subtitle: subtitle, Items: items, Edit: edit, WhatsApp: whatsApp}
}

// stars renders a rating as five filled/empty flags.
func stars(n int) []bool {
	out := make([]bool, 5)
	for i := range out {
		out[i] = i < n
	}
	return out
}

func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}

// principalIcon picks a glyph for a principal service from keywords in its title.
func principalIcon(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "web"):
		return "🌐"
	case strings.Contains(t, "marketing"):
		return "🎯"
	case strings.Contains(t, "grafico"), strings.Contains(t, "gráfico"):
		return "🎨"
	case strings.Contains(t, "publicidad"):
		return "📣"
	default:
		return "⚡"
	}
}
