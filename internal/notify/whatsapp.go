package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/empreweb/empreweb-backend/internal/content/domain"
)

// WhatsAppLink builds a wa.me deep link with a pre-filled message.
func WhatsAppLink(number, text string) string {
	link := "https://wa.me/" + strings.TrimPrefix(strings.TrimSpace(number), "+")
	if text == "" {
		return link
	}
	return link + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// WhatsAppText is the message opened in WhatsApp after a contact form is stored.
func WhatsAppText(c domain.ContactSubmission) string {
	return fmt.Sprintf("🚀 *NUEVA CONSULTA EMPREWEB*\n\n*Nombre:* %s\n*Email:* %s\n*Proyecto:* %s", c.Name, c.Email, c.Message)
}

// QuoteText asks for a quote on one plan.
func QuoteText(planTitle string) string {
	return "Hola, cotización plan: " + planTitle
}
