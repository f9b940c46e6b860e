package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/empreweb/empreweb-backend/config"
	"github.com/empreweb/empreweb-backend/internal/content/domain"
	"github.com/empreweb/empreweb-backend/internal/logging"
)

const sendTimeout = 30 * time.Second

// Message is a plain-text email.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
}

// Sender delivers one email through a provider.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

func NewSender(cfg config.MailConfig) (Sender, error) {
	switch cfg.Provider {
	case config.MailSMTP:
		if cfg.SMTP.Host == "" || cfg.SMTP.Port == "" {
			return nil, errors.New("invalid SMTP configuration")
		}
		return &SMTPSender{Config: cfg.SMTP}, nil
	case config.MailMailgun:
		if cfg.Mailgun.Domain == "" || cfg.Mailgun.APIKey == "" {
			return nil, errors.New("invalid Mailgun configuration")
		}
		return &MailgunSender{Config: cfg.Mailgun}, nil
	case config.MailSendGrid:
		if cfg.SendGrid.APIKey == "" {
			return nil, errors.New("invalid SendGrid configuration")
		}
		return &SendGridSender{Config: cfg.SendGrid}, nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
}

type EmailNotifier struct {
	sender Sender
	from   string
	to     string
	log    logging.Logger
}

func NewEmailNotifier(sender Sender, from, to string, log logging.Logger) *EmailNotifier {
	if from == "" {
		from = to
	}
	return &EmailNotifier{sender: sender, from: from, to: to, log: log.With("component", "notify")}
}

func (n *EmailNotifier) Notify(ctx context.Context, c domain.ContactSubmission) error {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	m := ComposeMessage(c)
	m.From = n.from
	m.To = n.to

	if err := n.sender.Send(ctx, m); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	n.log.Info(ctx, "contact email sent", "id", c.ID)
	return nil
}

// ComposeMessage renders the subject and body for a submission; From and To are left empty.
func ComposeMessage(c domain.ContactSubmission) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Nombre: %s\n", c.Name)
	fmt.Fprintf(&b, "Email: %s\n", c.Email)
	fmt.Fprintf(&b, "Mensaje:\n%s\n", c.Message)
	if !c.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "\nRecibido: %s\n", c.CreatedAt.Format(time.RFC3339))
	}

	return Message{
		Subject: "Nueva consulta de " + singleLine(c.Name),
		Text:    b.String(),
	}
}

// singleLine folds CR and LF into spaces so a visitor-supplied value cannot start a new header.
func singleLine(v string) string {
	return strings.Join(strings.Fields(strings.NewReplacer("\r", " ", "\n", " ").Replace(v)), " ")
}
