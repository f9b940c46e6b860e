// Package notify relays stored contact submissions to the business owner.
package notify

import (
	"context"
	"fmt"

	"github.com/empreweb/empreweb-backend/config"
	"github.com/empreweb/empreweb-backend/internal/content/domain"
	"github.com/empreweb/empreweb-backend/internal/logging"
)

type Notifier interface {
	Notify(ctx context.Context, c domain.ContactSubmission) error
}

// Nop is used for the "none" and "whatsapp" strategies; the latter is completed by the browser.
type Nop struct{}

func (Nop) Notify(context.Context, domain.ContactSubmission) error { return nil }

// New picks the notifier for the configured strategy.
func New(cfg *config.Config, log logging.Logger) (Notifier, error) {
	switch cfg.Notify.Strategy {
	case config.NotifyEmail:
		sender, err := NewSender(cfg.Mail)
		if err != nil {
			return nil, err
		}
		return NewEmailNotifier(sender, cfg.Mail.From, cfg.Mail.To, log), nil
	case config.NotifyWhatsApp, config.NotifyNone, "":
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("unknown notify strategy %q", cfg.Notify.Strategy)
	}
}
