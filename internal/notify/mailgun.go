package notify

import (
	"context"
	"fmt"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/empreweb/empreweb-backend/config"
)

type MailgunSender struct {
	Config config.MailgunConfig
}

func (s *MailgunSender) Send(ctx context.Context, m Message) error {
	mg := mailgun.NewMailgun(s.Config.Domain, s.Config.APIKey)
	if s.Config.APIBase != "" {
		mg.SetAPIBase(s.Config.APIBase)
	}

	message := mg.NewMessage(m.From, m.Subject, m.Text)
	if err := message.AddRecipient(m.To); err != nil {
		return fmt.Errorf("mailgun recipient: %w", err)
	}

	if _, _, err := mg.Send(ctx, message); err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}
	return nil
}
