package notify

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/empreweb/empreweb-backend/config"
)

type SendGridSender struct {
	Config config.SendGridConfig
}

func (s *SendGridSender) Send(ctx context.Context, m Message) error {
	message := mail.NewV3MailInit(mail.NewEmail("EMPREWEB", m.From), m.Subject, mail.NewEmail("", m.To),
		mail.NewContent("text/plain", m.Text))

	// an empty host means api.sendgrid.com
	request := sendgrid.GetRequest(s.Config.APIKey, "/v3/mail/send", s.Config.Host)
	request.Method = http.MethodPost
	client := &sendgrid.Client{Request: request}

	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if response.StatusCode != http.StatusAccepted {
		return fmt.Errorf("sendgrid send: status code %d", response.StatusCode)
	}
	return nil
}
