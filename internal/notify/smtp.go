package notify

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"github.com/empreweb/empreweb-backend/config"
)

type SMTPSender struct {
	Config config.SMTPConfig
}

// Send blocks until the relay answers; net/smtp has no context support so ctx is only checked up front.
func (s *SMTPSender) Send(ctx context.Context, m Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if s.Config.Username != "" {
		auth = smtp.PlainAuth("", s.Config.Username, s.Config.Password, s.Config.Host)
	}

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		headerValue(m.From), headerValue(m.To), mime.QEncoding.Encode("utf-8", m.Subject), m.Text))

	addr := fmt.Sprintf("%s:%s", s.Config.Host, s.Config.Port)
	if err := smtp.SendMail(addr, auth, m.From, []string{m.To}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

var headerBreaks = strings.NewReplacer("\r", "", "\n", "")

func headerValue(v string) string {
	return headerBreaks.Replace(v)
}
