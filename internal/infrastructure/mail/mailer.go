// Package mail sends invoice PDFs over SMTP with gomail.
package mail

import (
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/gstbook/gstbook-api/internal/application/billing"
	"github.com/gstbook/gstbook-api/pkg/config"
	"github.com/gstbook/gstbook-api/pkg/logger"
)

var _ billing.Mailer = (*Mailer)(nil)

// Mailer delivers invoice PDFs as in-memory attachments. When DevRecipient
// is configured, every message goes there instead of the real recipient.
type Mailer struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

// NewMailer builds the mailer.
func NewMailer(cfg config.SMTPConfig, log *logger.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: log}
}

// SendInvoice sends one message with the PDF attached.
func (m *Mailer) SendInvoice(to, subject, body string, pdf []byte, filename string) error {
	recipient := to
	if m.cfg.DevRecipient != "" {
		m.log.Debug().Str("original", to).Str("override", m.cfg.DevRecipient).Msg("dev recipient override")
		recipient = m.cfg.DevRecipient
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.Attach(filename,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
	)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	m.log.Info().Str("to", recipient).Str("subject", subject).Msg("invoice mail sent")
	return nil
}
