package notification

import (
	"fmt"

	"mentorify/config"
	"mentorify/utils"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// SMTPNotifier implements Notifier over SMTP.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPNotifier builds a notifier from the application SMTP configuration.
func NewSMTPNotifier() *SMTPNotifier {
	cfg := config.AppConfig
	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}
}

// Send delivers one HTML email.
func (n *SMTPNotifier) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// SendAsync dispatches the email on a goroutine, logging any failure.
// Used after a committed state transition, where a notification failure
// must not affect the outcome.
func SendAsync(n Notifier, to, subject, htmlBody string) {
	go func() {
		if err := n.Send(to, subject, htmlBody); err != nil {
			utils.GetLogger().Warn("notification dispatch failed",
				zap.String("to", to),
				zap.String("subject", subject),
				zap.Error(err))
		}
	}()
}
