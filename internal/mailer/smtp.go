package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gopkg.in/mail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type SMTPMailer struct {
	send      func(...*mail.Message) error
	fromEmail string
	backoff   time.Duration
}

func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, fmt.Errorf("smtp host and from address are required")
	}

	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.Timeout = 10 * time.Second

	return &SMTPMailer{send: d.DialAndSend, fromEmail: cfg.From, backoff: time.Second}, nil
}

// Send renders templateFile and delivers it, retrying with exponential
// backoff. ctx cancels the wait between attempts.
func (m *SMTPMailer) Send(ctx context.Context, templateFile, username, email string, data any) (int, error) {
	subject, plain, html, err := render(templateFile, data)
	if err != nil {
		return -1, err
	}

	msg := mail.NewMessage()
	msg.SetAddressHeader("From", m.fromEmail, FromName)
	msg.SetAddressHeader("To", email, username)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", plain)
	if html != "" {
		msg.AddAlternative("text/html", html)
	}

	var sendErr error
	for i := 0; i < maxRetires; i++ {
		if i > 0 {
			// exponential backoff
			timer := time.NewTimer(m.backoff * time.Duration(1<<(i-1)))
			select {
			case <-ctx.Done():
				timer.Stop()
				return -1, errors.Join(ctx.Err(), sendErr)
			case <-timer.C:
			}
		}

		sendErr = m.send(msg)
		if sendErr == nil {
			return 200, nil
		}
	}

	return -1, fmt.Errorf("failed to send email after %d attempts: %w", maxRetires, sendErr)
}
