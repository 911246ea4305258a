package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider sends mail over SMTP via gomail.
type SMTPProvider struct {
	config Config
	dialer *gomail.Dialer
}

func NewSMTPProvider(config Config) (*SMTPProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password),
	}, nil
}

func (p *SMTPProvider) Send(msg *Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) SendCompanyApproved(to, companyName, loginEmail, tempPassword string) error {
	html, err := renderCompanyApproved(companyName, loginEmail, tempPassword)
	if err != nil {
		return err
	}
	return p.Send(&Message{
		To:      []string{to},
		Subject: "Tu empresa fue aprobada en Inakat",
		HTML:    html,
	})
}

func (p *SMTPProvider) SendCompanyRejected(to, companyName, reason string) error {
	html, err := renderCompanyRejected(companyName, reason)
	if err != nil {
		return err
	}
	return p.Send(&Message{
		To:      []string{to},
		Subject: "Solicitud de registro de empresa",
		HTML:    html,
	})
}

// NoopProvider drops all mail. Used when SMTP is not configured and in
// tests.
type NoopProvider struct{}

func (NoopProvider) Send(*Message) error { return nil }

func (NoopProvider) SendCompanyApproved(string, string, string, string) error { return nil }

func (NoopProvider) SendCompanyRejected(string, string, string) error { return nil }
