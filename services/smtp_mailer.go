package services

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// SMTPMailer delivers mail through an SMTP relay (Gmail by default). STARTTLS is
// used whenever the server offers it.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
}

func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}
	if msg.From == "" {
		msg.From = m.username
	}

	email := mail.NewMsg()
	if err := email.From(msg.From); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := email.To(msg.To...); err != nil {
		return fmt.Errorf("set recipients: %w", err)
	}
	email.Subject(msg.Subject)
	email.SetBodyString(mail.TypeTextPlain, msg.Text)

	client, err := mail.NewClient(m.host, m.clientOptions()...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, email); err != nil {
		return fmt.Errorf("send mail via %s:%d: %w", m.host, m.port, err)
	}
	return nil
}

func (m *SMTPMailer) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(m.port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.username),
			mail.WithPassword(m.password),
		)
	}
	return opts
}
