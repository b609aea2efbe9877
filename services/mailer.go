package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/config"
)

// Message is a plain-text email.
type Message struct {
	From    string
	To      []string
	Subject string
	Text    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// NewMailer picks the transport named by MAIL_PROVIDER (smtp or resend). Without
// credentials for it, messages are only logged.
func NewMailer(cfg map[string]string) Mailer {
	logger := log.With().Str("component", "mailer").Logger()

	switch config.GetString(cfg, "MAIL_PROVIDER", "smtp") {
	case "resend":
		apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
		from := config.GetString(cfg, "RESEND_FROM_EMAIL", "")
		if apiKey != "" && from != "" {
			return NewResendMailer(apiKey, from, 15*time.Second)
		}
		logger.Warn().Msg("RESEND_API_KEY or RESEND_FROM_EMAIL missing, falling back to log mailer")
	default:
		user := config.GetString(cfg, "EMAIL_USER", "")
		pass := config.GetString(cfg, "EMAIL_PASS", "")
		if user != "" && pass != "" {
			return NewSMTPMailer(
				config.GetString(cfg, "SMTP_HOST", "smtp.gmail.com"),
				config.GetInt(cfg, "SMTP_PORT", 587),
				user,
				pass,
			)
		}
		logger.Warn().Msg("EMAIL_USER or EMAIL_PASS missing, falling back to log mailer")
	}

	return NewLogMailer(logger)
}

// LogMailer writes messages to the log instead of delivering them.
type LogMailer struct {
	logger zerolog.Logger
}

func NewLogMailer(logger zerolog.Logger) LogMailer {
	return LogMailer{logger: logger}
}

func (m LogMailer) Send(_ context.Context, msg Message) error {
	m.logger.Info().
		Strs("to", msg.To).
		Str("subject", msg.Subject).
		Str("body", msg.Text).
		Msg("Email not sent, no mail transport configured")
	return nil
}
