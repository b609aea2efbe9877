package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/metrics"
	"github.com/rpupo63/portfolio-site-backend/models"
)

// DefaultOperatorEmail receives inquiry notifications unless NOTIFY_EMAIL overrides it.
const DefaultOperatorEmail = "rahmanhafizur31928@gmail.com"

// InquiryNotifier emails the site operator about new inquiries. Delivery runs in
// the background and failures are only logged.
type InquiryNotifier struct {
	mailer  Mailer
	to      string
	timeout time.Duration
	logger  zerolog.Logger
	wg      sync.WaitGroup
}

func NewInquiryNotifier(mailer Mailer, operatorEmail string, timeout time.Duration) *InquiryNotifier {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if operatorEmail == "" {
		operatorEmail = DefaultOperatorEmail
	}
	return &InquiryNotifier{
		mailer:  mailer,
		to:      operatorEmail,
		timeout: timeout,
		logger:  log.With().Str("component", "inquiryNotifier").Logger(),
	}
}

// Notify returns immediately; the email is sent on its own goroutine.
func (n *InquiryNotifier) Notify(inquiry models.Inquiry) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.deliver(inquiry)
	}()
}

// Wait blocks until every notification started so far has finished.
func (n *InquiryNotifier) Wait() {
	n.wg.Wait()
}

func (n *InquiryNotifier) deliver(inquiry models.Inquiry) {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			metrics.IncrementInquiryNotification("failed")
			n.logger.Error().Interface("panic", r).Str("inquiryID", inquiry.ID.String()).Msg("Recovered from panic sending inquiry notification")
		}
	}()

	err := n.mailer.Send(ctx, InquiryMessage(inquiry, n.to))
	if err != nil {
		metrics.IncrementInquiryNotification("failed")
		n.logger.Error().Err(err).Str("inquiryID", inquiry.ID.String()).Msg("Error sending inquiry notification")
		return
	}

	metrics.IncrementInquiryNotification("sent")
	n.logger.Info().Str("inquiryID", inquiry.ID.String()).Msg("Inquiry notification sent")
}

// InquiryMessage renders the operator email for an inquiry.
func InquiryMessage(inquiry models.Inquiry, to string) Message {
	return Message{
		To:      []string{to},
		Subject: fmt.Sprintf("New Project Inquiry from %s", inquiry.Name),
		Text: fmt.Sprintf(
			"You have a new inquiry:\nName: %s\nEmail: %s\nProject Type: %s\nMessage: %s\n",
			inquiry.Name,
			inquiry.Email,
			inquiry.ProjectType,
			inquiry.Message,
		),
	}
}
