// Package mail delivers login links. Delivery is an external collaborator
// of the auth flow: token issuance succeeds or fails independently of
// whether the email goes out.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
)

// Sender delivers a login link containing the token uid to an email address.
type Sender interface {
	SendLoginLink(ctx context.Context, email, loginURL string) error
}

// LogSender writes login links to the log instead of sending mail. Useful
// for development and tests.
type LogSender struct {
	Logger *slog.Logger
}

// SendLoginLink logs the link that would have been emailed.
func (s *LogSender) SendLoginLink(ctx context.Context, email, loginURL string) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("login link (mail disabled)", "email", email, "url", loginURL)
	return nil
}

// SMTPSender delivers login links over plain SMTP.
type SMTPSender struct {
	Addr string // host:port of the SMTP server
	From string // sender address, e.g. noreply@satno7.press
}

// SendLoginLink sends the login email.
func (s *SMTPSender) SendLoginLink(ctx context.Context, email, loginURL string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Your login link for Superlists\r\n\r\nUse this link to log in:\n\n%s\n",
		s.From, email, loginURL,
	)
	if err := smtp.SendMail(s.Addr, nil, s.From, []string{email}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send login email: %w", err)
	}
	return nil
}
