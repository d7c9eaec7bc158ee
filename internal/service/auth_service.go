package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/satno7/superlists/internal/mail"
	"github.com/satno7/superlists/internal/metrics"
	"github.com/satno7/superlists/internal/models"
	"github.com/satno7/superlists/internal/storage"
)

// AuthService implements the passwordless login flow: issue a one-time
// token for an email address, deliver it as a login link, and redeem the
// token into a user identity.
type AuthService struct {
	store   storage.Store
	mailer  mail.Sender
	baseURL string
	logger  *slog.Logger
}

// NewAuthService creates a new AuthService. baseURL is the externally
// reachable root used to build login links, e.g. "https://lists.satno7.press".
func NewAuthService(store storage.Store, mailer mail.Sender, baseURL string, logger *slog.Logger) *AuthService {
	return &AuthService{store: store, mailer: mailer, baseURL: baseURL, logger: logger}
}

// IssueToken generates and persists a fresh login token for email. Several
// outstanding tokens for the same address may coexist.
func (s *AuthService) IssueToken(ctx context.Context, email string) (*models.Token, error) {
	token := &models.Token{Email: email}
	if err := s.store.CreateToken(ctx, token); err != nil {
		s.logger.Error("IssueToken failed", "email", email, "error", err)
		return nil, err
	}
	s.logger.Info("Token issued", "email", email)
	return token, nil
}

// SendLoginEmail issues a token and mails the login link. The token is
// persisted before delivery is attempted, so a mail failure leaves a valid
// token behind; the caller may simply retry.
func (s *AuthService) SendLoginEmail(ctx context.Context, email string) error {
	token, err := s.IssueToken(ctx, email)
	if err != nil {
		return err
	}

	loginURL := fmt.Sprintf("%s/api/auth/login?uid=%s", s.baseURL, url.QueryEscape(token.UID))
	if err := s.mailer.SendLoginLink(ctx, email, loginURL); err != nil {
		s.logger.Error("Login email delivery failed", "email", email, "error", err)
		return err
	}

	metrics.LoginEmailsSent.Inc()
	s.logger.Info("Login email sent", "email", email)
	return nil
}

// Redeem consumes the token identified by uid and returns the associated
// user, provisioning the account on first login. An unknown, garbled, or
// already-used uid yields (nil, nil): the caller stays anonymous, nothing
// errors.
func (s *AuthService) Redeem(ctx context.Context, uid string) (*models.User, error) {
	email, ok, err := s.store.ConsumeToken(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !ok {
		metrics.TokenRedemptions.WithLabelValues("miss").Inc()
		s.logger.Info("Token redemption missed", "uid", uid)
		return nil, nil
	}

	user, err := s.resolveOrProvisionUser(ctx, email)
	if err != nil {
		return nil, err
	}

	metrics.TokenRedemptions.WithLabelValues("ok").Inc()
	s.logger.Info("Token redeemed", "email", user.Email)
	return user, nil
}

// resolveOrProvisionUser returns the user for email, creating the account
// if it does not exist yet. User creation as a side effect of login is the
// only registration path there is.
func (s *AuthService) resolveOrProvisionUser(ctx context.Context, email string) (*models.User, error) {
	return s.store.EnsureUser(ctx, email)
}
