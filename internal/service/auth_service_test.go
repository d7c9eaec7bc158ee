package service

import (
	"context"
	"strings"
	"testing"

	"github.com/satno7/superlists/internal/mail"
)

// captureSender records login links instead of delivering them.
type captureSender struct {
	emails []string
	urls   []string
}

func (c *captureSender) SendLoginLink(_ context.Context, email, loginURL string) error {
	c.emails = append(c.emails, email)
	c.urls = append(c.urls, loginURL)
	return nil
}

var _ mail.Sender = (*captureSender)(nil)

func newAuthService(t *testing.T) (*AuthService, *captureSender) {
	t.Helper()
	sender := &captureSender{}
	svc := NewAuthService(newTestStore(t), sender, "http://lists.example.com", discardLogger())
	return svc, sender
}

func TestTokenRoundTrip(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	token, err := svc.IssueToken(ctx, "edith@example.com")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if token.UID == "" {
		t.Fatal("expected a generated uid")
	}

	user, err := svc.Redeem(ctx, token.UID)
	if err != nil {
		t.Fatalf("Redeem failed: %v", err)
	}
	if user == nil {
		t.Fatal("expected an identity")
	}
	if user.Email != "edith@example.com" {
		t.Errorf("Email = %q, want edith@example.com", user.Email)
	}
}

func TestRedeemUnknownUIDStaysAnonymous(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Redeem(context.Background(), "never-issued-uid")
	if err != nil {
		t.Fatalf("Redeem must not error on unknown uid, got %v", err)
	}
	if user != nil {
		t.Errorf("user = %v, want nil", user)
	}
}

func TestRedeemIsSingleUse(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	token, err := svc.IssueToken(ctx, "once@example.com")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if user, err := svc.Redeem(ctx, token.UID); err != nil || user == nil {
		t.Fatalf("first redeem: user=%v err=%v", user, err)
	}
	user, err := svc.Redeem(ctx, token.UID)
	if err != nil {
		t.Fatalf("second redeem errored: %v", err)
	}
	if user != nil {
		t.Errorf("second redeem returned %v, want nil", user)
	}
}

func TestRedeemProvisionsUserOnce(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	first, err := svc.IssueToken(ctx, "new@example.com")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	second, err := svc.IssueToken(ctx, "new@example.com")
	if err != nil {
		t.Fatalf("second IssueToken failed: %v", err)
	}

	u1, err := svc.Redeem(ctx, first.UID)
	if err != nil || u1 == nil {
		t.Fatalf("first redeem: user=%v err=%v", u1, err)
	}
	u2, err := svc.Redeem(ctx, second.UID)
	if err != nil || u2 == nil {
		t.Fatalf("second redeem: user=%v err=%v", u2, err)
	}
	if u1.Email != u2.Email || u1.CreatedAt != u2.CreatedAt {
		t.Errorf("redeems resolved different users: %v vs %v", u1, u2)
	}
}

func TestSendLoginEmail(t *testing.T) {
	svc, sender := newAuthService(t)
	ctx := context.Background()

	if err := svc.SendLoginEmail(ctx, "edith@example.com"); err != nil {
		t.Fatalf("SendLoginEmail failed: %v", err)
	}

	if len(sender.emails) != 1 || sender.emails[0] != "edith@example.com" {
		t.Fatalf("emails = %v, want [edith@example.com]", sender.emails)
	}
	url := sender.urls[0]
	if !strings.HasPrefix(url, "http://lists.example.com/api/auth/login?uid=") {
		t.Errorf("login url = %q, want base URL and uid query", url)
	}

	// The uid in the link must redeem.
	uid := strings.TrimPrefix(url, "http://lists.example.com/api/auth/login?uid=")
	user, err := svc.Redeem(ctx, uid)
	if err != nil || user == nil {
		t.Fatalf("redeem from link: user=%v err=%v", user, err)
	}
}
