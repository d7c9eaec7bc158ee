package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/satno7/superlists/internal/models"
)

// CreateToken persists a freshly issued login token. Multiple outstanding
// tokens per email are allowed.
func (s *SQLiteStore) CreateToken(ctx context.Context, token *models.Token) error {
	if token.UID == "" {
		token.UID = uuid.New().String()
	}
	if token.IssuedAt == 0 {
		token.IssuedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO tokens (uid, email, issued_at) VALUES (?, ?, ?)",
		token.UID, token.Email, token.IssuedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert token: %w", err)
	}
	return nil
}

// ConsumeToken marks the token as redeemed and returns its email. The
// guarded UPDATE is the whole point: of any number of concurrent
// redemptions of the same uid, at most one sees ok=true. An unknown or
// already-redeemed uid is not an error, just ok=false.
func (s *SQLiteStore) ConsumeToken(ctx context.Context, uid string) (string, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE tokens SET redeemed_at = ? WHERE uid = ? AND redeemed_at IS NULL",
		time.Now().Unix(), uid,
	)
	if err != nil {
		return "", false, fmt.Errorf("failed to redeem token: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return "", false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return "", false, nil
	}

	var email string
	err = tx.QueryRowContext(ctx, "SELECT email FROM tokens WHERE uid = ?", uid).Scan(&email)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get token email: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return email, true, nil
}
