package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/satno7/superlists/internal/models"
)

// EnsureUser creates the user for email if absent and returns the stored
// record. INSERT OR IGNORE keeps concurrent provisioning of the same email
// race-free: exactly one row ever exists per address.
func (s *SQLiteStore) EnsureUser(ctx context.Context, email string) (*models.User, error) {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO users (email, created_at) VALUES (?, ?)",
		email, time.Now().Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure user: %w", err)
	}

	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s missing after ensure", email)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx,
		"SELECT email, created_at FROM users WHERE email = ?",
		email,
	).Scan(&user.Email, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}
