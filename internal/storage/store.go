// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/satno7/superlists/internal/models"
)

// Sentinel errors returned by Store implementations.
var (
	// ErrListNotFound is returned when no list exists for the given id.
	ErrListNotFound = errors.New("list not found")

	// ErrUserNotFound is returned when an operation requires an existing
	// user and none exists for the given email.
	ErrUserNotFound = errors.New("user not found")
)

// Store defines the interface for Superlists storage operations. Each
// method is a single unit of work: multi-row writes commit atomically or
// not at all. This abstraction allows swapping storage backends (SQLite,
// PostgreSQL, etc.) without changing the service layer.
type Store interface {
	// CreateList persists a new list together with its items in one
	// transaction. The list.ID and item IDs are populated by the store.
	// No list row survives a failed item write.
	CreateList(ctx context.Context, list *models.List) error

	// GetList retrieves a list by id with its items in insertion order,
	// owner, and sharees. Returns ErrListNotFound if no such list exists.
	GetList(ctx context.Context, listID string) (*models.List, error)

	// AddItem appends an item to the list identified by item.ListID. The
	// item.ID and item.Position are populated by the store. A uniqueness
	// constraint on (list, text) is enforced at commit; violations surface
	// as the duplicate-item validation error.
	AddItem(ctx context.Context, item *models.Item) error

	// DeleteList removes a list and, by cascade, its items and sharee
	// rows. Returns ErrListNotFound if no such list exists.
	DeleteList(ctx context.Context, listID string) error

	// AddSharee records that the list is shared with the user identified
	// by email. Idempotent. Returns ErrListNotFound or ErrUserNotFound
	// when either side of the relation is missing.
	AddSharee(ctx context.Context, listID, email string) error

	// ListsForUser returns the lists the user owns plus the lists shared
	// with them, most recently created first.
	ListsForUser(ctx context.Context, email string) ([]*models.List, error)

	// EnsureUser creates the user for email if absent and returns the
	// stored record either way.
	EnsureUser(ctx context.Context, email string) (*models.User, error)

	// GetUserByEmail retrieves a user by email. Returns nil and no error
	// when the user does not exist.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// CreateToken persists a freshly issued login token. The token.UID is
	// populated by the store if empty.
	CreateToken(ctx context.Context, token *models.Token) error

	// ConsumeToken atomically marks the token as redeemed and returns its
	// email. Returns ok=false, without error, when the uid is unknown or
	// the token was already redeemed.
	ConsumeToken(ctx context.Context, uid string) (email string, ok bool, err error)

	// Close releases any resources held by the store.
	Close() error
}
