package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/satno7/superlists/internal/models"
	"github.com/satno7/superlists/internal/storage"
	"github.com/satno7/superlists/internal/validation"
)

// CreateList persists a list together with its items in one transaction.
// The list and first item are one unit of work: if any item insert fails,
// the list row is rolled back with it and nothing is observable.
func (s *SQLiteStore) CreateList(ctx context.Context, list *models.List) error {
	if list.ID == "" {
		list.ID = uuid.New().String()
	}
	if list.CreatedAt == 0 {
		list.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	owner := sql.NullString{String: list.OwnerEmail, Valid: list.OwnerEmail != ""}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO lists (id, owner_email, created_at) VALUES (?, ?, ?)",
		list.ID, owner, list.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert list: %w", err)
	}

	for i := range list.Items {
		item := &list.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.ListID = list.ID
		item.Position = i

		_, err = tx.ExecContext(ctx,
			"INSERT INTO items (id, list_id, position, text) VALUES (?, ?, ?, ?)",
			item.ID, item.ListID, item.Position, item.Text,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return validation.Duplicate()
			}
			return fmt.Errorf("failed to insert item: %w", err)
		}
	}

	for _, email := range list.Sharees {
		_, err = tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO list_sharees (list_id, email) VALUES (?, ?)",
			list.ID, email,
		)
		if err != nil {
			return fmt.Errorf("failed to insert sharee: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetList retrieves a list by id, including its items in insertion order
// and its sharees.
func (s *SQLiteStore) GetList(ctx context.Context, listID string) (*models.List, error) {
	list := &models.List{}
	var owner sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT id, owner_email, created_at FROM lists WHERE id = ?",
		listID,
	).Scan(&list.ID, &owner, &list.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrListNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	list.OwnerEmail = owner.String

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, list_id, position, text FROM items WHERE list_id = ? ORDER BY position, id",
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.ListID, &item.Position, &item.Text); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		list.Items = append(list.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	shareeRows, err := s.db.QueryContext(ctx,
		"SELECT email FROM list_sharees WHERE list_id = ? ORDER BY email",
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get sharees: %w", err)
	}
	defer shareeRows.Close()

	for shareeRows.Next() {
		var email string
		if err := shareeRows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan sharee: %w", err)
		}
		list.Sharees = append(list.Sharees, email)
	}
	if err := shareeRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sharees: %w", err)
	}

	return list, nil
}

// AddItem appends an item to its list. The position is assigned inside the
// transaction; the UNIQUE (list_id, text) constraint rejects duplicates
// that raced past the caller's pre-check.
func (s *SQLiteStore) AddItem(ctx context.Context, item *models.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM lists WHERE id = ?", item.ListID).Scan(&exists)
	if err == sql.ErrNoRows {
		return storage.ErrListNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check list: %w", err)
	}

	err = tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position) + 1, 0) FROM items WHERE list_id = ?",
		item.ListID,
	).Scan(&item.Position)
	if err != nil {
		return fmt.Errorf("failed to compute position: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO items (id, list_id, position, text) VALUES (?, ?, ?, ?)",
		item.ID, item.ListID, item.Position, item.Text,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return validation.Duplicate()
		}
		return fmt.Errorf("failed to insert item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return validation.Duplicate()
		}
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteList removes a list; items and sharee rows go with it via
// ON DELETE CASCADE.
func (s *SQLiteStore) DeleteList(ctx context.Context, listID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM lists WHERE id = ?", listID)
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return storage.ErrListNotFound
	}
	return nil
}

// AddSharee records the share relation. Requires both the list and the
// user to exist already; INSERT OR IGNORE makes re-sharing idempotent.
func (s *SQLiteStore) AddSharee(ctx context.Context, listID, email string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM lists WHERE id = ?", listID).Scan(&exists)
	if err == sql.ErrNoRows {
		return storage.ErrListNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check list: %w", err)
	}

	err = s.db.QueryRowContext(ctx, "SELECT 1 FROM users WHERE email = ?", email).Scan(&exists)
	if err == sql.ErrNoRows {
		return storage.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO list_sharees (list_id, email) VALUES (?, ?)",
		listID, email,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sharee: %w", err)
	}
	return nil
}

// ListsForUser returns the lists the user owns plus the lists shared with
// them, most recently created first.
func (s *SQLiteStore) ListsForUser(ctx context.Context, email string) ([]*models.List, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT l.id
		FROM lists l
		LEFT JOIN list_sharees s ON s.list_id = l.id
		WHERE l.owner_email = ? OR s.email = ?
		ORDER BY l.created_at DESC, l.id`,
		email, email,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists for user: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan list id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate list ids: %w", err)
	}

	lists := make([]*models.List, 0, len(ids))
	for _, id := range ids {
		list, err := s.GetList(ctx, id)
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	return lists, nil
}
