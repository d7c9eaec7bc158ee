package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/satno7/superlists/internal/metrics"
	"github.com/satno7/superlists/internal/models"
	"github.com/satno7/superlists/internal/storage"
	"github.com/satno7/superlists/internal/validation"
)

// ListService implements the list and item operations: creating a list with
// its first item, appending items, sharing, and the my-lists view.
type ListService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewListService creates a new ListService with the given storage backend.
func NewListService(store storage.Store, logger *slog.Logger) *ListService {
	return &ListService{store: store, logger: logger}
}

// CreateList atomically creates a list and its first item. ownerEmail may
// be empty for anonymous creation; only an authenticated identity becomes
// the owner. Validation failures leave nothing persisted.
func (s *ListService) CreateList(ctx context.Context, firstItemText, ownerEmail string) (*models.List, error) {
	if err := validation.CheckItemText(firstItemText, nil); err != nil {
		s.logger.Info("CreateList rejected", "error", err)
		metrics.ValidationFailures.WithLabelValues(failureReason(err)).Inc()
		return nil, err
	}

	list := &models.List{
		OwnerEmail: ownerEmail,
		Items:      []models.Item{{Text: firstItemText}},
	}
	if err := s.store.CreateList(ctx, list); err != nil {
		s.logger.Error("CreateList failed", "error", err)
		return nil, err
	}

	metrics.ListsCreated.Inc()
	s.logger.Info("List created", "list_id", list.ID, "owner", ownerEmail != "")
	return list, nil
}

// AddItem validates text against the list's current items and appends it.
// The first failing rule wins: empty text, then duplicate text. On failure
// nothing is written.
func (s *ListService) AddItem(ctx context.Context, listID, text string) (*models.Item, error) {
	list, err := s.store.GetList(ctx, listID)
	if err != nil {
		return nil, err
	}

	if err := validation.CheckItemText(text, list.ItemTexts()); err != nil {
		s.logger.Info("AddItem rejected", "list_id", listID, "error", err)
		metrics.ValidationFailures.WithLabelValues(failureReason(err)).Inc()
		return nil, err
	}

	item := &models.Item{ListID: listID, Text: text}
	if err := s.store.AddItem(ctx, item); err != nil {
		// A concurrent writer may have inserted the same text between the
		// check and the write; the storage constraint reports it as the
		// same duplicate error.
		if errors.Is(err, validation.ErrDuplicateItem) {
			metrics.ValidationFailures.WithLabelValues("duplicate").Inc()
			return nil, err
		}
		s.logger.Error("AddItem failed", "list_id", listID, "error", err)
		return nil, err
	}

	metrics.ItemsAdded.Inc()
	s.logger.Info("Item added", "list_id", listID, "item_id", item.ID)
	return item, nil
}

// GetList retrieves a list with its items in order, owner, and sharees.
// Any caller holding the id may read it.
func (s *ListService) GetList(ctx context.Context, listID string) (*models.List, error) {
	return s.store.GetList(ctx, listID)
}

// MyLists returns the lists the user owns plus the lists shared with them.
func (s *ListService) MyLists(ctx context.Context, email string) ([]*models.List, error) {
	return s.store.ListsForUser(ctx, email)
}

// Share grants shareeEmail visibility into the list. The sharee must be a
// registered user; sharing never creates accounts. Re-sharing with the
// same user is a no-op.
func (s *ListService) Share(ctx context.Context, listID, shareeEmail string) error {
	sharee, err := s.store.GetUserByEmail(ctx, shareeEmail)
	if err != nil {
		return err
	}
	if sharee == nil {
		s.logger.Info("Share rejected, no such user", "list_id", listID, "sharee", shareeEmail)
		return storage.ErrUserNotFound
	}

	if err := s.store.AddSharee(ctx, listID, sharee.Email); err != nil {
		s.logger.Error("Share failed", "list_id", listID, "error", err)
		return err
	}

	s.logger.Info("List shared", "list_id", listID, "sharee", sharee.Email)
	return nil
}

// DeleteList removes the list and all its items and share relations.
func (s *ListService) DeleteList(ctx context.Context, listID string) error {
	if err := s.store.DeleteList(ctx, listID); err != nil {
		return err
	}
	s.logger.Info("List deleted", "list_id", listID)
	return nil
}

// failureReason maps a validation error to its metric label.
func failureReason(err error) string {
	if errors.Is(err, validation.ErrDuplicateItem) {
		return "duplicate"
	}
	return "empty"
}
