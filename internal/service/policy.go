package service

import "github.com/satno7/superlists/internal/models"

// Access rules. Reads are capability-style: holding a list id is enough to
// view it, so there is no CanView. Owner-level mutation is the only gated
// operation.

// CanModify reports whether the identity (an email, empty when anonymous)
// may perform owner-level operations such as deleting the list. Ownerless
// lists belong to whoever holds the id.
func CanModify(list *models.List, email string) bool {
	return list.OwnerEmail == "" || list.OwnerEmail == email
}

// BelongsTo reports whether the list shows up in the user's "my lists"
// view: owned by them or shared with them.
func BelongsTo(list *models.List, email string) bool {
	if email == "" {
		return false
	}
	if list.OwnerEmail == email {
		return true
	}
	for _, sharee := range list.Sharees {
		if sharee == email {
			return true
		}
	}
	return false
}
