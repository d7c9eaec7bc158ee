package service

import (
	"testing"

	"github.com/satno7/superlists/internal/models"
)

func TestCanModify(t *testing.T) {
	tests := []struct {
		name  string
		owner string
		email string
		want  bool
	}{
		{"ownerless list, anonymous caller", "", "", true},
		{"ownerless list, authenticated caller", "", "edith@example.com", true},
		{"owned list, owner", "edith@example.com", "edith@example.com", true},
		{"owned list, other user", "edith@example.com", "matt@matt.com", false},
		{"owned list, anonymous", "edith@example.com", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := &models.List{OwnerEmail: tt.owner}
			if got := CanModify(list, tt.email); got != tt.want {
				t.Errorf("CanModify = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBelongsTo(t *testing.T) {
	list := &models.List{
		OwnerEmail: "edith@example.com",
		Sharees:    []string{"matt@matt.com"},
	}

	if !BelongsTo(list, "edith@example.com") {
		t.Error("owner should belong")
	}
	if !BelongsTo(list, "matt@matt.com") {
		t.Error("sharee should belong")
	}
	if BelongsTo(list, "loner@example.com") {
		t.Error("uninvolved user should not belong")
	}
	if BelongsTo(list, "") {
		t.Error("anonymous should not belong")
	}
}
