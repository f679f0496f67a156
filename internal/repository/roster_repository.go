package repository

import (
	"context"

	"github.com/vytor/fergusquiz/internal/models"
)

// RosterStore persists the whole roster. SaveAll replaces everything stored
// with the given students, in order, and must not leave partial state behind.
type RosterStore interface {
	LoadAll(ctx context.Context) ([]models.Student, error)
	SaveAll(ctx context.Context, students []models.Student) error
}
