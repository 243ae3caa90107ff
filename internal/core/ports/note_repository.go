package ports

import (
	"context"

	"github.com/mdnotes/notes-api/internal/core/domain"
)

// NoteRepository defines the persistence interface for notes.
type NoteRepository interface {
	// FindByOwner returns every note owned by ownerID ordered by updated_at
	// descending, with a deterministic tie-break.
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Note, error)
	FindByID(ctx context.Context, id string) (*domain.Note, error)
	Create(ctx context.Context, note *domain.Note) error
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, id string) error
}
