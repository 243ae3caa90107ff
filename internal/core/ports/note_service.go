package ports

import (
	"context"

	"github.com/mdnotes/notes-api/internal/core/domain"
)

// CreateNoteInput carries the data needed to create a note for ownerID.
type CreateNoteInput struct {
	OwnerID string
	Title   string
	Content string
}

// UpdateNoteInput carries a partial update. Empty Title or Content means
// "leave the stored value unchanged".
type UpdateNoteInput struct {
	NoteID  string
	OwnerID string
	Title   string
	Content string
}

// NoteService defines use-case operations over notes. Every operation is
// scoped to the authenticated owner resolved by the auth middleware.
type NoteService interface {
	List(ctx context.Context, ownerID string) ([]domain.Note, error)
	Get(ctx context.Context, noteID, ownerID string) (*domain.Note, error)
	Create(ctx context.Context, input CreateNoteInput) (*domain.Note, error)
	Update(ctx context.Context, input UpdateNoteInput) (*domain.Note, error)
	Delete(ctx context.Context, noteID, ownerID string) error
}
