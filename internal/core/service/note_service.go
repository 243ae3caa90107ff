package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mdnotes/notes-api/internal/core/domain"
	"github.com/mdnotes/notes-api/internal/core/ports"
)

// NoteService implements owner-scoped note operations.
type NoteService struct {
	repo   ports.NoteRepository
	logger zerolog.Logger
	now    func() time.Time
	newID  func() string
}

func NewNoteService(repo ports.NoteRepository, logger zerolog.Logger) *NoteService {
	return &NoteService{repo: repo, logger: logger, now: time.Now, newID: newID}
}

// List returns all notes owned by ownerID, most recently touched first.
// An empty result is valid.
func (s *NoteService) List(ctx context.Context, ownerID string) ([]domain.Note, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

// Get returns a single note after the same existence and ownership checks
// as Update and Delete.
func (s *NoteService) Get(ctx context.Context, noteID, ownerID string) (*domain.Note, error) {
	return s.findOwned(ctx, noteID, ownerID)
}

// Create persists a new note. Title and content must both be non-empty;
// owner and timestamps are assigned here, never taken from the caller's
// payload.
func (s *NoteService) Create(ctx context.Context, input ports.CreateNoteInput) (*domain.Note, error) {
	if input.Title == "" || input.Content == "" {
		return nil, domain.ErrMissingFields
	}

	now := s.now().UTC()
	note := &domain.Note{
		ID:        s.newID(),
		Title:     input.Title,
		Content:   input.Content,
		OwnerID:   input.OwnerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, note); err != nil {
		s.logger.Error().Err(err).Msg("failed to create note")
		return nil, err
	}

	return note, nil
}

// Update applies a partial update to an owned note. An empty Title or
// Content leaves the stored value untouched, so a field cannot be blanked
// with an explicit empty string. Clients rely on this contract.
func (s *NoteService) Update(ctx context.Context, input ports.UpdateNoteInput) (*domain.Note, error) {
	note, err := s.findOwned(ctx, input.NoteID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		note.Title = input.Title
	}
	if input.Content != "" {
		note.Content = input.Content
	}
	note.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, note); err != nil {
		s.logger.Error().Err(err).Str("note_id", note.ID).Msg("failed to update note")
		return nil, err
	}

	return note, nil
}

// Delete permanently removes an owned note. Deleting an id that no longer
// exists reports not-found rather than succeeding silently.
func (s *NoteService) Delete(ctx context.Context, noteID, ownerID string) error {
	note, err := s.findOwned(ctx, noteID, ownerID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, note.ID); err != nil {
		s.logger.Error().Err(err).Str("note_id", note.ID).Msg("failed to delete note")
		return err
	}

	return nil
}

// findOwned loads the note and re-checks ownership against the freshest
// stored record. Existence is checked first, then ownership.
func (s *NoteService) findOwned(ctx context.Context, noteID, ownerID string) (*domain.Note, error) {
	note, err := s.repo.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note.OwnerID != ownerID {
		return nil, domain.ErrNotOwner
	}
	return note, nil
}
