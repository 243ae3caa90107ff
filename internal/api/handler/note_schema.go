package handler

import (
	"time"

	"github.com/mdnotes/notes-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createNoteRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// updateNoteRequest carries a partial update. Absent or empty fields leave
// the stored values unchanged.
type updateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// --- Response types ---

// noteResponse is the transport view of a note. It is intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type noteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type deleteNoteResponse struct {
	Message string `json:"message"`
}

func toNoteResponse(n domain.Note) noteResponse {
	return noteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Owner:     n.OwnerID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func toNoteResponses(notes []domain.Note) []noteResponse {
	out := make([]noteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteResponse(n))
	}
	return out
}
