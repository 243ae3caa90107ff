package domain

import (
	"errors"
	"time"
)

var ErrNoteNotFound = errors.New("note not found")
var ErrNotOwner = errors.New("user not authorized")
var ErrMissingFields = errors.New("please add a title and content")

// Note is the core aggregate. Content holds raw markdown source; rendering
// is a client concern. OwnerID is set at creation and never changes — every
// read and write is filtered through it.
type Note struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	OwnerID   string    `json:"owner" bson:"owner_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
