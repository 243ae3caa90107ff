package ports

import (
	"context"

	"github.com/mdnotes/notes-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
type UserRepository interface {
	FindByExternalID(ctx context.Context, externalID string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	// AttachExternalID links a provider subject to an existing user and
	// refreshes updated_at.
	AttachExternalID(ctx context.Context, userID, externalID string) error
}
