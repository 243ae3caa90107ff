package ports

import (
	"context"

	"github.com/mdnotes/notes-api/internal/core/domain"
)

// IdentityAssertion is a `{name, email, externalId}` triple already verified
// with the third-party provider. The service trusts it as-is.
type IdentityAssertion struct {
	Name       string
	Email      string
	ExternalID string
}

// AuthResult carries the resolved account and a freshly minted access token.
type AuthResult struct {
	User  *domain.User
	Token string
}

// AuthService resolves identity assertions to local accounts and mints
// bearer tokens for them.
type AuthService interface {
	Link(ctx context.Context, assertion IdentityAssertion) (*AuthResult, error)
}
