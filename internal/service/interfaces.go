package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/til-client/internal/adapter"
	"github.com/MKhiriev/til-client/models"
)

// SessionManager is the session state the services read and change.
// *session.Manager implements it.
type SessionManager interface {
	adapter.Session

	// SetToken stores a freshly issued token and marks the session
	// authenticated.
	SetToken(ctx context.Context, token string) error

	// IsAuthenticated reports whether a token is held.
	IsAuthenticated() bool
}

// AuthService logs the user in and out.
type AuthService interface {
	// Login exchanges username and password for a token and stores it.
	Login(ctx context.Context, username, password string) error

	// LoginFederated exchanges a Sign in with Apple identity for a token and
	// stores it.
	LoginFederated(ctx context.Context, identity models.FederatedIdentity) error

	// Logout forgets the stored token. It never contacts the server.
	Logout(ctx context.Context) error

	IsAuthenticated() bool
}

// AcronymService manages acronyms and their category links.
type AcronymService interface {
	List(ctx context.Context) ([]models.Acronym, error)
	Create(ctx context.Context, data models.CreateAcronymData) (models.Acronym, error)
	Update(ctx context.Context, id uuid.UUID, data models.CreateAcronymData) (models.Acronym, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// User returns the owner of an acronym.
	User(ctx context.Context, id uuid.UUID) (models.User, error)

	// Categories returns the categories an acronym is filed under.
	Categories(ctx context.Context, id uuid.UUID) ([]models.Category, error)

	// AddCategory files an acronym under a category. It does nothing when
	// the link already exists, or when no one is logged in.
	AddCategory(ctx context.Context, acronymID, categoryID uuid.UUID) error

	RemoveCategory(ctx context.Context, acronymID, categoryID uuid.UUID) error
}

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, name string) (models.Category, error)
}

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, data models.CreateUserData) (models.User, error)
}
