package http

import (
	"context"

	"github.com/MKhiriev/til-client/models"
	"github.com/google/uuid"
)

// Repository is the storage the stub API serves from.
type Repository interface {
	CreateUser(ctx context.Context, data models.CreateUserData) (models.User, error)
	Authenticate(ctx context.Context, username, password string) (models.User, error)
	FederatedUser(ctx context.Context, subject, name, username string) (models.User, error)
	Users(ctx context.Context) []models.User
	User(ctx context.Context, id uuid.UUID) (models.User, error)

	Acronyms(ctx context.Context) []models.Acronym
	CreateAcronym(ctx context.Context, userID uuid.UUID, data models.CreateAcronymData) (models.Acronym, error)
	UpdateAcronym(ctx context.Context, id, userID uuid.UUID, data models.CreateAcronymData) (models.Acronym, error)
	DeleteAcronym(ctx context.Context, id uuid.UUID) error
	AcronymUser(ctx context.Context, id uuid.UUID) (models.User, error)
	AcronymCategories(ctx context.Context, id uuid.UUID) ([]models.Category, error)
	AttachCategory(ctx context.Context, acronymID, categoryID uuid.UUID) error
	DetachCategory(ctx context.Context, acronymID, categoryID uuid.UUID) error

	Categories(ctx context.Context) []models.Category
	CreateCategory(ctx context.Context, data models.CreateCategoryData) (models.Category, error)
}
