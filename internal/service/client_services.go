package service

import (
	"github.com/MKhiriev/til-client/internal/adapter"
	"github.com/MKhiriev/til-client/internal/logger"
	"github.com/MKhiriev/til-client/internal/utils"
	"github.com/MKhiriev/til-client/internal/validators"
	"github.com/MKhiriev/til-client/models"
)

type ClientServices struct {
	Auth       AuthService
	Acronyms   AcronymService
	Categories CategoryService
	Users      UserService
}

// NewClientServices builds every service on one HTTP client and one
// session, so a 401 seen by any of them logs all of them out.
func NewClientServices(client *utils.HTTPClient, sessions SessionManager, log *logger.Logger) *ClientServices {
	validator := validators.NewTILValidator()

	return &ClientServices{
		Auth: NewClientAuthService(adapter.NewAuthClient(client, log), sessions, log),
		Acronyms: NewClientAcronymService(
			adapter.NewResourceClient[models.Acronym, models.CreateAcronymData](client, sessions, "acronyms", log),
			validator,
		),
		Categories: NewClientCategoryService(
			adapter.NewResourceClient[models.Category, models.CreateCategoryData](client, sessions, "categories", log),
			validator,
		),
		Users: NewClientUserService(
			adapter.NewResourceClient[models.User, models.CreateUserData](client, sessions, "users", log),
			validator,
		),
	}
}
