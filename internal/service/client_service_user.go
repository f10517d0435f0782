package service

import (
	"context"

	"github.com/MKhiriev/til-client/internal/adapter"
	"github.com/MKhiriev/til-client/internal/validators"
	"github.com/MKhiriev/til-client/models"
)

type clientUserService struct {
	users     *adapter.ResourceClient[models.User, models.CreateUserData]
	validator validators.Validator
}

func NewClientUserService(users *adapter.ResourceClient[models.User, models.CreateUserData], validator validators.Validator) UserService {
	return &clientUserService{users: users, validator: validator}
}

func (s *clientUserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListAll(ctx)
	return users, mapAdapterError(err)
}

func (s *clientUserService) Create(ctx context.Context, data models.CreateUserData) (models.User, error) {
	if err := validate(ctx, s.validator, data); err != nil {
		return models.User{}, err
	}

	user, err := s.users.Create(ctx, data)
	return user, mapAdapterError(err)
}
