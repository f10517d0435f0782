package service

import (
	"context"

	"github.com/MKhiriev/til-client/internal/adapter"
	"github.com/MKhiriev/til-client/internal/validators"
	"github.com/MKhiriev/til-client/models"
)

type clientCategoryService struct {
	categories *adapter.ResourceClient[models.Category, models.CreateCategoryData]
	validator  validators.Validator
}

func NewClientCategoryService(categories *adapter.ResourceClient[models.Category, models.CreateCategoryData], validator validators.Validator) CategoryService {
	return &clientCategoryService{categories: categories, validator: validator}
}

func (s *clientCategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.ListAll(ctx)
	return categories, mapAdapterError(err)
}

func (s *clientCategoryService) Create(ctx context.Context, name string) (models.Category, error) {
	data := models.CreateCategoryData{Name: name}
	if err := validate(ctx, s.validator, data); err != nil {
		return models.Category{}, err
	}

	category, err := s.categories.Create(ctx, data)
	return category, mapAdapterError(err)
}
