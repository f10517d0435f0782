package service

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/MKhiriev/til-client/internal/adapter"
	"github.com/MKhiriev/til-client/internal/validators"
	"github.com/MKhiriev/til-client/models"
)

const relationUser = "user"

type clientAcronymService struct {
	acronyms  *adapter.ResourceClient[models.Acronym, models.CreateAcronymData]
	validator validators.Validator
}

func NewClientAcronymService(acronyms *adapter.ResourceClient[models.Acronym, models.CreateAcronymData], validator validators.Validator) AcronymService {
	return &clientAcronymService{acronyms: acronyms, validator: validator}
}

func (s *clientAcronymService) List(ctx context.Context) ([]models.Acronym, error) {
	acronyms, err := s.acronyms.ListAll(ctx)
	return acronyms, mapAdapterError(err)
}

func (s *clientAcronymService) Create(ctx context.Context, data models.CreateAcronymData) (models.Acronym, error) {
	if err := validate(ctx, s.validator, data); err != nil {
		return models.Acronym{}, err
	}

	acronym, err := s.acronyms.Create(ctx, data)
	return acronym, mapAdapterError(err)
}

func (s *clientAcronymService) Update(ctx context.Context, id uuid.UUID, data models.CreateAcronymData) (models.Acronym, error) {
	if err := validate(ctx, s.validator, data); err != nil {
		return models.Acronym{}, err
	}

	acronym, err := s.acronyms.Entity(&id).Update(ctx, data)
	return acronym, mapAdapterError(err)
}

func (s *clientAcronymService) Delete(ctx context.Context, id uuid.UUID) error {
	return mapAdapterError(s.acronyms.Entity(&id).Delete(ctx))
}

func (s *clientAcronymService) User(ctx context.Context, id uuid.UUID) (models.User, error) {
	user, err := adapter.FetchRelated[models.User](ctx, s.acronyms.Entity(&id), relationUser)
	return user, mapAdapterError(err)
}

func (s *clientAcronymService) Categories(ctx context.Context, id uuid.UUID) ([]models.Category, error) {
	categories, err := adapter.FetchRelated[[]models.Category](ctx, s.acronyms.Entity(&id), adapter.RelationCategories)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *clientAcronymService) AddCategory(ctx context.Context, acronymID, categoryID uuid.UUID) error {
	attached, err := s.Categories(ctx, acronymID)
	if err != nil {
		return err
	}

	if slices.ContainsFunc(attached, func(c models.Category) bool {
		return c.ID != nil && *c.ID == categoryID
	}) {
		return nil
	}

	return mapAdapterError(s.acronyms.Entity(&acronymID).Attach(ctx, adapter.RelationCategories, &categoryID))
}

func (s *clientAcronymService) RemoveCategory(ctx context.Context, acronymID, categoryID uuid.UUID) error {
	return mapAdapterError(s.acronyms.Entity(&acronymID).Detach(ctx, adapter.RelationCategories, &categoryID))
}
