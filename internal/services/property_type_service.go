package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/propertyhub/listings-api/internal/dtos"
	"github.com/propertyhub/listings-api/internal/models"
	"github.com/propertyhub/listings-api/internal/repositories"
	"github.com/propertyhub/listings-api/internal/utils"
)

type PropertyTypeService interface {
	List(ctx context.Context) ([]*models.PropertyType, error)
	GetByID(ctx context.Context, id int) (*models.PropertyType, error)
	Create(ctx context.Context, req *dtos.NamedTypeCreateRequest, actorID string) (*models.PropertyType, error)
	Update(ctx context.Context, id int, req *dtos.NamedTypeUpdateRequest, actorID string) (*models.PropertyType, error)
	Patch(ctx context.Context, id int, req *dtos.NamedTypePatchRequest, actorID string) (*models.PropertyType, error)
	Delete(ctx context.Context, id int) error
}

type propertyTypeService struct {
	typeRepo repositories.PropertyTypeRepository
}

func NewPropertyTypeService(typeRepo repositories.PropertyTypeRepository) PropertyTypeService {
	return &propertyTypeService{typeRepo: typeRepo}
}

func (s *propertyTypeService) List(ctx context.Context) ([]*models.PropertyType, error) {
	types, err := s.typeRepo.List(ctx)
	if err != nil {
		return nil, internalErr("failed to list property types", err)
	}
	return types, nil
}

func (s *propertyTypeService) GetByID(ctx context.Context, id int) (*models.PropertyType, error) {
	t, err := s.typeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, internalErr("failed to fetch property type", err)
	}
	if t == nil {
		return nil, notFoundErr("Property type not found")
	}
	return t, nil
}

func (s *propertyTypeService) Create(ctx context.Context, req *dtos.NamedTypeCreateRequest, actorID string) (*models.PropertyType, error) {
	name := strings.TrimSpace(req.Name)

	taken, err := s.typeRepo.NameExists(ctx, name, 0)
	if err != nil {
		return nil, internalErr("failed to check property type name", err)
	}
	if taken {
		return nil, duplicateNameErr("Property type already exists")
	}

	t := &models.PropertyType{Name: name}
	t.Stamp(actorID)

	if err := s.typeRepo.Create(ctx, t); err != nil {
		return nil, internalErr("failed to create property type", err)
	}
	return s.GetByID(ctx, t.ID)
}

func (s *propertyTypeService) Update(ctx context.Context, id int, req *dtos.NamedTypeUpdateRequest, actorID string) (*models.PropertyType, error) {
	if req.ID != id {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeInvalidPayload,
			Message:    "Payload id does not match the route",
		}
	}

	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	taken, err := s.typeRepo.NameExists(ctx, name, id)
	if err != nil {
		return nil, internalErr("failed to check property type name", err)
	}
	if taken {
		return nil, duplicateNameErr("Property type already exists")
	}

	t.Name = name
	t.Stamp(actorID)

	if err := s.typeRepo.Update(ctx, t); err != nil {
		return nil, internalErr("failed to update property type", err)
	}
	return s.GetByID(ctx, id)
}

func (s *propertyTypeService) Patch(ctx context.Context, id int, req *dtos.NamedTypePatchRequest, actorID string) (*models.PropertyType, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		taken, err := s.typeRepo.NameExists(ctx, name, id)
		if err != nil {
			return nil, internalErr("failed to check property type name", err)
		}
		if taken {
			return nil, duplicateNameErr("Property type already exists")
		}
		t.Name = name
	}
	t.Stamp(actorID)

	if err := s.typeRepo.Update(ctx, t); err != nil {
		return nil, internalErr("failed to update property type", err)
	}
	return s.GetByID(ctx, id)
}

func (s *propertyTypeService) Delete(ctx context.Context, id int) error {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.PropertiesCount > 0 {
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "Property type has listings and cannot be deleted",
		}
	}
	if err := s.typeRepo.Delete(ctx, id); err != nil {
		return internalErr("failed to delete property type", err)
	}
	return nil
}
