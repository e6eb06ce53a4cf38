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

type FurnishingTypeService interface {
	List(ctx context.Context) ([]*models.FurnishingType, error)
	GetByID(ctx context.Context, id int) (*models.FurnishingType, error)
	Create(ctx context.Context, req *dtos.NamedTypeCreateRequest, actorID string) (*models.FurnishingType, error)
	Update(ctx context.Context, id int, req *dtos.NamedTypeUpdateRequest, actorID string) (*models.FurnishingType, error)
	Patch(ctx context.Context, id int, req *dtos.NamedTypePatchRequest, actorID string) (*models.FurnishingType, error)
	Delete(ctx context.Context, id int) error
}

type furnishingTypeService struct {
	typeRepo repositories.FurnishingTypeRepository
}

func NewFurnishingTypeService(typeRepo repositories.FurnishingTypeRepository) FurnishingTypeService {
	return &furnishingTypeService{typeRepo: typeRepo}
}

func (s *furnishingTypeService) List(ctx context.Context) ([]*models.FurnishingType, error) {
	types, err := s.typeRepo.List(ctx)
	if err != nil {
		return nil, internalErr("failed to list furnishing types", err)
	}
	return types, nil
}

func (s *furnishingTypeService) GetByID(ctx context.Context, id int) (*models.FurnishingType, error) {
	t, err := s.typeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, internalErr("failed to fetch furnishing type", err)
	}
	if t == nil {
		return nil, notFoundErr("Furnishing type not found")
	}
	return t, nil
}

func (s *furnishingTypeService) Create(ctx context.Context, req *dtos.NamedTypeCreateRequest, actorID string) (*models.FurnishingType, error) {
	name := strings.TrimSpace(req.Name)

	taken, err := s.typeRepo.NameExists(ctx, name, 0)
	if err != nil {
		return nil, internalErr("failed to check furnishing type name", err)
	}
	if taken {
		return nil, duplicateNameErr("Furnishing type already exists")
	}

	t := &models.FurnishingType{Name: name}
	t.Stamp(actorID)

	if err := s.typeRepo.Create(ctx, t); err != nil {
		return nil, internalErr("failed to create furnishing type", err)
	}
	return s.GetByID(ctx, t.ID)
}

func (s *furnishingTypeService) Update(ctx context.Context, id int, req *dtos.NamedTypeUpdateRequest, actorID string) (*models.FurnishingType, error) {
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
		return nil, internalErr("failed to check furnishing type name", err)
	}
	if taken {
		return nil, duplicateNameErr("Furnishing type already exists")
	}

	t.Name = name
	t.Stamp(actorID)

	if err := s.typeRepo.Update(ctx, t); err != nil {
		return nil, internalErr("failed to update furnishing type", err)
	}
	return s.GetByID(ctx, id)
}

func (s *furnishingTypeService) Patch(ctx context.Context, id int, req *dtos.NamedTypePatchRequest, actorID string) (*models.FurnishingType, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		taken, err := s.typeRepo.NameExists(ctx, name, id)
		if err != nil {
			return nil, internalErr("failed to check furnishing type name", err)
		}
		if taken {
			return nil, duplicateNameErr("Furnishing type already exists")
		}
		t.Name = name
	}
	t.Stamp(actorID)

	if err := s.typeRepo.Update(ctx, t); err != nil {
		return nil, internalErr("failed to update furnishing type", err)
	}
	return s.GetByID(ctx, id)
}

func (s *furnishingTypeService) Delete(ctx context.Context, id int) error {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.PropertiesCount > 0 {
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "Furnishing type has listings and cannot be deleted",
		}
	}
	if err := s.typeRepo.Delete(ctx, id); err != nil {
		return internalErr("failed to delete furnishing type", err)
	}
	return nil
}
