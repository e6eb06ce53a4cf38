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

type CityService interface {
	List(ctx context.Context) ([]*models.City, error)
	GetByID(ctx context.Context, id int) (*models.City, error)
	Create(ctx context.Context, req *dtos.CityCreateRequest, actorID string) (*models.City, error)
	Update(ctx context.Context, id int, req *dtos.CityUpdateRequest, actorID string) (*models.City, error)
	Patch(ctx context.Context, id int, req *dtos.CityPatchRequest, actorID string) (*models.City, error)
	Delete(ctx context.Context, id int) error
}

type cityService struct {
	cityRepo repositories.CityRepository
}

func NewCityService(cityRepo repositories.CityRepository) CityService {
	return &cityService{cityRepo: cityRepo}
}

func (s *cityService) List(ctx context.Context) ([]*models.City, error) {
	cities, err := s.cityRepo.List(ctx)
	if err != nil {
		return nil, internalErr("failed to list cities", err)
	}
	return cities, nil
}

func (s *cityService) GetByID(ctx context.Context, id int) (*models.City, error) {
	city, err := s.cityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, internalErr("failed to fetch city", err)
	}
	if city == nil {
		return nil, notFoundErr("City not found")
	}
	return city, nil
}

func (s *cityService) Create(ctx context.Context, req *dtos.CityCreateRequest, actorID string) (*models.City, error) {
	name := strings.TrimSpace(req.Name)

	taken, err := s.cityRepo.NameExists(ctx, name, 0)
	if err != nil {
		return nil, internalErr("failed to check city name", err)
	}
	if taken {
		return nil, duplicateNameErr("City already exists")
	}

	city := &models.City{
		Name:    name,
		Country: strings.TrimSpace(req.Country),
	}
	city.Stamp(actorID)

	if err := s.cityRepo.Create(ctx, city); err != nil {
		return nil, internalErr("failed to create city", err)
	}

	utils.Logger.WithField("city", city.Name).Info("created city")
	return s.GetByID(ctx, city.ID)
}

func (s *cityService) Update(ctx context.Context, id int, req *dtos.CityUpdateRequest, actorID string) (*models.City, error) {
	if req.ID != id {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeInvalidPayload,
			Message:    "Payload id does not match the route",
		}
	}

	city, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	taken, err := s.cityRepo.NameExists(ctx, name, id)
	if err != nil {
		return nil, internalErr("failed to check city name", err)
	}
	if taken {
		return nil, duplicateNameErr("City already exists")
	}

	city.Name = name
	city.Country = strings.TrimSpace(req.Country)
	city.Stamp(actorID)

	if err := s.cityRepo.Update(ctx, city); err != nil {
		return nil, internalErr("failed to update city", err)
	}
	return s.GetByID(ctx, id)
}

// Patch applies only the fields present in the payload, then runs the same
// uniqueness check an update would.
func (s *cityService) Patch(ctx context.Context, id int, req *dtos.CityPatchRequest, actorID string) (*models.City, error) {
	city, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		taken, err := s.cityRepo.NameExists(ctx, name, id)
		if err != nil {
			return nil, internalErr("failed to check city name", err)
		}
		if taken {
			return nil, duplicateNameErr("City already exists")
		}
		city.Name = name
	}
	if req.Country != nil {
		city.Country = strings.TrimSpace(*req.Country)
	}
	city.Stamp(actorID)

	if err := s.cityRepo.Update(ctx, city); err != nil {
		return nil, internalErr("failed to update city", err)
	}
	return s.GetByID(ctx, id)
}

func (s *cityService) Delete(ctx context.Context, id int) error {
	city, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if city.PropertiesCount > 0 {
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "City has listings and cannot be deleted",
		}
	}
	if err := s.cityRepo.Delete(ctx, id); err != nil {
		return internalErr("failed to delete city", err)
	}
	return nil
}

/* ------------------------------------------------------------------
   Shared AppError constructors for the CRUD services
------------------------------------------------------------------ */

func internalErr(msg string, err error) *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusInternalServerError,
		Code:       utils.ErrCodeInternal,
		Message:    msg,
		Err:        err,
	}
}

func notFoundErr(msg string) *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusNotFound,
		Code:       utils.ErrCodeNotFound,
		Message:    msg,
	}
}

func duplicateNameErr(msg string) *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusConflict,
		Code:       utils.ErrCodeConflict,
		Message:    msg,
	}
}
