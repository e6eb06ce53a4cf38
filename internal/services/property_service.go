package services

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/propertyhub/listings-api/internal/dtos"
	"github.com/propertyhub/listings-api/internal/models"
	"github.com/propertyhub/listings-api/internal/repositories"
	"github.com/propertyhub/listings-api/internal/utils"
)

// fallbackOwnerEmail matches the seeded administrator. Listings created while
// actor resolution fails are attributed to this account rather than dropped.
const fallbackOwnerEmail = "admin@gmail.com"

type PhotoUpload struct {
	Reader      io.Reader
	Size        int64
	Filename    string
	ContentType string
}

type PropertyService interface {
	ListBySellRent(ctx context.Context, sellRent int) ([]*models.Property, error)
	GetDetail(ctx context.Context, id int) (*models.Property, error)
	Create(ctx context.Context, req *dtos.PropertyCreateRequest, actor *TokenClaims) (*models.Property, error)
	Update(ctx context.Context, id int, req *dtos.PropertyUpdateRequest, actor *TokenClaims) (*models.Property, error)
	Delete(ctx context.Context, id int, actor *TokenClaims) error

	AddPhoto(ctx context.Context, propertyID int, upload *PhotoUpload, actor *TokenClaims) (*models.Photo, error)
	SetPrimaryPhoto(ctx context.Context, propertyID int, publicID string, actor *TokenClaims) error
	DeletePhoto(ctx context.Context, propertyID int, publicID string, actor *TokenClaims) error
}

type propertyService struct {
	propRepo  repositories.PropertyRepository
	photoRepo repositories.PhotoRepository
	cityRepo  repositories.CityRepository
	typeRepo  repositories.PropertyTypeRepository
	furnRepo  repositories.FurnishingTypeRepository
	userRepo  repositories.UserRepository
	media     MediaService
}

func NewPropertyService(
	propRepo repositories.PropertyRepository,
	photoRepo repositories.PhotoRepository,
	cityRepo repositories.CityRepository,
	typeRepo repositories.PropertyTypeRepository,
	furnRepo repositories.FurnishingTypeRepository,
	userRepo repositories.UserRepository,
	media MediaService,
) PropertyService {
	return &propertyService{
		propRepo:  propRepo,
		photoRepo: photoRepo,
		cityRepo:  cityRepo,
		typeRepo:  typeRepo,
		furnRepo:  furnRepo,
		userRepo:  userRepo,
		media:     media,
	}
}

func (s *propertyService) ListBySellRent(ctx context.Context, sellRent int) ([]*models.Property, error) {
	if sellRent != models.ForSell && sellRent != models.ForRent {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeInvalidPayload,
			Message:    "sellRent must be 1 (sell) or 2 (rent)",
		}
	}
	props, err := s.propRepo.ListBySellRent(ctx, sellRent)
	if err != nil {
		return nil, internalErr("failed to list properties", err)
	}
	return props, nil
}

func (s *propertyService) GetDetail(ctx context.Context, id int) (*models.Property, error) {
	p, err := s.propRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, internalErr("failed to fetch property", err)
	}
	if p == nil {
		return nil, notFoundErr("Property not found")
	}
	return p, nil
}

func (s *propertyService) Create(ctx context.Context, req *dtos.PropertyCreateRequest, actor *TokenClaims) (*models.Property, error) {
	if err := s.checkReferences(ctx, req.CityID, req.PropertyTypeID, req.FurnishingTypeID); err != nil {
		return nil, err
	}

	owner, err := s.resolveOwner(ctx, actor)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &models.Property{
		SellRent:         req.SellRent,
		Name:             strings.TrimSpace(req.Name),
		PropertyTypeID:   req.PropertyTypeID,
		FurnishingTypeID: req.FurnishingTypeID,
		CityID:           req.CityID,
		PostedByID:       owner.ID,
		Price:            req.Price,
		BHK:              req.BHK,
		BuiltArea:        req.BuiltArea,
		ReadyToMove:      req.ReadyToMove,
		EstPossessionOn:  req.EstPossessionOn,
		PostedOn:         now,
	}
	p.Stamp(actorName(actor))

	if err := s.propRepo.Create(ctx, p); err != nil {
		return nil, internalErr("failed to create property", err)
	}

	utils.Logger.WithField("property_id", p.ID).Info("created property listing")
	return s.GetDetail(ctx, p.ID)
}

func (s *propertyService) Update(ctx context.Context, id int, req *dtos.PropertyUpdateRequest, actor *TokenClaims) (*models.Property, error) {
	if req.ID != id {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeInvalidPayload,
			Message:    "Payload id does not match the route",
		}
	}

	p, err := s.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(p, actor); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req.CityID, req.PropertyTypeID, req.FurnishingTypeID); err != nil {
		return nil, err
	}

	p.SellRent = req.SellRent
	p.Name = strings.TrimSpace(req.Name)
	p.PropertyTypeID = req.PropertyTypeID
	p.FurnishingTypeID = req.FurnishingTypeID
	p.CityID = req.CityID
	p.Price = req.Price
	p.BHK = req.BHK
	p.BuiltArea = req.BuiltArea
	p.CarpetArea = req.CarpetArea
	p.Address = req.Address
	p.Address2 = req.Address2
	p.FloorNo = req.FloorNo
	p.TotalFloors = req.TotalFloors
	p.ReadyToMove = req.ReadyToMove
	p.MainEntrance = req.MainEntrance
	p.Security = req.Security
	p.Gated = req.Gated
	p.Maintenance = req.Maintenance
	p.EstPossessionOn = req.EstPossessionOn
	p.Age = req.Age
	p.Description = req.Description
	p.Stamp(actorName(actor))

	if err := s.propRepo.Update(ctx, p); err != nil {
		return nil, internalErr("failed to update property", err)
	}
	return s.GetDetail(ctx, id)
}

// Delete removes the media-host objects before the rows; the photo rows then
// cascade with the property.
func (s *propertyService) Delete(ctx context.Context, id int, actor *TokenClaims) error {
	p, err := s.GetDetail(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkOwnership(p, actor); err != nil {
		return err
	}

	for _, ph := range p.Photos {
		if err := s.media.Delete(ctx, ph.PublicID); err != nil {
			return internalErr("failed to remove photo from media host", err)
		}
	}
	if err := s.propRepo.Delete(ctx, id); err != nil {
		return internalErr("failed to delete property", err)
	}

	utils.Logger.WithField("property_id", id).Info("deleted property listing")
	return nil
}

func (s *propertyService) AddPhoto(ctx context.Context, propertyID int, upload *PhotoUpload, actor *TokenClaims) (*models.Photo, error) {
	p, err := s.GetDetail(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(p, actor); err != nil {
		return nil, err
	}

	res, err := s.media.Upload(ctx, upload.Reader, upload.Size, upload.Filename, upload.ContentType)
	if err != nil {
		return nil, internalErr("failed to upload photo", err)
	}

	ph := &models.Photo{
		PropertyID: propertyID,
		PublicID:   res.PublicID,
		ImageURL:   res.URL,
		IsPrimary:  len(p.Photos) == 0,
	}
	ph.Stamp(actorName(actor))

	if err := s.photoRepo.Add(ctx, ph); err != nil {
		// keep the host clean when the row insert fails
		if delErr := s.media.Delete(ctx, res.PublicID); delErr != nil {
			utils.Logger.WithError(delErr).WithField("public_id", res.PublicID).
				Error("failed to roll back media upload")
		}
		return nil, internalErr("failed to save photo", err)
	}
	return ph, nil
}

func (s *propertyService) SetPrimaryPhoto(ctx context.Context, propertyID int, publicID string, actor *TokenClaims) error {
	p, err := s.GetDetail(ctx, propertyID)
	if err != nil {
		return err
	}
	if err := s.checkOwnership(p, actor); err != nil {
		return err
	}
	ph := p.FindPhoto(publicID)
	if ph == nil {
		return notFoundErr("Photo not found")
	}
	if ph.IsPrimary {
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "Photo is already the primary photo",
		}
	}
	if err := s.photoRepo.SetPrimary(ctx, propertyID, publicID, actorName(actor)); err != nil {
		return internalErr("failed to set primary photo", err)
	}
	return nil
}

func (s *propertyService) DeletePhoto(ctx context.Context, propertyID int, publicID string, actor *TokenClaims) error {
	p, err := s.GetDetail(ctx, propertyID)
	if err != nil {
		return err
	}
	if err := s.checkOwnership(p, actor); err != nil {
		return err
	}

	ph := p.FindPhoto(publicID)
	if ph == nil {
		return notFoundErr("Photo not found")
	}
	if ph.IsPrimary {
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "Primary photo cannot be deleted; promote another photo first",
		}
	}

	// host object first: the local row is only dropped once the host copy
	// is gone
	if err := s.media.Delete(ctx, publicID); err != nil {
		return internalErr("failed to remove photo from media host", err)
	}
	if err := s.photoRepo.Delete(ctx, ph.ID); err != nil {
		return internalErr("failed to delete photo", err)
	}
	return nil
}

/* ------------------------------------------------------------------
   Helpers
------------------------------------------------------------------ */

func (s *propertyService) checkReferences(ctx context.Context, cityID, typeID, furnID int) error {
	city, err := s.cityRepo.GetByID(ctx, cityID)
	if err != nil {
		return internalErr("failed to check city", err)
	}
	if city == nil {
		return unknownReferenceErr("Unknown city")
	}

	pt, err := s.typeRepo.GetByID(ctx, typeID)
	if err != nil {
		return internalErr("failed to check property type", err)
	}
	if pt == nil {
		return unknownReferenceErr("Unknown property type")
	}

	ft, err := s.furnRepo.GetByID(ctx, furnID)
	if err != nil {
		return internalErr("failed to check furnishing type", err)
	}
	if ft == nil {
		return unknownReferenceErr("Unknown furnishing type")
	}
	return nil
}

// resolveOwner pins the listing to a concrete user record. Resolution order:
// the authenticated actor, the seeded administrator, any existing user.
func (s *propertyService) resolveOwner(ctx context.Context, actor *TokenClaims) (*models.User, error) {
	if actor != nil {
		u, err := s.userRepo.GetByID(ctx, actor.UserID)
		if err != nil {
			return nil, internalErr("failed to resolve listing owner", err)
		}
		if u != nil {
			return u, nil
		}
	}

	u, err := s.userRepo.GetByEmail(ctx, fallbackOwnerEmail)
	if err != nil {
		return nil, internalErr("failed to resolve listing owner", err)
	}
	if u == nil {
		u, err = s.userRepo.First(ctx)
		if err != nil {
			return nil, internalErr("failed to resolve listing owner", err)
		}
	}
	if u == nil {
		return nil, internalErr("no user available to own the listing", nil)
	}
	return u, nil
}

func (s *propertyService) checkOwnership(p *models.Property, actor *TokenClaims) error {
	if actor == nil {
		return &utils.AppError{
			StatusCode: http.StatusUnauthorized,
			Code:       utils.ErrCodeUnauthorized,
			Message:    "Authentication required",
		}
	}
	if actor.Role == models.RoleAdmin || p.PostedByID == actor.UserID {
		return nil
	}
	return &utils.AppError{
		StatusCode: http.StatusForbidden,
		Code:       utils.ErrCodeUnauthorized,
		Message:    "You do not own this listing",
	}
}

func actorName(actor *TokenClaims) string {
	if actor == nil {
		return ""
	}
	return actor.Username
}

func unknownReferenceErr(msg string) *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusUnprocessableEntity,
		Code:       utils.ErrCodeValidation,
		Message:    msg,
	}
}
