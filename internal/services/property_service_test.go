package services

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/propertyhub/listings-api/internal/dtos"
	"github.com/propertyhub/listings-api/internal/models"
)

type propertyFixture struct {
	svc      PropertyService
	propRepo *fakePropRepo
	media    *fakeMedia

	owner  *TokenClaims
	admin  *TokenClaims
	other  *TokenClaims
	cityID int
	typeID int
	furnID int
}

func newPropertyFixture(t *testing.T) *propertyFixture {
	t.Helper()
	ctx := context.Background()

	userRepo := &fakeUserRepo{}
	ownerUser := &models.User{ID: uuid.New(), Username: "maria", Email: "maria@example.com", Role: models.RoleUser}
	adminUser := &models.User{ID: uuid.New(), Username: "admin", Email: "admin@gmail.com", Role: models.RoleAdmin}
	otherUser := &models.User{ID: uuid.New(), Username: "jose", Email: "jose@example.com", Role: models.RoleUser}
	require.NoError(t, userRepo.Create(ctx, ownerUser))
	require.NoError(t, userRepo.Create(ctx, adminUser))
	require.NoError(t, userRepo.Create(ctx, otherUser))

	cityRepo := &fakeCityRepo{}
	city := &models.City{Name: "Rosario", Country: "Argentina"}
	require.NoError(t, cityRepo.Create(ctx, city))

	typeRepo := &fakeTypeRepo{}
	pt := &models.PropertyType{Name: "Casa"}
	require.NoError(t, typeRepo.Create(ctx, pt))

	furnRepo := &fakeFurnRepo{}
	ft := &models.FurnishingType{Name: "Completo"}
	require.NoError(t, furnRepo.Create(ctx, ft))

	propRepo := newFakePropRepo()
	photoRepo := &fakePhotoRepo{prop: propRepo}
	media := &fakeMedia{}

	svc := NewPropertyService(propRepo, photoRepo, cityRepo, typeRepo, furnRepo, userRepo, media)

	return &propertyFixture{
		svc:      svc,
		propRepo: propRepo,
		media:    media,
		owner:    &TokenClaims{UserID: ownerUser.ID, Username: "maria", Role: models.RoleUser},
		admin:    &TokenClaims{UserID: adminUser.ID, Username: "admin", Role: models.RoleAdmin},
		other:    &TokenClaims{UserID: otherUser.ID, Username: "jose", Role: models.RoleUser},
		cityID:   city.ID,
		typeID:   pt.ID,
		furnID:   ft.ID,
	}
}

func (f *propertyFixture) createReq() *dtos.PropertyCreateRequest {
	return &dtos.PropertyCreateRequest{
		SellRent:         models.ForSell,
		Name:             "Casa con patio",
		PropertyTypeID:   f.typeID,
		FurnishingTypeID: f.furnID,
		CityID:           f.cityID,
		Price:            90000,
		BHK:              3,
		BuiltArea:        120,
		ReadyToMove:      true,
		EstPossessionOn:  time.Now().UTC(),
	}
}

func (f *propertyFixture) createListing(t *testing.T) *models.Property {
	t.Helper()
	p, err := f.svc.Create(context.Background(), f.createReq(), f.owner)
	require.NoError(t, err)
	return p
}

func (f *propertyFixture) addPhoto(t *testing.T, propertyID int, filename string) *models.Photo {
	t.Helper()
	ph, err := f.svc.AddPhoto(context.Background(), propertyID, &PhotoUpload{
		Reader:      strings.NewReader("jpegbytes"),
		Size:        9,
		Filename:    filename,
		ContentType: "image/jpeg",
	}, f.owner)
	require.NoError(t, err)
	return ph
}

func TestPropertyCreateAttributesOwnerAndStamps(t *testing.T) {
	f := newPropertyFixture(t)

	p := f.createListing(t)
	require.Equal(t, f.owner.UserID, p.PostedByID)
	require.Equal(t, "maria", p.LastUpdatedBy)
	require.False(t, p.PostedOn.IsZero())
}

func TestPropertyCreateAnonymousFallsBackToAdmin(t *testing.T) {
	f := newPropertyFixture(t)

	p, err := f.svc.Create(context.Background(), f.createReq(), nil)
	require.NoError(t, err)
	require.Equal(t, f.admin.UserID, p.PostedByID)
	require.Equal(t, models.SystemActor, p.LastUpdatedBy)
}

func TestPropertyCreateUnknownCityRejected(t *testing.T) {
	f := newPropertyFixture(t)

	req := f.createReq()
	req.CityID = 999
	_, err := f.svc.Create(context.Background(), req, f.owner)
	requireAppError(t, err, http.StatusUnprocessableEntity)
}

func TestPropertyUpdateOwnershipEnforced(t *testing.T) {
	f := newPropertyFixture(t)
	ctx := context.Background()
	p := f.createListing(t)

	upd := &dtos.PropertyUpdateRequest{
		ID:               p.ID,
		SellRent:         models.ForRent,
		Name:             "Casa con patio",
		PropertyTypeID:   f.typeID,
		FurnishingTypeID: f.furnID,
		CityID:           f.cityID,
		Price:            1200,
		BHK:              3,
		BuiltArea:        120,
		EstPossessionOn:  time.Now().UTC(),
	}

	_, err := f.svc.Update(ctx, p.ID, upd, f.other)
	requireAppError(t, err, http.StatusForbidden)

	// admins may edit any listing
	updated, err := f.svc.Update(ctx, p.ID, upd, f.admin)
	require.NoError(t, err)
	require.Equal(t, models.ForRent, updated.SellRent)
	require.Equal(t, "admin", updated.LastUpdatedBy)

	updated, err = f.svc.Update(ctx, p.ID, upd, f.owner)
	require.NoError(t, err)
	require.Equal(t, "maria", updated.LastUpdatedBy)
}

func TestListBySellRentValidatesArgument(t *testing.T) {
	f := newPropertyFixture(t)

	_, err := f.svc.ListBySellRent(context.Background(), 3)
	requireAppError(t, err, http.StatusBadRequest)
}

func TestFirstPhotoBecomesPrimary(t *testing.T) {
	f := newPropertyFixture(t)
	ctx := context.Background()
	p := f.createListing(t)

	ph1 := f.addPhoto(t, p.ID, "front.jpg")
	require.True(t, ph1.IsPrimary)

	ph2 := f.addPhoto(t, p.ID, "back.jpg")
	require.False(t, ph2.IsPrimary)

	detail, err := f.svc.GetDetail(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, detail.Photos, 2)
	require.Equal(t, ph1.PublicID, detail.PrimaryPhoto().PublicID)
}

func TestPrimaryPhotoCannotBeDeleted(t *testing.T) {
	f := newPropertyFixture(t)
	ctx := context.Background()
	p := f.createListing(t)

	ph1 := f.addPhoto(t, p.ID, "front.jpg")
	ph2 := f.addPhoto(t, p.ID, "back.jpg")

	requireAppError(t, f.svc.DeletePhoto(ctx, p.ID, ph1.PublicID, f.owner), http.StatusConflict)
	requireAppError(t, f.svc.SetPrimaryPhoto(ctx, p.ID, ph1.PublicID, f.owner), http.StatusConflict)

	// promoting the second photo frees the first for deletion
	require.NoError(t, f.svc.SetPrimaryPhoto(ctx, p.ID, ph2.PublicID, f.owner))
	require.NoError(t, f.svc.DeletePhoto(ctx, p.ID, ph1.PublicID, f.owner))

	detail, err := f.svc.GetDetail(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, detail.Photos, 1)
	require.Equal(t, ph2.PublicID, detail.PrimaryPhoto().PublicID)
	require.Contains(t, f.media.deleted, ph1.PublicID)
}

func TestPhotoRowSurvivesMediaHostFailure(t *testing.T) {
	f := newPropertyFixture(t)
	ctx := context.Background()
	p := f.createListing(t)

	f.addPhoto(t, p.ID, "front.jpg")
	ph2 := f.addPhoto(t, p.ID, "back.jpg")

	f.media.failNext = true
	requireAppError(t, f.svc.DeletePhoto(ctx, p.ID, ph2.PublicID, f.owner), http.StatusInternalServerError)

	detail, err := f.svc.GetDetail(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, detail.Photos, 2)
}

func TestSetPrimaryUnknownPhotoNotFound(t *testing.T) {
	f := newPropertyFixture(t)
	p := f.createListing(t)

	requireAppError(t, f.svc.SetPrimaryPhoto(context.Background(), p.ID, "missing", f.owner), http.StatusNotFound)
}

func TestPropertyDeleteRemovesHostObjects(t *testing.T) {
	f := newPropertyFixture(t)
	ctx := context.Background()
	p := f.createListing(t)

	ph1 := f.addPhoto(t, p.ID, "front.jpg")
	ph2 := f.addPhoto(t, p.ID, "back.jpg")

	requireAppError(t, f.svc.Delete(ctx, p.ID, f.other), http.StatusForbidden)
	require.NoError(t, f.svc.Delete(ctx, p.ID, f.owner))
	require.Contains(t, f.media.deleted, ph1.PublicID)
	require.Contains(t, f.media.deleted, ph2.PublicID)

	_, err := f.svc.GetDetail(ctx, p.ID)
	requireAppError(t, err, http.StatusNotFound)
}
