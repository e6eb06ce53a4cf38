package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/propertyhub/listings-api/internal/dtos"
	"github.com/propertyhub/listings-api/internal/models"
)

func strPtr(s string) *string { return &s }

func TestCityCreateStampsActor(t *testing.T) {
	svc := NewCityService(&fakeCityRepo{})

	city, err := svc.Create(context.Background(), &dtos.CityCreateRequest{
		Name: " Rosario ", Country: "Argentina",
	}, "maria")
	require.NoError(t, err)
	require.Equal(t, "Rosario", city.Name)
	require.Equal(t, "maria", city.LastUpdatedBy)
	require.False(t, city.LastUpdatedOn.IsZero())
}

func TestCityCreateFallsBackToSystemActor(t *testing.T) {
	svc := NewCityService(&fakeCityRepo{})

	city, err := svc.Create(context.Background(), &dtos.CityCreateRequest{
		Name: "Rosario", Country: "Argentina",
	}, "")
	require.NoError(t, err)
	require.Equal(t, models.SystemActor, city.LastUpdatedBy)
}

func TestCityCreateDuplicateFoldsAccentsAndCase(t *testing.T) {
	svc := NewCityService(&fakeCityRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, &dtos.CityCreateRequest{Name: "Córdoba", Country: "Argentina"}, "maria")
	require.NoError(t, err)

	_, err = svc.Create(ctx, &dtos.CityCreateRequest{Name: "cordoba", Country: "Argentina"}, "maria")
	requireAppError(t, err, http.StatusConflict)

	_, err = svc.Create(ctx, &dtos.CityCreateRequest{Name: "CÓRDOBA ", Country: "Argentina"}, "maria")
	requireAppError(t, err, http.StatusConflict)
}

func TestCityUpdateExcludesSelfFromUniqueness(t *testing.T) {
	svc := NewCityService(&fakeCityRepo{})
	ctx := context.Background()

	city, err := svc.Create(ctx, &dtos.CityCreateRequest{Name: "Rosario", Country: "Argentina"}, "maria")
	require.NoError(t, err)

	// re-submitting its own name must not trip the duplicate check
	updated, err := svc.Update(ctx, city.ID, &dtos.CityUpdateRequest{
		ID: city.ID, Name: "Rosario", Country: "AR",
	}, "maria")
	require.NoError(t, err)
	require.Equal(t, "AR", updated.Country)
}

func TestCityUpdateRejectsMismatchedID(t *testing.T) {
	svc := NewCityService(&fakeCityRepo{})
	ctx := context.Background()

	city, err := svc.Create(ctx, &dtos.CityCreateRequest{Name: "Rosario", Country: "Argentina"}, "maria")
	require.NoError(t, err)

	_, err = svc.Update(ctx, city.ID, &dtos.CityUpdateRequest{
		ID: city.ID + 1, Name: "Rosario", Country: "Argentina",
	}, "maria")
	requireAppError(t, err, http.StatusBadRequest)
}

func TestCityPatchAppliesOnlyPresentFields(t *testing.T) {
	svc := NewCityService(&fakeCityRepo{})
	ctx := context.Background()

	city, err := svc.Create(ctx, &dtos.CityCreateRequest{Name: "Rosario", Country: "Argentina"}, "maria")
	require.NoError(t, err)

	patched, err := svc.Patch(ctx, city.ID, &dtos.CityPatchRequest{Country: strPtr("AR")}, "jose")
	require.NoError(t, err)
	require.Equal(t, "Rosario", patched.Name)
	require.Equal(t, "AR", patched.Country)
	require.Equal(t, "jose", patched.LastUpdatedBy)
}

func TestCityGetByIDNotFound(t *testing.T) {
	svc := NewCityService(&fakeCityRepo{})

	_, err := svc.GetByID(context.Background(), 42)
	requireAppError(t, err, http.StatusNotFound)
}

func TestCityDeleteWithListingsConflicts(t *testing.T) {
	repo := &fakeCityRepo{}
	svc := NewCityService(repo)
	ctx := context.Background()

	city, err := svc.Create(ctx, &dtos.CityCreateRequest{Name: "Rosario", Country: "Argentina"}, "maria")
	require.NoError(t, err)

	repo.cities[0].PropertiesCount = 2
	requireAppError(t, svc.Delete(ctx, city.ID), http.StatusConflict)

	repo.cities[0].PropertiesCount = 0
	require.NoError(t, svc.Delete(ctx, city.ID))

	_, err = svc.GetByID(ctx, city.ID)
	requireAppError(t, err, http.StatusNotFound)
}
