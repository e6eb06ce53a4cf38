package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/propertyhub/listings-api/internal/dtos"
	"github.com/propertyhub/listings-api/internal/models"
)

func TestPropertyTypeRenameToTakenNameConflicts(t *testing.T) {
	svc := NewPropertyTypeService(&fakeTypeRepo{})
	ctx := context.Background()

	casa, err := svc.Create(ctx, &dtos.NamedTypeCreateRequest{Name: "Casa"}, "maria")
	require.NoError(t, err)
	_, err = svc.Create(ctx, &dtos.NamedTypeCreateRequest{Name: "Dúplex"}, "maria")
	require.NoError(t, err)

	// renaming onto another type's name must conflict, accents folded
	_, err = svc.Update(ctx, casa.ID, &dtos.NamedTypeUpdateRequest{ID: casa.ID, Name: "duplex"}, "maria")
	requireAppError(t, err, http.StatusConflict)

	_, err = svc.Patch(ctx, casa.ID, &dtos.NamedTypePatchRequest{Name: strPtr("DUPLEX")}, "maria")
	requireAppError(t, err, http.StatusConflict)
}

func TestPropertyTypeIdentityUpdateSucceeds(t *testing.T) {
	svc := NewPropertyTypeService(&fakeTypeRepo{})
	ctx := context.Background()

	casa, err := svc.Create(ctx, &dtos.NamedTypeCreateRequest{Name: "Casa"}, "maria")
	require.NoError(t, err)

	// re-submitting its own name, any casing, is not a duplicate
	updated, err := svc.Update(ctx, casa.ID, &dtos.NamedTypeUpdateRequest{ID: casa.ID, Name: "CASA"}, "jose")
	require.NoError(t, err)
	require.Equal(t, "CASA", updated.Name)
	require.Equal(t, "jose", updated.LastUpdatedBy)
}

func TestPropertyTypeDeleteWithListingsConflicts(t *testing.T) {
	repo := &fakeTypeRepo{}
	svc := NewPropertyTypeService(repo)
	ctx := context.Background()

	casa, err := svc.Create(ctx, &dtos.NamedTypeCreateRequest{Name: "Casa"}, "maria")
	require.NoError(t, err)

	repo.types[0].PropertiesCount = 1
	requireAppError(t, svc.Delete(ctx, casa.ID), http.StatusConflict)

	repo.types[0].PropertiesCount = 0
	require.NoError(t, svc.Delete(ctx, casa.ID))

	_, err = svc.GetByID(ctx, casa.ID)
	requireAppError(t, err, http.StatusNotFound)
}

func TestFurnishingTypeMirrorsUniquenessAndDeleteRules(t *testing.T) {
	repo := &fakeFurnRepo{}
	svc := NewFurnishingTypeService(repo)
	ctx := context.Background()

	full, err := svc.Create(ctx, &dtos.NamedTypeCreateRequest{Name: "Completo"}, "maria")
	require.NoError(t, err)
	_, err = svc.Create(ctx, &dtos.NamedTypeCreateRequest{Name: "Sin amueblar"}, "maria")
	require.NoError(t, err)

	_, err = svc.Create(ctx, &dtos.NamedTypeCreateRequest{Name: "sinamueblar"}, "maria")
	requireAppError(t, err, http.StatusConflict)

	_, err = svc.Update(ctx, full.ID, &dtos.NamedTypeUpdateRequest{ID: full.ID, Name: "SIN AMUEBLAR"}, "maria")
	requireAppError(t, err, http.StatusConflict)

	updated, err := svc.Update(ctx, full.ID, &dtos.NamedTypeUpdateRequest{ID: full.ID, Name: "completo"}, "maria")
	require.NoError(t, err)
	require.Equal(t, "completo", updated.Name)

	repo.types[0].PropertiesCount = 3
	requireAppError(t, svc.Delete(ctx, full.ID), http.StatusConflict)

	semi, err := svc.Create(ctx, &dtos.NamedTypeCreateRequest{Name: "Semi amueblado"}, "")
	require.NoError(t, err)
	require.Equal(t, models.SystemActor, semi.LastUpdatedBy)
}
