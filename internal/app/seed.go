package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/propertyhub/listings-api/internal/models"
	"github.com/propertyhub/listings-api/internal/repositories"
	"github.com/propertyhub/listings-api/internal/utils"
)

const (
	seedAdminUsername = "admin"
	seedAdminEmail    = "admin@gmail.com"
	seedAdminPassword = "Password123!"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// SeedData populates the demo dataset: an admin account, the reference
// entities, and one listing. Safe to run on every startup.
func SeedData(
	ctx context.Context,
	userRepo repositories.UserRepository,
	cityRepo repositories.CityRepository,
	typeRepo repositories.PropertyTypeRepository,
	furnRepo repositories.FurnishingTypeRepository,
	propRepo repositories.PropertyRepository,
) error {
	admin, err := seedAdminIfNeeded(ctx, userRepo)
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	cityIDs, err := seedCitiesIfNeeded(ctx, cityRepo)
	if err != nil {
		return fmt.Errorf("seed cities: %w", err)
	}
	typeIDs, err := seedPropertyTypesIfNeeded(ctx, typeRepo)
	if err != nil {
		return fmt.Errorf("seed property types: %w", err)
	}
	furnIDs, err := seedFurnishingTypesIfNeeded(ctx, furnRepo)
	if err != nil {
		return fmt.Errorf("seed furnishing types: %w", err)
	}

	if err := seedDemoListingIfNeeded(ctx, propRepo, admin.ID, cityIDs, typeIDs, furnIDs); err != nil {
		return fmt.Errorf("seed demo listing: %w", err)
	}

	utils.Logger.Info("seed data is in place")
	return nil
}

func seedAdminIfNeeded(ctx context.Context, userRepo repositories.UserRepository) (*models.User, error) {
	existing, err := userRepo.GetByEmail(ctx, seedAdminEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	hash, err := utils.HashPassword(seedAdminPassword)
	if err != nil {
		return nil, err
	}
	admin := &models.User{
		ID:           uuid.New(),
		Username:     seedAdminUsername,
		Email:        seedAdminEmail,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		if isUniqueViolation(err) {
			return userRepo.GetByEmail(ctx, seedAdminEmail)
		}
		return nil, err
	}
	utils.Logger.Info("seeded admin user")
	return admin, nil
}

func seedCitiesIfNeeded(ctx context.Context, repo repositories.CityRepository) (map[string]int, error) {
	seeds := []models.City{
		{Name: "Buenos Aires", Country: "Argentina"},
		{Name: "Córdoba", Country: "Argentina"},
		{Name: "Rosario", Country: "Argentina"},
	}

	existing, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]int, len(seeds))
	for _, c := range existing {
		ids[utils.NormalizeName(c.Name)] = c.ID
	}

	for _, seed := range seeds {
		key := utils.NormalizeName(seed.Name)
		if _, ok := ids[key]; ok {
			continue
		}
		c := seed
		c.Stamp(models.SystemActor)
		if err := repo.Create(ctx, &c); err != nil {
			if isUniqueViolation(err) {
				continue
			}
			return nil, err
		}
		ids[key] = c.ID
	}
	return ids, nil
}

func seedPropertyTypesIfNeeded(ctx context.Context, repo repositories.PropertyTypeRepository) (map[string]int, error) {
	names := []string{"Casa", "Apartamento", "Dúplex"}

	existing, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]int, len(names))
	for _, t := range existing {
		ids[utils.NormalizeName(t.Name)] = t.ID
	}

	for _, name := range names {
		key := utils.NormalizeName(name)
		if _, ok := ids[key]; ok {
			continue
		}
		t := &models.PropertyType{Name: name}
		t.Stamp(models.SystemActor)
		if err := repo.Create(ctx, t); err != nil {
			if isUniqueViolation(err) {
				continue
			}
			return nil, err
		}
		ids[key] = t.ID
	}
	return ids, nil
}

func seedFurnishingTypesIfNeeded(ctx context.Context, repo repositories.FurnishingTypeRepository) (map[string]int, error) {
	names := []string{"Completo", "Semi amueblado", "Sin amueblar"}

	existing, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]int, len(names))
	for _, t := range existing {
		ids[utils.NormalizeName(t.Name)] = t.ID
	}

	for _, name := range names {
		key := utils.NormalizeName(name)
		if _, ok := ids[key]; ok {
			continue
		}
		t := &models.FurnishingType{Name: name}
		t.Stamp(models.SystemActor)
		if err := repo.Create(ctx, t); err != nil {
			if isUniqueViolation(err) {
				continue
			}
			return nil, err
		}
		ids[key] = t.ID
	}
	return ids, nil
}

func seedDemoListingIfNeeded(
	ctx context.Context,
	propRepo repositories.PropertyRepository,
	ownerID uuid.UUID,
	cityIDs, typeIDs, furnIDs map[string]int,
) error {
	const demoName = "Departamento céntrico con balcón"

	listings, err := propRepo.ListBySellRent(ctx, models.ForSell)
	if err != nil {
		return err
	}
	for _, p := range listings {
		if p.Name == demoName {
			return nil
		}
	}

	cityID, ok := cityIDs[utils.NormalizeName("Buenos Aires")]
	if !ok {
		return errors.New("seed city missing")
	}
	typeID, ok := typeIDs[utils.NormalizeName("Apartamento")]
	if !ok {
		return errors.New("seed property type missing")
	}
	furnID, ok := furnIDs[utils.NormalizeName("Completo")]
	if !ok {
		return errors.New("seed furnishing type missing")
	}

	now := time.Now().UTC()
	p := &models.Property{
		SellRent:         models.ForSell,
		Name:             demoName,
		PropertyTypeID:   typeID,
		FurnishingTypeID: furnID,
		CityID:           cityID,
		PostedByID:       ownerID,
		Price:            120000,
		BHK:              2,
		BuiltArea:        85,
		CarpetArea:       72,
		Address:          "Av. Corrientes 1500",
		FloorNo:          4,
		TotalFloors:      10,
		ReadyToMove:      true,
		MainEntrance:     "East",
		Security:         0,
		Gated:            false,
		Maintenance:      150,
		EstPossessionOn:  now,
		Age:              5,
		Description:      "Luminoso departamento de dos ambientes a metros del Obelisco.",
		PostedOn:         now,
	}
	p.Stamp(models.SystemActor)

	if err := propRepo.Create(ctx, p); err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return err
	}
	utils.Logger.Info("seeded demo listing")
	return nil
}
