package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/propertyhub/listings-api/internal/models"
	"github.com/propertyhub/listings-api/internal/utils"
)

type FurnishingTypeRepository interface {
	Create(ctx context.Context, ft *models.FurnishingType) error
	GetByID(ctx context.Context, id int) (*models.FurnishingType, error)
	List(ctx context.Context) ([]*models.FurnishingType, error)
	NameExists(ctx context.Context, name string, excludeID int) (bool, error)
	Update(ctx context.Context, ft *models.FurnishingType) error
	Delete(ctx context.Context, id int) error
}

type furnishingTypeRepo struct {
	db DB
}

func NewFurnishingTypeRepository(db DB) FurnishingTypeRepository {
	return &furnishingTypeRepo{db: db}
}

func baseSelectFurnishingType() string {
	return `
        SELECT t.id, t.name, t.last_updated_on, t.last_updated_by,
               (SELECT COUNT(*) FROM properties p WHERE p.furnishing_type_id = t.id) AS properties_count
        FROM furnishing_types t`
}

func scanFurnishingType(row pgx.Row) (*models.FurnishingType, error) {
	var t models.FurnishingType
	err := row.Scan(&t.ID, &t.Name, &t.LastUpdatedOn, &t.LastUpdatedBy, &t.PropertiesCount)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *furnishingTypeRepo) Create(ctx context.Context, ft *models.FurnishingType) error {
	return r.db.QueryRow(ctx, `
        INSERT INTO furnishing_types (name, last_updated_on, last_updated_by)
        VALUES ($1, $2, $3)
        RETURNING id
    `, ft.Name, ft.LastUpdatedOn, ft.LastUpdatedBy).Scan(&ft.ID)
}

func (r *furnishingTypeRepo) GetByID(ctx context.Context, id int) (*models.FurnishingType, error) {
	t, err := scanFurnishingType(r.db.QueryRow(ctx, baseSelectFurnishingType()+" WHERE t.id=$1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return t, err
}

func (r *furnishingTypeRepo) List(ctx context.Context) ([]*models.FurnishingType, error) {
	rows, err := r.db.Query(ctx, baseSelectFurnishingType()+" ORDER BY t.name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.FurnishingType
	for rows.Next() {
		t, err := scanFurnishingType(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *furnishingTypeRepo) NameExists(ctx context.Context, name string, excludeID int) (bool, error) {
	return nameExists(ctx, r.db, "furnishing_types", name, excludeID)
}

func (r *furnishingTypeRepo) Update(ctx context.Context, ft *models.FurnishingType) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE furnishing_types SET
            name=$1, last_updated_on=$2, last_updated_by=$3
        WHERE id=$4
    `, ft.Name, ft.LastUpdatedOn, ft.LastUpdatedBy, ft.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}

func (r *furnishingTypeRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM furnishing_types WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}
