package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/propertyhub/listings-api/internal/models"
	"github.com/propertyhub/listings-api/internal/utils"
)

type PropertyTypeRepository interface {
	Create(ctx context.Context, pt *models.PropertyType) error
	GetByID(ctx context.Context, id int) (*models.PropertyType, error)
	List(ctx context.Context) ([]*models.PropertyType, error)
	NameExists(ctx context.Context, name string, excludeID int) (bool, error)
	Update(ctx context.Context, pt *models.PropertyType) error
	Delete(ctx context.Context, id int) error
}

type propertyTypeRepo struct {
	db DB
}

func NewPropertyTypeRepository(db DB) PropertyTypeRepository {
	return &propertyTypeRepo{db: db}
}

func baseSelectPropertyType() string {
	return `
        SELECT t.id, t.name, t.last_updated_on, t.last_updated_by,
               (SELECT COUNT(*) FROM properties p WHERE p.property_type_id = t.id) AS properties_count
        FROM property_types t`
}

func scanPropertyType(row pgx.Row) (*models.PropertyType, error) {
	var t models.PropertyType
	err := row.Scan(&t.ID, &t.Name, &t.LastUpdatedOn, &t.LastUpdatedBy, &t.PropertiesCount)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *propertyTypeRepo) Create(ctx context.Context, pt *models.PropertyType) error {
	return r.db.QueryRow(ctx, `
        INSERT INTO property_types (name, last_updated_on, last_updated_by)
        VALUES ($1, $2, $3)
        RETURNING id
    `, pt.Name, pt.LastUpdatedOn, pt.LastUpdatedBy).Scan(&pt.ID)
}

func (r *propertyTypeRepo) GetByID(ctx context.Context, id int) (*models.PropertyType, error) {
	t, err := scanPropertyType(r.db.QueryRow(ctx, baseSelectPropertyType()+" WHERE t.id=$1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return t, err
}

func (r *propertyTypeRepo) List(ctx context.Context) ([]*models.PropertyType, error) {
	rows, err := r.db.Query(ctx, baseSelectPropertyType()+" ORDER BY t.name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.PropertyType
	for rows.Next() {
		t, err := scanPropertyType(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *propertyTypeRepo) NameExists(ctx context.Context, name string, excludeID int) (bool, error) {
	return nameExists(ctx, r.db, "property_types", name, excludeID)
}

func (r *propertyTypeRepo) Update(ctx context.Context, pt *models.PropertyType) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE property_types SET
            name=$1, last_updated_on=$2, last_updated_by=$3
        WHERE id=$4
    `, pt.Name, pt.LastUpdatedOn, pt.LastUpdatedBy, pt.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}

func (r *propertyTypeRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM property_types WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}
