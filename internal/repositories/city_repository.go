package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/propertyhub/listings-api/internal/models"
	"github.com/propertyhub/listings-api/internal/utils"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type CityRepository interface {
	Create(ctx context.Context, c *models.City) error
	GetByID(ctx context.Context, id int) (*models.City, error)
	List(ctx context.Context) ([]*models.City, error)

	// NameExists reports whether any city other than excludeID carries a name
	// that folds to the same normalized form. Pass excludeID=0 on create.
	NameExists(ctx context.Context, name string, excludeID int) (bool, error)

	Update(ctx context.Context, c *models.City) error
	Delete(ctx context.Context, id int) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type cityRepo struct {
	db DB
}

func NewCityRepository(db DB) CityRepository {
	return &cityRepo{db: db}
}

func baseSelectCity() string {
	return `
        SELECT c.id, c.name, c.country, c.last_updated_on, c.last_updated_by,
               (SELECT COUNT(*) FROM properties p WHERE p.city_id = c.id) AS properties_count
        FROM cities c`
}

func scanCity(row pgx.Row) (*models.City, error) {
	var c models.City
	err := row.Scan(&c.ID, &c.Name, &c.Country, &c.LastUpdatedOn, &c.LastUpdatedBy, &c.PropertiesCount)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cityRepo) Create(ctx context.Context, c *models.City) error {
	return r.db.QueryRow(ctx, `
        INSERT INTO cities (name, country, last_updated_on, last_updated_by)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, c.Name, c.Country, c.LastUpdatedOn, c.LastUpdatedBy).Scan(&c.ID)
}

func (r *cityRepo) GetByID(ctx context.Context, id int) (*models.City, error) {
	c, err := scanCity(r.db.QueryRow(ctx, baseSelectCity()+" WHERE c.id=$1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

func (r *cityRepo) List(ctx context.Context) ([]*models.City, error) {
	rows, err := r.db.Query(ctx, baseSelectCity()+" ORDER BY c.name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.City
	for rows.Next() {
		c, err := scanCity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *cityRepo) NameExists(ctx context.Context, name string, excludeID int) (bool, error) {
	return nameExists(ctx, r.db, "cities", name, excludeID)
}

func (r *cityRepo) Update(ctx context.Context, c *models.City) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE cities SET
            name=$1, country=$2, last_updated_on=$3, last_updated_by=$4
        WHERE id=$5
    `, c.Name, c.Country, c.LastUpdatedOn, c.LastUpdatedBy, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}

func (r *cityRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cities WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}

// nameExists scans every name in the table and compares normalized forms in
// application code; accent folding has no portable SQL equivalent here.
func nameExists(ctx context.Context, db DB, table, name string, excludeID int) (bool, error) {
	rows, err := db.Query(ctx, `SELECT id, name FROM `+table)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	want := utils.NormalizeName(name)
	for rows.Next() {
		var (
			id int
			n  string
		)
		if err := rows.Scan(&id, &n); err != nil {
			return false, err
		}
		if id == excludeID {
			continue
		}
		if utils.NormalizeName(n) == want {
			return true, nil
		}
	}
	return false, rows.Err()
}
