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

type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error

	GetByID(ctx context.Context, id int) (*models.Property, error)

	// GetDetail loads the property with its relation names and photo
	// collection populated, so response mapping never touches an unloaded
	// relation.
	GetDetail(ctx context.Context, id int) (*models.Property, error)

	// ListBySellRent loads the denormalized list view: relation names plus
	// the primary photo when one exists.
	ListBySellRent(ctx context.Context, sellRent int) ([]*models.Property, error)

	Update(ctx context.Context, p *models.Property) error
	Delete(ctx context.Context, id int) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	db DB
}

func NewPropertyRepository(db DB) PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	return r.db.QueryRow(ctx, `
        INSERT INTO properties (
            sell_rent, name, property_type_id, furnishing_type_id, city_id, posted_by_id,
            price, bhk, built_area, carpet_area, address, address2, floor_no, total_floors,
            ready_to_move, main_entrance, security, gated, maintenance, est_possession_on,
            age, description, posted_on, last_updated_on, last_updated_by
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25)
        RETURNING id
    `,
		p.SellRent, p.Name, p.PropertyTypeID, p.FurnishingTypeID, p.CityID, p.PostedByID,
		p.Price, p.BHK, p.BuiltArea, p.CarpetArea, p.Address, p.Address2, p.FloorNo, p.TotalFloors,
		p.ReadyToMove, p.MainEntrance, p.Security, p.Gated, p.Maintenance, p.EstPossessionOn,
		p.Age, p.Description, p.PostedOn, p.LastUpdatedOn, p.LastUpdatedBy,
	).Scan(&p.ID)
}

func basePropertyColumns() string {
	return `
        p.id, p.sell_rent, p.name, p.property_type_id, p.furnishing_type_id, p.city_id,
        p.posted_by_id, p.price, p.bhk, p.built_area, p.carpet_area, p.address, p.address2,
        p.floor_no, p.total_floors, p.ready_to_move, p.main_entrance, p.security, p.gated,
        p.maintenance, p.est_possession_on, p.age, p.description, p.posted_on,
        p.last_updated_on, p.last_updated_by`
}

func scanProperty(row pgx.Row, extras ...interface{}) (*models.Property, error) {
	var p models.Property
	dest := []interface{}{
		&p.ID, &p.SellRent, &p.Name, &p.PropertyTypeID, &p.FurnishingTypeID, &p.CityID,
		&p.PostedByID, &p.Price, &p.BHK, &p.BuiltArea, &p.CarpetArea, &p.Address, &p.Address2,
		&p.FloorNo, &p.TotalFloors, &p.ReadyToMove, &p.MainEntrance, &p.Security, &p.Gated,
		&p.Maintenance, &p.EstPossessionOn, &p.Age, &p.Description, &p.PostedOn,
		&p.LastUpdatedOn, &p.LastUpdatedBy,
	}
	dest = append(dest, extras...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *propertyRepo) GetByID(ctx context.Context, id int) (*models.Property, error) {
	row := r.db.QueryRow(ctx, `SELECT`+basePropertyColumns()+` FROM properties p WHERE p.id=$1`, id)
	p, err := scanProperty(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (r *propertyRepo) GetDetail(ctx context.Context, id int) (*models.Property, error) {
	row := r.db.QueryRow(ctx, `
        SELECT`+basePropertyColumns()+`, pt.name, ft.name, c.name, c.country
        FROM properties p
        JOIN property_types pt ON pt.id = p.property_type_id
        JOIN furnishing_types ft ON ft.id = p.furnishing_type_id
        JOIN cities c ON c.id = p.city_id
        WHERE p.id=$1
    `, id)

	var p *models.Property
	var typeName, furnName, cityName, cityCountry string
	p, err := scanProperty(row, &typeName, &furnName, &cityName, &cityCountry)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.PropertyTypeName = typeName
	p.FurnishingTypeName = furnName
	p.CityName = cityName
	p.CityCountry = cityCountry

	photos, err := r.listPhotos(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Photos = photos
	return p, nil
}

func (r *propertyRepo) listPhotos(ctx context.Context, propertyID int) ([]*models.Photo, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, property_id, public_id, image_url, is_primary, last_updated_on, last_updated_by
        FROM photos
        WHERE property_id=$1
        ORDER BY id
    `, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Photo
	for rows.Next() {
		var ph models.Photo
		if err := rows.Scan(&ph.ID, &ph.PropertyID, &ph.PublicID, &ph.ImageURL,
			&ph.IsPrimary, &ph.LastUpdatedOn, &ph.LastUpdatedBy); err != nil {
			return nil, err
		}
		out = append(out, &ph)
	}
	return out, rows.Err()
}

func (r *propertyRepo) ListBySellRent(ctx context.Context, sellRent int) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx, `
        SELECT`+basePropertyColumns()+`, pt.name, ft.name, c.name, c.country, ph.public_id, ph.image_url
        FROM properties p
        JOIN property_types pt ON pt.id = p.property_type_id
        JOIN furnishing_types ft ON ft.id = p.furnishing_type_id
        JOIN cities c ON c.id = p.city_id
        LEFT JOIN photos ph ON ph.property_id = p.id AND ph.is_primary
        WHERE p.sell_rent=$1
        ORDER BY p.posted_on DESC
    `, sellRent)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Property
	for rows.Next() {
		var (
			typeName, furnName, cityName, cityCountry string
			photoPublicID, photoURL                   *string
		)
		p, err := scanProperty(rows, &typeName, &furnName, &cityName, &cityCountry, &photoPublicID, &photoURL)
		if err != nil {
			return nil, err
		}
		p.PropertyTypeName = typeName
		p.FurnishingTypeName = furnName
		p.CityName = cityName
		p.CityCountry = cityCountry
		if photoURL != nil {
			p.Photos = []*models.Photo{{
				PropertyID: p.ID,
				PublicID:   *photoPublicID,
				ImageURL:   *photoURL,
				IsPrimary:  true,
			}}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *propertyRepo) Update(ctx context.Context, p *models.Property) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE properties SET
            sell_rent=$1, name=$2, property_type_id=$3, furnishing_type_id=$4, city_id=$5,
            price=$6, bhk=$7, built_area=$8, carpet_area=$9, address=$10, address2=$11,
            floor_no=$12, total_floors=$13, ready_to_move=$14, main_entrance=$15, security=$16,
            gated=$17, maintenance=$18, est_possession_on=$19, age=$20, description=$21,
            last_updated_on=$22, last_updated_by=$23
        WHERE id=$24
    `,
		p.SellRent, p.Name, p.PropertyTypeID, p.FurnishingTypeID, p.CityID,
		p.Price, p.BHK, p.BuiltArea, p.CarpetArea, p.Address, p.Address2,
		p.FloorNo, p.TotalFloors, p.ReadyToMove, p.MainEntrance, p.Security,
		p.Gated, p.Maintenance, p.EstPossessionOn, p.Age, p.Description,
		p.LastUpdatedOn, p.LastUpdatedBy, p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}

// Delete removes the property row; the photos FK cascades.
func (r *propertyRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM properties WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}
