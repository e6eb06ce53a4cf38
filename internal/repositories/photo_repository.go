package repositories

import (
	"context"

	"github.com/propertyhub/listings-api/internal/models"
	"github.com/propertyhub/listings-api/internal/utils"
)

type PhotoRepository interface {
	Add(ctx context.Context, ph *models.Photo) error

	// SetPrimary demotes the property's current primary photo and promotes the
	// target in a single transaction.
	SetPrimary(ctx context.Context, propertyID int, publicID, actorID string) error

	Delete(ctx context.Context, photoID int) error
}

type photoRepo struct {
	db DB
}

func NewPhotoRepository(db DB) PhotoRepository {
	return &photoRepo{db: db}
}

func (r *photoRepo) Add(ctx context.Context, ph *models.Photo) error {
	return r.db.QueryRow(ctx, `
        INSERT INTO photos (property_id, public_id, image_url, is_primary, last_updated_on, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `, ph.PropertyID, ph.PublicID, ph.ImageURL, ph.IsPrimary, ph.LastUpdatedOn, ph.LastUpdatedBy).Scan(&ph.ID)
}

func (r *photoRepo) SetPrimary(ctx context.Context, propertyID int, publicID, actorID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
        UPDATE photos SET is_primary=false, last_updated_on=NOW(), last_updated_by=$2
        WHERE property_id=$1 AND is_primary
    `, propertyID, actorID); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
        UPDATE photos SET is_primary=true, last_updated_on=NOW(), last_updated_by=$3
        WHERE property_id=$1 AND public_id=$2
    `, propertyID, publicID, actorID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}

	return tx.Commit(ctx)
}

func (r *photoRepo) Delete(ctx context.Context, photoID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM photos WHERE id=$1`, photoID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}
