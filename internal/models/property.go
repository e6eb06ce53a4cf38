package models

import (
	"time"

	"github.com/google/uuid"
)

// SellRent values carried on a listing.
const (
	ForSell = 1
	ForRent = 2
)

type Property struct {
	Audited
	SellRent         int       `json:"sell_rent"`
	Name             string    `json:"name"`
	PropertyTypeID   int       `json:"property_type_id"`
	FurnishingTypeID int       `json:"furnishing_type_id"`
	CityID           int       `json:"city_id"`
	PostedByID       uuid.UUID `json:"posted_by_id"`
	Price            int       `json:"price"`
	BHK              int       `json:"bhk"`
	BuiltArea        int       `json:"built_area"`
	CarpetArea       int       `json:"carpet_area"`
	Address          string    `json:"address"`
	Address2         string    `json:"address2"`
	FloorNo          int       `json:"floor_no"`
	TotalFloors      int       `json:"total_floors"`
	ReadyToMove      bool      `json:"ready_to_move"`
	MainEntrance     string    `json:"main_entrance"`
	Security         int       `json:"security"`
	Gated            bool      `json:"gated"`
	Maintenance      int       `json:"maintenance"`
	EstPossessionOn  time.Time `json:"est_possession_on"`
	Age              int       `json:"age"`
	Description      string    `json:"description"`
	PostedOn         time.Time `json:"posted_on"`

	// Relations, populated by the detail/list loaders.
	PropertyTypeName   string   `json:"property_type_name,omitempty"`
	FurnishingTypeName string   `json:"furnishing_type_name,omitempty"`
	CityName           string   `json:"city_name,omitempty"`
	CityCountry        string   `json:"city_country,omitempty"`
	Photos             []*Photo `json:"photos,omitempty"`
}

// PrimaryPhoto returns the photo flagged as primary, or nil when the property
// has none.
func (p *Property) PrimaryPhoto() *Photo {
	for _, ph := range p.Photos {
		if ph.IsPrimary {
			return ph
		}
	}
	return nil
}

// FindPhoto looks a photo up by its media-host public id.
func (p *Property) FindPhoto(publicID string) *Photo {
	for _, ph := range p.Photos {
		if ph.PublicID == publicID {
			return ph
		}
	}
	return nil
}
