package dtos

import (
	"strings"
	"time"

	"github.com/propertyhub/listings-api/internal/models"
)

type PropertyCreateRequest struct {
	SellRent         int       `json:"sell_rent" validate:"required,oneof=1 2"`
	Name             string    `json:"name" validate:"required,min=2,max=100"`
	PropertyTypeID   int       `json:"property_type_id" validate:"required"`
	FurnishingTypeID int       `json:"furnishing_type_id" validate:"required"`
	CityID           int       `json:"city_id" validate:"required"`
	Price            int       `json:"price" validate:"required,gt=0"`
	BHK              int       `json:"bhk" validate:"required,gt=0"`
	BuiltArea        int       `json:"built_area" validate:"required,gt=0"`
	ReadyToMove      bool      `json:"ready_to_move"`
	EstPossessionOn  time.Time `json:"est_possession_on"`
}

func (r *PropertyCreateRequest) Trim() {
	r.Name = strings.TrimSpace(r.Name)
}

type PropertyUpdateRequest struct {
	ID               int       `json:"id" validate:"required"`
	SellRent         int       `json:"sell_rent" validate:"required,oneof=1 2"`
	Name             string    `json:"name" validate:"required,min=2,max=100"`
	PropertyTypeID   int       `json:"property_type_id" validate:"required"`
	FurnishingTypeID int       `json:"furnishing_type_id" validate:"required"`
	CityID           int       `json:"city_id" validate:"required"`
	Price            int       `json:"price" validate:"required,gt=0"`
	BHK              int       `json:"bhk" validate:"required,gt=0"`
	BuiltArea        int       `json:"built_area" validate:"required,gt=0"`
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
}

func (r *PropertyUpdateRequest) Trim() {
	r.Name = strings.TrimSpace(r.Name)
}

type Photo struct {
	PublicID  string `json:"public_id"`
	ImageURL  string `json:"image_url"`
	IsPrimary bool   `json:"is_primary"`
}

// PropertyListItem is the denormalized list view: related entity names are
// embedded, Photo is the primary photo URL or null.
type PropertyListItem struct {
	ID              int       `json:"id"`
	SellRent        int       `json:"sell_rent"`
	Name            string    `json:"name"`
	PropertyType    string    `json:"property_type"`
	FurnishingType  string    `json:"furnishing_type"`
	Price           int       `json:"price"`
	BHK             int       `json:"bhk"`
	BuiltArea       int       `json:"built_area"`
	City            string    `json:"city"`
	Country         string    `json:"country"`
	ReadyToMove     bool      `json:"ready_to_move"`
	EstPossessionOn time.Time `json:"est_possession_on"`
	Photo           *string   `json:"photo"`
}

type PropertyDetail struct {
	ID              int       `json:"id"`
	SellRent        int       `json:"sell_rent"`
	Name            string    `json:"name"`
	PropertyType    string    `json:"property_type"`
	FurnishingType  string    `json:"furnishing_type"`
	City            string    `json:"city"`
	Country         string    `json:"country"`
	Price           int       `json:"price"`
	BHK             int       `json:"bhk"`
	BuiltArea       int       `json:"built_area"`
	CarpetArea      int       `json:"carpet_area"`
	Address         string    `json:"address"`
	Address2        string    `json:"address2"`
	FloorNo         int       `json:"floor_no"`
	TotalFloors     int       `json:"total_floors"`
	ReadyToMove     bool      `json:"ready_to_move"`
	MainEntrance    string    `json:"main_entrance"`
	Security        int       `json:"security"`
	Gated           bool      `json:"gated"`
	Maintenance     int       `json:"maintenance"`
	EstPossessionOn time.Time `json:"est_possession_on"`
	Age             int       `json:"age"`
	Description     string    `json:"description"`
	PostedOn        time.Time `json:"posted_on"`
	LastUpdatedOn   time.Time `json:"last_updated_on"`
	LastUpdatedBy   string    `json:"last_updated_by"`
	Photos          []Photo   `json:"photos"`
}

// PhotoUploadResponse mirrors the media-host result for a freshly attached photo.
type PhotoUploadResponse struct {
	PropertyID int    `json:"property_id"`
	PublicID   string `json:"public_id"`
	ImageURL   string `json:"image_url"`
	IsPrimary  bool   `json:"is_primary"`
}

func NewPropertyListItemFromModel(p *models.Property) PropertyListItem {
	item := PropertyListItem{
		ID:              p.ID,
		SellRent:        p.SellRent,
		Name:            p.Name,
		PropertyType:    p.PropertyTypeName,
		FurnishingType:  p.FurnishingTypeName,
		Price:           p.Price,
		BHK:             p.BHK,
		BuiltArea:       p.BuiltArea,
		City:            p.CityName,
		Country:         p.CityCountry,
		ReadyToMove:     p.ReadyToMove,
		EstPossessionOn: p.EstPossessionOn,
	}
	if primary := p.PrimaryPhoto(); primary != nil {
		item.Photo = &primary.ImageURL
	}
	return item
}

func NewPropertyDetailFromModel(p *models.Property) PropertyDetail {
	photos := make([]Photo, 0, len(p.Photos))
	for _, ph := range p.Photos {
		photos = append(photos, Photo{
			PublicID:  ph.PublicID,
			ImageURL:  ph.ImageURL,
			IsPrimary: ph.IsPrimary,
		})
	}
	return PropertyDetail{
		ID:              p.ID,
		SellRent:        p.SellRent,
		Name:            p.Name,
		PropertyType:    p.PropertyTypeName,
		FurnishingType:  p.FurnishingTypeName,
		City:            p.CityName,
		Country:         p.CityCountry,
		Price:           p.Price,
		BHK:             p.BHK,
		BuiltArea:       p.BuiltArea,
		CarpetArea:      p.CarpetArea,
		Address:         p.Address,
		Address2:        p.Address2,
		FloorNo:         p.FloorNo,
		TotalFloors:     p.TotalFloors,
		ReadyToMove:     p.ReadyToMove,
		MainEntrance:    p.MainEntrance,
		Security:        p.Security,
		Gated:           p.Gated,
		Maintenance:     p.Maintenance,
		EstPossessionOn: p.EstPossessionOn,
		Age:             p.Age,
		Description:     p.Description,
		PostedOn:        p.PostedOn,
		LastUpdatedOn:   p.LastUpdatedOn,
		LastUpdatedBy:   p.LastUpdatedBy,
		Photos:          photos,
	}
}
