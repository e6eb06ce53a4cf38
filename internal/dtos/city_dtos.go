package dtos

import (
	"strings"
	"time"

	"github.com/propertyhub/listings-api/internal/models"
)

type CityCreateRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=50"`
	Country string `json:"country" validate:"required,min=2,max=50"`
}

type CityUpdateRequest struct {
	ID      int    `json:"id" validate:"required"`
	Name    string `json:"name" validate:"required,min=2,max=50"`
	Country string `json:"country" validate:"required,min=2,max=50"`
}

// CityPatchRequest applies only the fields present in the payload.
type CityPatchRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=50"`
	Country *string `json:"country" validate:"omitempty,min=2,max=50"`
}

func (r *CityCreateRequest) Trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Country = strings.TrimSpace(r.Country)
}

func (r *CityUpdateRequest) Trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Country = strings.TrimSpace(r.Country)
}

func (r *CityPatchRequest) Trim() {
	trimPtr(r.Name)
	trimPtr(r.Country)
}

func trimPtr(p *string) {
	if p != nil {
		*p = strings.TrimSpace(*p)
	}
}

type City struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type CityDetail struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Country         string    `json:"country"`
	LastUpdatedOn   time.Time `json:"last_updated_on"`
	LastUpdatedBy   string    `json:"last_updated_by"`
	PropertiesCount int       `json:"properties_count"`
}

func NewCityFromModel(c *models.City) City {
	return City{
		ID:      c.ID,
		Name:    c.Name,
		Country: c.Country,
	}
}

func NewCityDetailFromModel(c *models.City) CityDetail {
	return CityDetail{
		ID:              c.ID,
		Name:            c.Name,
		Country:         c.Country,
		LastUpdatedOn:   c.LastUpdatedOn,
		LastUpdatedBy:   c.LastUpdatedBy,
		PropertiesCount: c.PropertiesCount,
	}
}
