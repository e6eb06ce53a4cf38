package dtos

import (
	"strings"
	"time"

	"github.com/propertyhub/listings-api/internal/models"
)

// Shared shapes for PropertyType and FurnishingType endpoints.

type NamedTypeCreateRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

type NamedTypeUpdateRequest struct {
	ID   int    `json:"id" validate:"required"`
	Name string `json:"name" validate:"required,min=2,max=50"`
}

type NamedTypePatchRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=50"`
}

func (r *NamedTypeCreateRequest) Trim() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r *NamedTypeUpdateRequest) Trim() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r *NamedTypePatchRequest) Trim() {
	trimPtr(r.Name)
}

type NamedType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type NamedTypeDetail struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	LastUpdatedOn   time.Time `json:"last_updated_on"`
	LastUpdatedBy   string    `json:"last_updated_by"`
	PropertiesCount int       `json:"properties_count"`
}

func NewPropertyTypeFromModel(t *models.PropertyType) NamedType {
	return NamedType{ID: t.ID, Name: t.Name}
}

func NewPropertyTypeDetailFromModel(t *models.PropertyType) NamedTypeDetail {
	return NamedTypeDetail{
		ID:              t.ID,
		Name:            t.Name,
		LastUpdatedOn:   t.LastUpdatedOn,
		LastUpdatedBy:   t.LastUpdatedBy,
		PropertiesCount: t.PropertiesCount,
	}
}

func NewFurnishingTypeFromModel(t *models.FurnishingType) NamedType {
	return NamedType{ID: t.ID, Name: t.Name}
}

func NewFurnishingTypeDetailFromModel(t *models.FurnishingType) NamedTypeDetail {
	return NamedTypeDetail{
		ID:              t.ID,
		Name:            t.Name,
		LastUpdatedOn:   t.LastUpdatedOn,
		LastUpdatedBy:   t.LastUpdatedBy,
		PropertiesCount: t.PropertiesCount,
	}
}
