package controllers

import (
	"net/http"

	"github.com/propertyhub/listings-api/internal/dtos"
	"github.com/propertyhub/listings-api/internal/middleware"
	"github.com/propertyhub/listings-api/internal/services"
	"github.com/propertyhub/listings-api/internal/utils"
)

type CityController struct {
	svc services.CityService
}

func NewCityController(svc services.CityService) *CityController {
	return &CityController{svc: svc}
}

// actorID returns the audit identity of the caller, empty when anonymous.
func actorID(r *http.Request) string {
	if claims := middleware.ClaimsFromContext(r.Context()); claims != nil {
		return claims.Username
	}
	return ""
}

// List => GET /api/v1/cities
func (c *CityController) List(w http.ResponseWriter, r *http.Request) {
	cities, err := c.svc.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	out := make([]dtos.City, 0, len(cities))
	for _, city := range cities {
		out = append(out, dtos.NewCityFromModel(city))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GetByID => GET /api/v1/cities/{id}
func (c *CityController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	city, err := c.svc.GetByID(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewCityDetailFromModel(city))
}

// Create => POST /api/v1/cities
func (c *CityController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CityCreateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	city, err := c.svc.Create(r.Context(), &req, actorID(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewCityDetailFromModel(city))
}

// Update => PUT /api/v1/cities/{id}
func (c *CityController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.CityUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if _, err := c.svc.Update(r.Context(), id, &req, actorID(r)); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Patch => PATCH /api/v1/cities/{id}
func (c *CityController) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.CityPatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	city, err := c.svc.Patch(r.Context(), id, &req, actorID(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewCityDetailFromModel(city))
}

// Delete => DELETE /api/v1/cities/{id}
func (c *CityController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.svc.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
