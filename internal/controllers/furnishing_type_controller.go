package controllers

import (
	"net/http"

	"github.com/propertyhub/listings-api/internal/dtos"
	"github.com/propertyhub/listings-api/internal/services"
	"github.com/propertyhub/listings-api/internal/utils"
)

type FurnishingTypeController struct {
	svc services.FurnishingTypeService
}

func NewFurnishingTypeController(svc services.FurnishingTypeService) *FurnishingTypeController {
	return &FurnishingTypeController{svc: svc}
}

// List => GET /api/v1/furnishing-types
func (c *FurnishingTypeController) List(w http.ResponseWriter, r *http.Request) {
	types, err := c.svc.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	out := make([]dtos.NamedType, 0, len(types))
	for _, t := range types {
		out = append(out, dtos.NewFurnishingTypeFromModel(t))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GetByID => GET /api/v1/furnishing-types/{id}
func (c *FurnishingTypeController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	t, err := c.svc.GetByID(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewFurnishingTypeDetailFromModel(t))
}

// Create => POST /api/v1/furnishing-types
func (c *FurnishingTypeController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.NamedTypeCreateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	t, err := c.svc.Create(r.Context(), &req, actorID(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewFurnishingTypeDetailFromModel(t))
}

// Update => PUT /api/v1/furnishing-types/{id}
func (c *FurnishingTypeController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.NamedTypeUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if _, err := c.svc.Update(r.Context(), id, &req, actorID(r)); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Patch => PATCH /api/v1/furnishing-types/{id}
func (c *FurnishingTypeController) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.NamedTypePatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	t, err := c.svc.Patch(r.Context(), id, &req, actorID(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewFurnishingTypeDetailFromModel(t))
}

// Delete => DELETE /api/v1/furnishing-types/{id}
func (c *FurnishingTypeController) Delete(w http.ResponseWriter, r *http.Request) {
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
