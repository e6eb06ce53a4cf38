package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/propertyhub/listings-api/internal/dtos"
	"github.com/propertyhub/listings-api/internal/middleware"
	"github.com/propertyhub/listings-api/internal/services"
	"github.com/propertyhub/listings-api/internal/utils"
)

// maxPhotoUploadBytes caps the multipart body for photo uploads.
const maxPhotoUploadBytes = 10 << 20

type PropertyController struct {
	svc services.PropertyService
}

func NewPropertyController(svc services.PropertyService) *PropertyController {
	return &PropertyController{svc: svc}
}

// List => GET /api/v1/properties/list/{sellRent}
func (c *PropertyController) List(w http.ResponseWriter, r *http.Request) {
	sellRent, ok := pathID(w, r, "sellRent")
	if !ok {
		return
	}
	props, err := c.svc.ListBySellRent(r.Context(), sellRent)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	out := make([]dtos.PropertyListItem, 0, len(props))
	for _, p := range props {
		out = append(out, dtos.NewPropertyListItemFromModel(p))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// Detail => GET /api/v1/properties/detail/{id}
func (c *PropertyController) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	p, err := c.svc.GetDetail(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewPropertyDetailFromModel(p))
}

// Create => POST /api/v1/properties
func (c *PropertyController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.PropertyCreateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	p, err := c.svc.Create(r.Context(), &req, middleware.ClaimsFromContext(r.Context()))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewPropertyDetailFromModel(p))
}

// Update => PUT /api/v1/properties/{id}
func (c *PropertyController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.PropertyUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	p, err := c.svc.Update(r.Context(), id, &req, middleware.ClaimsFromContext(r.Context()))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewPropertyDetailFromModel(p))
}

// Delete => DELETE /api/v1/properties/{id}
func (c *PropertyController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.svc.Delete(r.Context(), id, middleware.ClaimsFromContext(r.Context())); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddPhoto => POST /api/v1/properties/{id}/photos
// Expects a multipart form with a single "file" part.
func (c *PropertyController) AddPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoUploadBytes)
	if err := r.ParseMultipartForm(maxPhotoUploadBytes); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid multipart payload", nil, err,
		)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Missing file part", nil, err,
		)
		return
	}
	defer file.Close()

	upload := &services.PhotoUpload{
		Reader:      file,
		Size:        header.Size,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}
	ph, err := c.svc.AddPhoto(r.Context(), id, upload, middleware.ClaimsFromContext(r.Context()))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.PhotoUploadResponse{
		PropertyID: ph.PropertyID,
		PublicID:   ph.PublicID,
		ImageURL:   ph.ImageURL,
		IsPrimary:  ph.IsPrimary,
	})
}

// SetPrimaryPhoto => PUT /api/v1/properties/{id}/photos/{publicId}/primary
func (c *PropertyController) SetPrimaryPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	publicID := mux.Vars(r)["publicId"]
	if err := c.svc.SetPrimaryPhoto(r.Context(), id, publicID, middleware.ClaimsFromContext(r.Context())); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Primary photo updated"})
}

// DeletePhoto => DELETE /api/v1/properties/{id}/photos/{publicId}
func (c *PropertyController) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	publicID := mux.Vars(r)["publicId"]
	if err := c.svc.DeletePhoto(r.Context(), id, publicID, middleware.ClaimsFromContext(r.Context())); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
