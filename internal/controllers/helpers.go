package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/propertyhub/listings-api/internal/utils"
)

var validate = validator.New()

// trimmable is implemented by request DTOs whose string fields must be
// trimmed before the length/required checks run, so padded input cannot
// satisfy a bound its trimmed form would fail.
type trimmable interface {
	Trim()
}

// decodeAndValidate parses the JSON body into dst, trims it, and runs struct
// validation. It writes the error response itself and reports whether the
// caller should continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return false
	}
	if t, ok := dst.(trimmable); ok {
		t.Trim()
	}
	if err := validate.Struct(dst); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusUnprocessableEntity, utils.ErrCodeValidation, "Validation failed", validationDetails(err), err,
		)
		return false
	}
	return true
}

// validationDetails flattens validator errors into field->tag pairs for the
// response body.
func validationDetails(err error) map[string]string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil
	}
	out := make(map[string]string, len(vErrs))
	for _, fe := range vErrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

// pathID reads the numeric {name} route variable. Writes a 400 and reports
// false when the segment is not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid "+name+" in path", nil, err,
		)
		return 0, false
	}
	return id, true
}
