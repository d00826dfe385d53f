// Package handlers implements the HTTP endpoints of the API.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/utils"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/validator"
)

// decodeAndValidate decodes the JSON body into dst and runs struct
// validation, writing the error response itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.Validator, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid JSON body"))
		return false
	}
	if verrs := v.Validate(dst); len(verrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Request validation failed", verrs))
		return false
	}
	return true
}

// idParam parses a numeric URL parameter, writing a 400 on failure
func idParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		utils.WriteError(w, errors.BadRequest("Invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}
