package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/hlog"

	"github.com/breno-augst/family-relationship-api/services"
)

const (
	CodeBadRequest = "bad_request"
	CodeValidation = "validation_error"
	CodeConflict   = "conflict"
	CodeNotFound   = "not_found"
	CodeInternal   = "internal_error"
)

// APIErrorDetail represents a single error in the standardized error response.
type APIErrorDetail struct {
	Code   string `json:"code"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// APIErrorResponse represents the standardized error response body.
type APIErrorResponse struct {
	Errors []APIErrorDetail `json:"errors"`
}

// WriteAPIError writes a standardized error response with the given HTTP status, code, and detail.
func WriteAPIError(w http.ResponseWriter, httpStatus int, code string, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	resp := APIErrorResponse{
		Errors: []APIErrorDetail{
			{
				Code:   code,
				Status: strconv.Itoa(httpStatus),
				Detail: detail,
			},
		},
	}

	_ = json.NewEncoder(w).Encode(resp)
}

// writeServiceError maps the business error taxonomy onto HTTP statuses.
// Unclassified errors are logged and answered with a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	kind, ok := services.KindOf(err)
	if !ok {
		hlog.FromRequest(r).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		WriteAPIError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
		return
	}

	switch kind {
	case services.KindValidation:
		WriteAPIError(w, http.StatusBadRequest, CodeValidation, err.Error())
	case services.KindNotFound:
		WriteAPIError(w, http.StatusNotFound, CodeNotFound, err.Error())
	case services.KindConflict:
		WriteAPIError(w, http.StatusConflict, CodeConflict, err.Error())
	default:
		WriteAPIError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("error encoding JSON response")
		}
	}
}

// decodeBody decodes the JSON request body into dst, answering 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}
