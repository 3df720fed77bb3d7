package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-vacancies/internal/logger"
	"github.com/sbilibin2017/gw-vacancies/internal/middlewares"
	"github.com/sbilibin2017/gw-vacancies/internal/models"
	"github.com/sbilibin2017/gw-vacancies/internal/services"
)

const (
	msgExtraField    = "extra fields not permitted"
	msgInvalidJSON   = "Invalid JSON body."
	msgInternalError = "Internal server error."
)

var errInvalidID = errors.New("invalid id")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

// writeError maps service errors onto HTTP responses
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr     *services.ValidationError
		tokenErr *services.TokenError
	)

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, verr.Fields)
	case errors.As(err, &tokenErr):
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Reason: tokenErr.Reason})
	case errors.Is(err, services.ErrNotFound), errors.Is(err, errInvalidID):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, services.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Reason: services.ReasonBadCredentials})
	default:
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"method", r.Method,
			"uri", r.RequestURI,
			"err", err,
		)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Reason: msgInternalError})
	}
}

// decodeJSON decodes a request body rejecting unknown fields
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return services.NewValidationError(typeErr.Field, fmt.Sprintf("value is not a valid %s", strings.TrimPrefix(typeErr.Type.String(), "*")))
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return services.NewValidationError(field, msgExtraField)
	default:
		return services.NewValidationError(services.RootField, msgInvalidJSON)
	}
}

// vacancyID reads the {id} route parameter
func vacancyID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}
