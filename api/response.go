package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/footfallz/validation-server/pkg/binder"
	"github.com/footfallz/validation-server/pkg/logger"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

func (s *server) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.ErrorContext(r.Context(), "failed to encode response", logger.Error(err))
	}
}

func (s *server) respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	s.respond(w, r, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// bindError maps binder sentinels onto client error responses.
func (s *server) bindError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		s.respondError(w, r, http.StatusUnsupportedMediaType, "unsupported_media_type", err.Error())
	default:
		s.respondError(w, r, http.StatusBadRequest, "invalid_request_body", err.Error())
	}
}

func (s *server) missingFields(w http.ResponseWriter, r *http.Request, fields []string) {
	details := make(map[string][]string, len(fields))
	for _, f := range fields {
		details[f] = []string{"field is required"}
	}
	s.respond(w, r, http.StatusUnprocessableEntity, errorBody{Error: errorDetail{
		Code:    "validation_error",
		Message: "Missing required fields",
		Fields:  details,
	}})
}
