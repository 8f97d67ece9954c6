package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/footfallz/validation-server/pkg/binder"
	"github.com/footfallz/validation-server/pkg/logger"
	"github.com/footfallz/validation-server/pkg/tools"
	"github.com/footfallz/validation-server/pkg/validate"
)

type descriptorBody struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Status    string            `json:"status"`
	Tools     []string          `json:"tools"`
	Endpoints map[string]string `json:"endpoints"`
}

func (s *server) descriptor(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, http.StatusOK, descriptorBody{
		Service: s.info.Service,
		Version: s.info.Version,
		Status:  "running",
		Tools:   s.registry.Names(),
		Endpoints: map[string]string{
			"email":  "/validate/email",
			"phone":  "/validate/phone",
			"url":    "/validate/url",
			"regex":  "/validate/regex",
			"tools":  "/tools/{tool}",
			"health": "/health",
		},
	})
}

func (s *server) validateEmail(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := binder.JSON(r, &req); err != nil {
		s.bindError(w, r, err)
		return
	}
	if fields := req.missing(); len(fields) > 0 {
		s.missingFields(w, r, fields)
		return
	}
	s.respond(w, r, http.StatusOK, validate.Email(*req.Email))
}

func (s *server) validatePhone(w http.ResponseWriter, r *http.Request) {
	var req phoneRequest
	if err := binder.JSON(r, &req); err != nil {
		s.bindError(w, r, err)
		return
	}
	if fields := req.missing(); len(fields) > 0 {
		s.missingFields(w, r, fields)
		return
	}
	s.respond(w, r, http.StatusOK, validate.Phone(*req.Phone))
}

func (s *server) validateURL(w http.ResponseWriter, r *http.Request) {
	var req urlRequest
	if err := binder.JSON(r, &req); err != nil {
		s.bindError(w, r, err)
		return
	}
	if fields := req.missing(); len(fields) > 0 {
		s.missingFields(w, r, fields)
		return
	}
	s.respond(w, r, http.StatusOK, validate.URL(*req.URL))
}

func (s *server) validateRegex(w http.ResponseWriter, r *http.Request) {
	var req regexRequest
	if err := binder.JSON(r, &req); err != nil {
		s.bindError(w, r, err)
		return
	}
	if fields := req.missing(); len(fields) > 0 {
		s.missingFields(w, r, fields)
		return
	}
	s.respond(w, r, http.StatusOK, validate.Regex(*req.Text, *req.Pattern, req.Flags))
}

// callTool is the generic dispatch path: the tool name comes from the URL and
// the body is handed to the registry untouched.
func (s *server) callTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "tool")

	var args json.RawMessage
	if err := binder.JSON(r, &args); err != nil {
		s.bindError(w, r, err)
		return
	}

	out, err := s.registry.Call(r.Context(), name, args)
	switch {
	case errors.Is(err, tools.ErrUnknownTool):
		s.respondError(w, r, http.StatusNotFound, "unknown_tool", err.Error())
	case errors.Is(err, tools.ErrInvalidArguments):
		s.respondError(w, r, http.StatusBadRequest, "invalid_arguments", err.Error())
	case err != nil:
		s.log.ErrorContext(r.Context(), "tool call failed", logger.Error(err))
		s.respondError(w, r, http.StatusInternalServerError, "internal_error", "tool call failed")
	default:
		s.respond(w, r, http.StatusOK, out)
	}
}
