package httpserver

import (
	"encoding/json"
	"net/http"
)

// HealthHandler returns a liveness probe handler reporting the service as
// healthy. Readiness checks are unnecessary here: the service has no
// external dependencies to wait on.
func HealthHandler(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": service,
		})
	}
}
