package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/customers/internal/models"
)

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status    string `json:"status"`
	Customers int    `json:"customers"`
	Error     string `json:"error,omitempty"`
}

// HealthHandler reports the startup state and the number of stored customers.
type HealthHandler struct {
	lifecycle *Lifecycle
	store     models.CustomerStore
	logger    *log.Logger
}

// NewHealthHandler creates a [HealthHandler].
func NewHealthHandler(lifecycle *Lifecycle, store models.CustomerStore, logger *log.Logger) *HealthHandler {
	return &HealthHandler{lifecycle: lifecycle, store: store, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *HealthHandler) Routes() []string {
	return []string{"GET /health"}
}

// ServeHTTP responds 200 while serving and 503 otherwise or when the store cannot be read.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body := HealthStatus{Status: h.lifecycle.State().String()}
	status := http.StatusOK
	if !h.lifecycle.Ready() {
		status = http.StatusServiceUnavailable
	}

	n, err := h.store.Count(r.Context())
	if err != nil {
		h.logger.Warn("health check could not count customers", "error", err)
		body.Error = "storage unavailable"
		status = http.StatusServiceUnavailable
	}
	body.Customers = n

	if err := writeJSON(w, status, body); err != nil {
		h.logger.Warn("failed to write health response", "error", err)
	}
}
