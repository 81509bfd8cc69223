package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/customers/internal/models"
)

// CustomersHandler serves the full customer collection as JSON.
type CustomersHandler struct {
	store  models.CustomerStore
	logger *log.Logger
}

// NewCustomersHandler creates a [CustomersHandler] reading from store.
func NewCustomersHandler(store models.CustomerStore, logger *log.Logger) *CustomersHandler {
	return &CustomersHandler{store: store, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *CustomersHandler) Routes() []string {
	return []string{"GET /customers"}
}

// ServeHTTP lists every customer. A store failure yields 500 and no partial result.
func (h *CustomersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	customers, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list customers", "error", err, "request_id", RequestIDFrom(r.Context()))
		writeError(w, http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, customers); err != nil {
		h.logger.Warn("failed to write customers response", "error", err)
	}
}
