package handler

import (
	"context"
	"net/http"

	"github.com/shopforge/storefront-server/internal/logger"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health handles the store-reachability endpoint.
type Health struct {
	db     Pinger
	logger *logger.Logger
}

// NewHealth creates a new Health handler.
func NewHealth(db Pinger, logger *logger.Logger) *Health {
	return &Health{
		db:     db,
		logger: logger,
	}
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		h.logger.Error("Health handler: database unreachable",
			"error", err.Error())
		writeJSON(w, http.StatusOK, healthResponse{Status: "unhealthy", Database: "disconnected"})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Database: "connected"})
}
