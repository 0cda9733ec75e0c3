package handler

import (
	"errors"
	"net/http"

	"github.com/shopforge/storefront-server/internal/logger"
	"github.com/shopforge/storefront-server/internal/model"
)

const kindMalformed = "malformed_request"

// handleError translates service errors into HTTP status codes and error
// kinds. Unclassified errors are logged in full and returned as an opaque 500.
func handleError(w http.ResponseWriter, l *logger.Logger, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, model.ErrDuplicateEmail):
		writeError(w, http.StatusBadRequest, "duplicate_email", err.Error())
	case errors.Is(err, model.ErrUnknownCategory):
		writeError(w, http.StatusBadRequest, "unknown_category", err.Error())
	case errors.Is(err, model.ErrCategoryInUse):
		writeError(w, http.StatusBadRequest, "category_in_use", err.Error())
	case errors.Is(err, model.ErrSelfParent):
		writeError(w, http.StatusBadRequest, "self_parent", err.Error())
	case errors.Is(err, model.ErrEmptyUpdate):
		writeError(w, http.StatusBadRequest, "empty_update", err.Error())
	default:
		l.Error("handler: request failed",
			"error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}
