package v1

import (
	"errors"
	"net/http"

	"storefront-backend/internal/domain"
	"storefront-backend/pkg/logger"
	"storefront-backend/pkg/utils"
)

// respondError maps the domain error taxonomy onto HTTP status codes.
// Anything outside the taxonomy is an infrastructure failure and stays
// opaque to the caller.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		utils.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrInvalidState):
		utils.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrPolicyViolation):
		utils.WriteError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrConflict):
		utils.WriteError(w, http.StatusConflict, err.Error())
	default:
		logger.Get().Error().Err(err).Msg("Internal error")
		utils.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

func userFromContext(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(domain.UserContextKey).(*domain.User)
	return user, ok && user != nil
}
