package v1

import (
	"net/http"
	"time"

	"storefront-backend/internal/domain"
	"storefront-backend/pkg/cache"
	"storefront-backend/pkg/utils"
)

const enumsCacheKey = "config:enums"

// ConfigHandler serves the closed enum sets so admin UIs never
// hard-code status strings.
type ConfigHandler struct {
	cache cache.CacheService
}

func NewConfigHandler(memCache cache.CacheService) *ConfigHandler {
	return &ConfigHandler{cache: memCache}
}

func (h *ConfigHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	if v, ok := h.cache.Get(enumsCacheKey); ok {
		utils.WriteJSON(w, http.StatusOK, v)
		return
	}

	enums := map[string]interface{}{
		"orderStatuses":   domain.OrderStatuses,
		"paymentStatuses": domain.PaymentStatuses,
		"paymentTypes":    domain.PaymentTypes,
		"returnStatuses":  domain.ReturnStatuses,
	}
	h.cache.Set(enumsCacheKey, enums, 12*time.Hour)

	utils.WriteJSON(w, http.StatusOK, enums)
}
