package v1

import (
	"net/http"

	"storefront-backend/internal/usecase"
	"storefront-backend/pkg/utils"
)

type PolicyHandler struct {
	returnUC *usecase.ReturnUsecase
}

func NewPolicyHandler(returnUC *usecase.ReturnUsecase) *PolicyHandler {
	return &PolicyHandler{returnUC: returnUC}
}

// GetPolicy is public: storefronts show the return window on product
// pages. Always read from storage so admins see their write take
// effect immediately.
func (h *PolicyHandler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	policy, err := h.returnUC.GetPolicy(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, policy)
}

type setPolicyReq struct {
	ReturnDays int `json:"returnDays"`
}

func (h *PolicyHandler) SetPolicy(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req setPolicyReq
	if err := utils.ReadJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.returnUC.SetPolicy(r.Context(), req.ReturnDays, user.ID); err != nil {
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"message": "Return policy updated", "returnDays": req.ReturnDays})
}
