package v1

import (
	"net/http"

	"storefront-backend/internal/usecase"
	"storefront-backend/pkg/utils"
)

type OrderHandler struct {
	orderUC  *usecase.OrderUsecase
	returnUC *usecase.ReturnUsecase
}

func NewOrderHandler(orderUC *usecase.OrderUsecase, returnUC *usecase.ReturnUsecase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC, returnUC: returnUC}
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req usecase.CreateOrderReq
	if err := utils.ReadJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	orderID, err := h.orderUC.CreateOrder(r.Context(), user.ID, req)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]string{"orderId": orderID})
}

func (h *OrderHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := h.orderUC.GetMyOrders(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, orders)
}

type requestReturnReq struct {
	Reason string `json:"reason"`
}

func (h *OrderHandler) RequestReturn(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orderID := r.PathValue("id")
	if orderID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Order ID required")
		return
	}

	var req requestReturnReq
	if err := utils.ReadJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.returnUC.RequestReturn(r.Context(), orderID, user.ID, req.Reason)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, order)
}
