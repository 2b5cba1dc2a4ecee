package v1

import (
	"net/http"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/usecase"
	"storefront-backend/pkg/utils"
)

type AdminOrderHandler struct {
	orderUC  *usecase.OrderUsecase
	returnUC *usecase.ReturnUsecase
}

func NewAdminOrderHandler(orderUC *usecase.OrderUsecase, returnUC *usecase.ReturnUsecase) *AdminOrderHandler {
	return &AdminOrderHandler{orderUC: orderUC, returnUC: returnUC}
}

func (h *AdminOrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	filter := domain.OrderFilter{
		Page:          utils.ParseInt(r.URL.Query().Get("page"), 1),
		Limit:         utils.ParseInt(r.URL.Query().Get("limit"), 20),
		Status:        r.URL.Query().Get("status"),
		PaymentStatus: r.URL.Query().Get("payment_status"),
		ReturnStatus:  r.URL.Query().Get("return_status"),
		Search:        r.URL.Query().Get("search"),
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	orders, total, err := h.orderUC.GetAllOrders(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
		"pagination": domain.Pagination{
			Page:       filter.Page,
			Limit:      filter.Limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	})
}

func (h *AdminOrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Order ID required")
		return
	}

	order, err := h.orderUC.GetOrder(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, order)
}

type updateStatusReq struct {
	Status domain.OrderStatus `json:"status"`
}

func (h *AdminOrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Order ID required")
		return
	}

	user, ok := userFromContext(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req updateStatusReq
	if err := utils.ReadJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderUC.UpdateStatus(r.Context(), id, req.Status, user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, order)
}

func (h *AdminOrderHandler) AssignDelivery(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Order ID required")
		return
	}

	var req usecase.AssignDeliveryReq
	if err := utils.ReadJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderUC.AssignDelivery(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, order)
}

type verifyPaymentReq struct {
	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
}

func (h *AdminOrderHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Order ID required")
		return
	}

	user, ok := userFromContext(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req verifyPaymentReq
	if err := utils.ReadJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderUC.VerifyPayment(r.Context(), id, req.PaymentStatus, user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, order)
}

type updateReturnStatusReq struct {
	ReturnStatus domain.ReturnStatus `json:"returnStatus"`
}

func (h *AdminOrderHandler) UpdateReturnStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Order ID required")
		return
	}

	user, ok := userFromContext(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req updateReturnStatusReq
	if err := utils.ReadJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.returnUC.UpdateReturnStatus(r.Context(), id, req.ReturnStatus, user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, order)
}
