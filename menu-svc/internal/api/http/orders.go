package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"overcooked-ordering/domain"
	"overcooked-ordering/menu-svc/internal/service"
)

func orderStatus(err error) int {
	switch {
	case domain.IsValidationError(err), errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrInvalidOrder), errors.Is(err, service.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrIllegalStatusChange):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) orderError(w http.ResponseWriter, err error) {
	status := orderStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("order request failed", zap.Error(err))
	}
	writeError(w, status, err)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	order, err := h.Orders.Create(r.Context(), req)
	if err != nil {
		h.orderError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.orderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	orders, err := h.Orders.List(r.Context(), domain.OrderFilter{
		RestaurantID: query.Get("restaurantId"),
		Status:       domain.OrderStatus(query.Get("status")),
	})
	if err != nil {
		h.orderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

type statusChange struct {
	Status domain.OrderStatus `json:"status"`
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var body statusChange
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	order, err := h.Orders.UpdateStatus(r.Context(), mux.Vars(r)["id"], body.Status)
	if err != nil {
		h.orderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Orders.GetQRCode(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.orderError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}
