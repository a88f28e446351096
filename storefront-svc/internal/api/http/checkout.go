package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"overcooked-ordering/domain"
	"overcooked-ordering/storefront-svc/internal/checkout"
)

type checkoutRequest struct {
	RestaurantID string `json:"restaurant_id"`
	checkout.OrderDraft
}

func checkoutStatus(err error) int {
	switch {
	case domain.IsValidationError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrSubmissionFailed):
		return http.StatusBadGateway
	case errors.Is(err, checkout.ErrIllegalTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// checkout submits the session's cart once. A second request for the same
// session gets 409 while the first one is in flight.
func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	session := sessionID(w, r)
	token, err := h.Lock.Acquire(r.Context(), session)
	if err != nil {
		h.logger.Error("failed to acquire checkout lock", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if token == "" {
		writeError(w, http.StatusConflict, errCheckoutInProgress)
		return
	}
	defer func() {
		if err := h.Lock.Release(context.WithoutCancel(r.Context()), session, token); err != nil {
			h.logger.Warn("failed to release checkout lock", zap.Error(err))
		}
	}()

	engine, ok := h.openCart(w, r, session, req.RestaurantID)
	if !ok {
		return
	}

	submission := checkout.NewSubmission(engine, h.Menu, h.Menu, h.logger)
	if err := submission.UpdateDraft(req.OrderDraft); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	order, err := submission.Submit(r.Context())
	if err != nil {
		status := checkoutStatus(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("checkout failed", zap.String("state", submission.State().String()), zap.Error(err))
		}
		writeError(w, status, err)
		return
	}

	h.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("restaurant_id", order.RestaurantID),
		zap.String("total", order.TotalAmount.String()),
	)
	writeJSON(w, http.StatusCreated, order)
}
