package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"overcooked-ordering/domain"
	"overcooked-ordering/storefront-svc/internal/cart"
	"overcooked-ordering/storefront-svc/internal/menuclient"
)

type cartView struct {
	RestaurantID string            `json:"restaurant_id"`
	Lines        []domain.LineItem `json:"lines"`
	ItemCount    int               `json:"item_count"`
	Subtotal     decimal.Decimal   `json:"subtotal"`
}

func viewOf(engine *cart.Engine) cartView {
	lines := engine.Lines()
	if lines == nil {
		lines = []domain.LineItem{}
	}
	return cartView{
		RestaurantID: engine.RestaurantID(),
		Lines:        lines,
		ItemCount:    engine.ItemCount(),
		Subtotal:     engine.Subtotal(),
	}
}

func (h *Handler) openCart(w http.ResponseWriter, r *http.Request, session, restaurantID string) (*cart.Engine, bool) {
	engine, err := cart.Open(r.Context(), h.Carts, session, restaurantOrDefault(restaurantID))
	if err != nil {
		h.logger.Error("failed to open cart", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err)
		return nil, false
	}
	return engine, true
}

func (h *Handler) cartError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidQuantity) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	h.logger.Error("cart update failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, err)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.openCart(w, r, sessionID(w, r), r.URL.Query().Get("restaurantId"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, viewOf(engine))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.openCart(w, r, sessionID(w, r), r.URL.Query().Get("restaurantId"))
	if !ok {
		return
	}
	if err := engine.Clear(r.Context()); err != nil {
		h.cartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(engine))
}

type addItemRequest struct {
	RestaurantID string `json:"restaurant_id"`
	ItemID       string `json:"item_id"`
	Quantity     *int   `json:"quantity,omitempty"`
}

// addItem refetches the dish so the line captures the current price.
func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.ItemID == "" {
		writeError(w, http.StatusBadRequest, errors.New("item_id is required"))
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity < 1 {
		writeError(w, http.StatusBadRequest, domain.ErrInvalidQuantity)
		return
	}
	restaurantID := restaurantOrDefault(req.RestaurantID)

	dish, err := h.Menu.GetDish(r.Context(), restaurantID, req.ItemID)
	switch {
	case errors.Is(err, menuclient.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
		return
	case err != nil:
		h.logger.Error("failed to fetch dish", zap.String("item_id", req.ItemID), zap.Error(err))
		writeError(w, http.StatusBadGateway, err)
		return
	}
	if !dish.Orderable() {
		writeError(w, http.StatusConflict, fmt.Errorf("%w: %s", errItemUnavailable, req.ItemID))
		return
	}

	engine, ok := h.openCart(w, r, sessionID(w, r), restaurantID)
	if !ok {
		return
	}
	if err := engine.AddItem(r.Context(), dish, quantity); err != nil {
		h.cartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(engine))
}

type updateItemRequest struct {
	RestaurantID string `json:"restaurant_id"`
	Quantity     int    `json:"quantity"`
}

// updateItem sets the quantity. Zero or less removes the line.
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	engine, ok := h.openCart(w, r, sessionID(w, r), req.RestaurantID)
	if !ok {
		return
	}
	if err := engine.UpdateQuantity(r.Context(), mux.Vars(r)["itemId"], req.Quantity); err != nil {
		h.cartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(engine))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.openCart(w, r, sessionID(w, r), r.URL.Query().Get("restaurantId"))
	if !ok {
		return
	}
	if err := engine.RemoveItem(r.Context(), mux.Vars(r)["itemId"]); err != nil {
		h.cartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(engine))
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]
	catalog, err := h.Menu.Catalog(r.Context(), restaurantID)
	if err != nil {
		h.logger.Error("failed to fetch menu", zap.String("restaurant_id", restaurantID), zap.Error(err))
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, catalog)
}
