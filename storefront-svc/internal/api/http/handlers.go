package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"overcooked-ordering/domain"
	"overcooked-ordering/storefront-svc/internal/cart"
	"overcooked-ordering/storefront-svc/internal/checkout"
	"overcooked-ordering/storefront-svc/internal/menuclient"
)

const sessionCookie = "cart_session"

type Menu interface {
	checkout.OrderCreator
	checkout.SettingsSource
	GetDish(ctx context.Context, restaurantID, dishID string) (domain.CatalogItem, error)
	Catalog(ctx context.Context, restaurantID string) (menuclient.Catalog, error)
}

// Locker serializes checkouts of one session. Acquire returns an empty token
// when another checkout holds the lock.
type Locker interface {
	Acquire(ctx context.Context, sessionID string) (string, error)
	Release(ctx context.Context, sessionID, token string) error
}

var (
	errItemUnavailable    = errors.New("item is not available")
	errCheckoutInProgress = errors.New("a checkout is already in progress")
)

type Handler struct {
	Carts  cart.Store
	Lock   Locker
	Menu   Menu
	logger *zap.Logger
}

func NewHandler(carts cart.Store, lock Locker, menu Menu, logger *zap.Logger) *Handler {
	return &Handler{
		Carts:  carts,
		Lock:   lock,
		Menu:   menu,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu/{restaurantId}", h.getMenu).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{itemId}", h.updateItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/{itemId}", h.removeItem).Methods("DELETE")

	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// sessionID reads the cart session cookie and issues a new one when missing.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func restaurantOrDefault(id string) string {
	if id == "" {
		return domain.DefaultRestaurantID
	}
	return id
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func kindOf(err error) string {
	switch {
	case errors.Is(err, errItemUnavailable):
		return "item_unavailable"
	case errors.Is(err, errCheckoutInProgress):
		return "checkout_in_progress"
	}
	return domain.KindOf(err)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: kindOf(err)})
}
