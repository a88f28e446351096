package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"overcooked-ordering/domain"
	"overcooked-ordering/menu-svc/internal/service"
)

type Handler struct {
	Catalog  service.CatalogServiceInterface
	Settings service.SettingsServiceInterface
	Orders   service.OrderServiceInterface
	logger   *zap.Logger
}

func NewHandler(catalogSvc service.CatalogServiceInterface, settingsSvc service.SettingsServiceInterface, orderSvc service.OrderServiceInterface, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog:  catalogSvc,
		Settings: settingsSvc,
		Orders:   orderSvc,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId}/dishes", h.createDish).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes", h.getRestaurantDishes).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes/{dishId}", h.getDish).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes/{dishId}", h.updateDish).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes/{dishId}", h.deleteDish).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{restaurantId}/categories", h.createCategory).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/categories/{categoryId}", h.updateCategory).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/categories/{categoryId}", h.deleteCategory).Methods("DELETE")

	r.HandleFunc("/api/cart-settings", h.getCartSettings).Methods("GET")
	r.HandleFunc("/api/cart-settings", h.updateCartSettings).Methods("POST")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/check/{id}", h.getOrder).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
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

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: domain.KindOf(err)})
}
