package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"overcooked-ordering/stats-svc/internal/service"
)

type Handler struct {
	Overview service.OverviewInterface
	logger   *zap.Logger
}

func NewHandler(svc service.OverviewInterface, logger *zap.Logger) *Handler {
	return &Handler{Overview: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/overview", h.getOverview).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "stats-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getOverview(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]

	days := service.DefaultDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, service.ErrInvalidDays)
			return
		}
		days = n
	}

	overview, err := h.Overview.Overview(r.Context(), restaurantID, days)
	switch {
	case errors.Is(err, service.ErrInvalidDays):
		writeError(w, http.StatusBadRequest, err)
		return
	case err != nil:
		h.logger.Error("failed to build overview", zap.String("restaurant_id", restaurantID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
