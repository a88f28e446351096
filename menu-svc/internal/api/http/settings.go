package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"overcooked-ordering/domain"
)

func (h *Handler) getCartSettings(w http.ResponseWriter, r *http.Request) {
	restaurantID := r.URL.Query().Get("restaurantId")
	settings, err := h.Settings.Resolve(r.Context(), restaurantID)
	if err != nil {
		h.logger.Error("failed to resolve cart settings", zap.String("restaurant_id", restaurantID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) updateCartSettings(w http.ResponseWriter, r *http.Request) {
	restaurantID := r.URL.Query().Get("restaurantId")

	var patch domain.SettingsPatch
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	settings, err := h.Settings.Update(r.Context(), restaurantID, patch)
	if err != nil {
		h.logger.Error("failed to update cart settings", zap.String("restaurant_id", restaurantID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
