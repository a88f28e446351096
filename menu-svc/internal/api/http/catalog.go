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

func catalogStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidDish), errors.Is(err, service.ErrInvalidCategory):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) catalogError(w http.ResponseWriter, err error) {
	status := catalogStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("catalog request failed", zap.Error(err))
	}
	writeError(w, status, err)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	var dish domain.CatalogItem
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	dish.RestaurantID = mux.Vars(r)["restaurantId"]
	if err := h.Catalog.CreateDish(r.Context(), &dish); err != nil {
		h.catalogError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dish)
}

func (h *Handler) getRestaurantDishes(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("all") == "true"
	dishes, err := h.Catalog.ListDishes(r.Context(), mux.Vars(r)["restaurantId"], includeInactive)
	if err != nil {
		h.catalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dish, err := h.Catalog.GetDish(r.Context(), vars["restaurantId"], vars["dishId"])
	if err != nil {
		h.catalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var dish domain.CatalogItem
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	dish.ID = vars["dishId"]
	dish.RestaurantID = vars["restaurantId"]
	if err := h.Catalog.UpdateDish(r.Context(), &dish); err != nil {
		h.catalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Catalog.DeleteDish(r.Context(), vars["restaurantId"], vars["dishId"]); err != nil {
		h.catalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	category.RestaurantID = mux.Vars(r)["restaurantId"]
	if err := h.Catalog.CreateCategory(r.Context(), &category); err != nil {
		h.catalogError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("all") == "true"
	categories, err := h.Catalog.ListCategories(r.Context(), mux.Vars(r)["restaurantId"], includeInactive)
	if err != nil {
		h.catalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	category.ID = vars["categoryId"]
	category.RestaurantID = vars["restaurantId"]
	if err := h.Catalog.UpdateCategory(r.Context(), &category); err != nil {
		h.catalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Catalog.DeleteCategory(r.Context(), vars["restaurantId"], vars["categoryId"]); err != nil {
		h.catalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
