package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"sugarsense/internal/model"
	"sugarsense/internal/service"
)

// FoodHandler handles reference food endpoints
type FoodHandler struct {
	foodSvc *service.FoodService
}

// NewFoodHandler creates a new food handler
func NewFoodHandler(foodSvc *service.FoodService) *FoodHandler {
	return &FoodHandler{foodSvc: foodSvc}
}

// List handles GET /v1/foods
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	foods, err := h.foodSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"foods": foods})
}

// Create handles POST /v1/foods
func (h *FoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var food model.Food
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.foodSvc.Create(r.Context(), &food); err != nil {
		if errors.Is(err, service.ErrInvalidFood) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, food)
}

// Update handles PUT /v1/foods/{foodId}
func (h *FoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	var food model.Food
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	food.ID = mux.Vars(r)["foodId"]

	if err := h.foodSvc.Update(r.Context(), &food); err != nil {
		switch {
		case errors.Is(err, service.ErrFoodNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidFood):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, food)
}

// Delete handles DELETE /v1/foods/{foodId}
func (h *FoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["foodId"]
	if err := h.foodSvc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrFoodNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
