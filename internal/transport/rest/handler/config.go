package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"sugarsense/internal/model"
	"sugarsense/internal/service"
)

// ConfigHandler handles experience configuration endpoints
type ConfigHandler struct {
	configSvc *service.ConfigService
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(configSvc *service.ConfigService) *ConfigHandler {
	return &ConfigHandler{configSvc: configSvc}
}

// Get handles GET /v1/config
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.configSvc.GetActive(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// Update handles PUT /v1/config
func (h *ConfigHandler) Update(w http.ResponseWriter, r *http.Request) {
	var cfg model.ExperienceConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.configSvc.Update(r.Context(), &cfg); err != nil {
		if errors.Is(err, service.ErrUnknownPairFood) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}
