package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"sugarsense/internal/service"
)

// ParticipantHandler handles participant record endpoints
type ParticipantHandler struct {
	participantSvc *service.ParticipantService
}

// NewParticipantHandler creates a new participant handler
func NewParticipantHandler(participantSvc *service.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{participantSvc: participantSvc}
}

// UpdateNicknameRequest is the body for the nickname update
type UpdateNicknameRequest struct {
	Nickname string `json:"nickname"`
}

// Complete handles POST /v1/participants
func (h *ParticipantHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req service.CompleteFlowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	scored, err := h.participantSvc.Complete(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, scored)
}

// List handles GET /v1/participants
func (h *ParticipantHandler) List(w http.ResponseWriter, r *http.Request) {
	participants, err := h.participantSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"participants": participants})
}

// Get handles GET /v1/participants/{participantId}
func (h *ParticipantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["participantId"]
	scored, err := h.participantSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if scored == nil {
		writeError(w, http.StatusNotFound, "participant not found")
		return
	}
	writeJSON(w, http.StatusOK, scored)
}

// UpdateNickname handles PATCH /v1/participants/{participantId}/nickname
func (h *ParticipantHandler) UpdateNickname(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["participantId"]

	var req UpdateNicknameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Nickname == "" {
		writeError(w, http.StatusBadRequest, "nickname is required")
		return
	}

	if err := h.participantSvc.UpdateNickname(r.Context(), id, req.Nickname); err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// PurgeAll handles DELETE /v1/participants
func (h *ParticipantHandler) PurgeAll(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.participantSvc.PurgeAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}
