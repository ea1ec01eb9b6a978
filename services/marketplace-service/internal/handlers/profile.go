package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/randevuapp/randevu/libs/httpx"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/model"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/storage"
)

type ProfileHandler struct {
	profiles *storage.ProfileRepository
}

func NewProfileHandler(profiles *storage.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	p, err := h.profiles.GetOrCreate(r.Context(), uid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req struct {
		Name     string `json:"name"`
		Phone    string `json:"phone"`
		PhotoURL string `json:"photo_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json body")
		return
	}

	err := h.profiles.Update(r.Context(), model.Profile{
		UserID:   uid,
		Name:     strings.TrimSpace(req.Name),
		Phone:    strings.TrimSpace(req.Phone),
		PhotoURL: strings.TrimSpace(req.PhotoURL),
	})
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to update profile")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
