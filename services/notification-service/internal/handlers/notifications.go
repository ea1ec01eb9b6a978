package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/randevuapp/randevu/libs/httpx"
	"github.com/randevuapp/randevu/services/notification-service/internal/storage"
)

type NotificationHandler struct {
	notifications *storage.Repository
	tokens        *storage.PushTokenRepository
}

func NewNotificationHandler(notifications *storage.Repository, tokens *storage.PushTokenRepository) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, tokens: tokens}
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if id == "" {
		httpx.Error(w, http.StatusUnauthorized, "authentication required")
		return "", false
	}
	return id, true
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	items, err := h.notifications.ListByUser(r.Context(), uid, 100)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to list notifications")
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

type markReadRequest struct {
	IDs []string `json:"ids"`
}

// MarkRead acknowledges the given notifications, or the whole feed when no
// ids are passed.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req markReadRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if err := h.notifications.MarkRead(r.Context(), uid, req.IDs); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to mark notifications read")
		return
	}
	httpx.Message(w, http.StatusOK, "notifications marked read")
}

type subscribeRequest struct {
	Token string `json:"token"`
	Topic string `json:"topic"`
}

func (h *NotificationHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json body")
		return
	}
	req.Token = strings.TrimSpace(req.Token)
	if req.Token == "" {
		httpx.Error(w, http.StatusBadRequest, "token is required")
		return
	}
	if err := h.tokens.Subscribe(r.Context(), storage.PushToken{
		UserID: uid,
		Token:  req.Token,
		Topic:  strings.TrimSpace(req.Topic),
	}); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to save push token")
		return
	}
	httpx.Message(w, http.StatusCreated, "push token registered")
}
