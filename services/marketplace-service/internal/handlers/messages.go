package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/randevuapp/randevu/libs/db"
	"github.com/randevuapp/randevu/libs/httpx"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/model"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/outbox"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/storage"
)

type MessageHandler struct {
	pool     *db.Pool
	messages *storage.MessageRepository
	shops    *storage.ShopRepository
	outbox   *outbox.Repository
}

func NewMessageHandler(pool *db.Pool, messages *storage.MessageRepository, shops *storage.ShopRepository, outboxRepo *outbox.Repository) *MessageHandler {
	return &MessageHandler{pool: pool, messages: messages, shops: shops, outbox: outboxRepo}
}

type sendMessageRequest struct {
	ShopID     string `json:"shop_id"`
	ReceiverID string `json:"receiver_id"`
	Body       string `json:"body"`
}

// Send routes a message within a shop thread. Customers message the shop
// owner implicitly; the owner must name the customer they are replying to.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json body")
		return
	}
	req.ShopID = strings.TrimSpace(req.ShopID)
	req.ReceiverID = strings.TrimSpace(req.ReceiverID)
	req.Body = strings.TrimSpace(req.Body)
	if req.ShopID == "" || req.Body == "" {
		httpx.Error(w, http.StatusBadRequest, "shop_id and body required")
		return
	}

	ownerID, err := h.shops.OwnerOf(r.Context(), req.ShopID)
	if err != nil {
		if storage.IsNotFound(err) {
			httpx.Error(w, http.StatusNotFound, "shop not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to load shop")
		return
	}

	receiverID := req.ReceiverID
	if uid == ownerID {
		if receiverID == "" {
			httpx.Error(w, http.StatusBadRequest, "receiver_id required when messaging as the shop")
			return
		}
	} else {
		receiverID = ownerID
	}

	ctx := r.Context()
	tx, err := h.pool.Begin(ctx)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to start transaction")
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id, err := h.messages.CreateTx(ctx, tx, model.Message{
		ShopID:     req.ShopID,
		SenderID:   uid,
		ReceiverID: receiverID,
		Body:       req.Body,
	})
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to send message")
		return
	}

	payload, err := json.Marshal(map[string]any{
		"message_id":  id,
		"shop_id":     req.ShopID,
		"sender_id":   uid,
		"receiver_id": receiverID,
		"created_at":  time.Now().UTC(),
	})
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to marshal message event")
		return
	}
	if err := h.outbox.Insert(ctx, tx, outbox.Event{
		AggregateType: "message",
		AggregateID:   id,
		EventType:     "marketplace.message.sent.v1",
		Payload:       payload,
	}); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to enqueue message event")
		return
	}

	if err := tx.Commit(ctx); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to commit transaction")
		return
	}

	httpx.JSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (h *MessageHandler) ListForShop(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	shopID := strings.TrimSpace(r.PathValue("id"))
	if shopID == "" {
		httpx.Error(w, http.StatusBadRequest, "shop id is required")
		return
	}

	// Owners read a specific customer's thread via ?user_id=.
	callerID := uid
	if other := strings.TrimSpace(r.URL.Query().Get("user_id")); other != "" {
		ownerID, err := h.shops.OwnerOf(r.Context(), shopID)
		if err != nil {
			if storage.IsNotFound(err) {
				httpx.Error(w, http.StatusNotFound, "shop not found")
				return
			}
			httpx.Error(w, http.StatusInternalServerError, "failed to load shop")
			return
		}
		if uid != ownerID {
			httpx.Error(w, http.StatusForbidden, "not a participant")
			return
		}
		callerID = other
	}

	messages, err := h.messages.ListForShop(r.Context(), shopID, callerID, 0)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to list messages")
		return
	}
	httpx.JSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req struct {
		ShopID string `json:"shop_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json body")
		return
	}
	req.ShopID = strings.TrimSpace(req.ShopID)
	if req.ShopID == "" {
		httpx.Error(w, http.StatusBadRequest, "shop_id required")
		return
	}

	if err := h.messages.MarkRead(r.Context(), req.ShopID, uid); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to mark messages read")
		return
	}
	httpx.Message(w, http.StatusOK, "marked read")
}
