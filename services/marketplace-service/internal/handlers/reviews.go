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

type ReviewHandler struct {
	pool    *db.Pool
	reviews *storage.ReviewRepository
	shops   *storage.ShopRepository
	outbox  *outbox.Repository
}

func NewReviewHandler(pool *db.Pool, reviews *storage.ReviewRepository, shops *storage.ShopRepository, outboxRepo *outbox.Repository) *ReviewHandler {
	return &ReviewHandler{pool: pool, reviews: reviews, shops: shops, outbox: outboxRepo}
}

type reviewRequest struct {
	ShopID        string `json:"shop_id"`
	AppointmentID string `json:"appointment_id"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}

// Create inserts the review and recalculates the shop's rating aggregate in
// one transaction, so readers never see the two out of sync.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json body")
		return
	}
	req.ShopID = strings.TrimSpace(req.ShopID)
	if req.ShopID == "" {
		httpx.Error(w, http.StatusBadRequest, "shop_id required")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		httpx.Error(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	shop, err := h.shops.GetByID(r.Context(), req.ShopID)
	if err != nil {
		if storage.IsNotFound(err) {
			httpx.Error(w, http.StatusNotFound, "shop not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to load shop")
		return
	}

	ctx := r.Context()
	tx, err := h.pool.Begin(ctx)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to start transaction")
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id, err := h.reviews.CreateTx(ctx, tx, model.Review{
		ShopID:        req.ShopID,
		UserID:        uid,
		AppointmentID: strings.TrimSpace(req.AppointmentID),
		Rating:        req.Rating,
		Comment:       strings.TrimSpace(req.Comment),
	})
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to create review")
		return
	}

	if err := h.shops.RecalculateRating(ctx, tx, req.ShopID); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to update rating")
		return
	}

	payload, err := json.Marshal(map[string]any{
		"review_id":  id,
		"shop_id":    req.ShopID,
		"shop_name":  shop.Name,
		"owner_id":   shop.OwnerID,
		"user_id":    uid,
		"rating":     req.Rating,
		"created_at": time.Now().UTC(),
	})
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to marshal review event")
		return
	}
	if err := h.outbox.Insert(ctx, tx, outbox.Event{
		AggregateType: "review",
		AggregateID:   id,
		EventType:     "marketplace.review.created.v1",
		Payload:       payload,
	}); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to enqueue review event")
		return
	}

	if err := tx.Commit(ctx); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to commit transaction")
		return
	}

	httpx.JSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	id := strings.TrimSpace(r.PathValue("id"))

	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		httpx.Error(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	review, err := h.reviews.GetByID(r.Context(), id)
	if err != nil {
		if storage.IsNotFound(err) {
			httpx.Error(w, http.StatusNotFound, "review not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to load review")
		return
	}

	ctx := r.Context()
	tx, err := h.pool.Begin(ctx)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to start transaction")
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := h.reviews.UpdateTx(ctx, tx, id, uid, req.Rating, strings.TrimSpace(req.Comment)); err != nil {
		if storage.IsNotFound(err) {
			httpx.Error(w, http.StatusForbidden, "not the review author")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to update review")
		return
	}
	if err := h.shops.RecalculateRating(ctx, tx, review.ShopID); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to update rating")
		return
	}
	if err := tx.Commit(ctx); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to commit transaction")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	id := strings.TrimSpace(r.PathValue("id"))

	review, err := h.reviews.GetByID(r.Context(), id)
	if err != nil {
		if storage.IsNotFound(err) {
			httpx.Error(w, http.StatusNotFound, "review not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to load review")
		return
	}

	ctx := r.Context()
	tx, err := h.pool.Begin(ctx)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to start transaction")
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := h.reviews.DeleteTx(ctx, tx, id, uid); err != nil {
		if storage.IsNotFound(err) {
			httpx.Error(w, http.StatusForbidden, "not the review author")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to delete review")
		return
	}
	if err := h.shops.RecalculateRating(ctx, tx, review.ShopID); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to update rating")
		return
	}
	if err := tx.Commit(ctx); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to commit transaction")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ReviewHandler) ListByShop(w http.ResponseWriter, r *http.Request) {
	shopID := strings.TrimSpace(r.PathValue("id"))
	reviews, err := h.reviews.ListByShop(r.Context(), shopID, 0)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to list reviews")
		return
	}
	httpx.JSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	reviews, err := h.reviews.ListByUser(r.Context(), uid, 0)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to list reviews")
		return
	}
	httpx.JSON(w, http.StatusOK, reviews)
}
