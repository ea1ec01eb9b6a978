package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/randevuapp/randevu/libs/httpx"
	"github.com/randevuapp/randevu/services/booking-service/internal/availability"
	"github.com/randevuapp/randevu/services/booking-service/internal/directory"
	"github.com/randevuapp/randevu/services/booking-service/internal/lifecycle"
	"github.com/randevuapp/randevu/services/booking-service/internal/model"
	"github.com/randevuapp/randevu/services/booking-service/internal/outbox"
	"github.com/randevuapp/randevu/services/booking-service/internal/storage"
	"github.com/randevuapp/randevu/services/booking-service/internal/timeshape"
)

const defaultServiceDuration = 60 * time.Minute

// appointmentStore is the slice of the appointment repository the handler
// uses. *storage.AppointmentRepository is the production implementation.
type appointmentStore interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Create(ctx context.Context, tx pgx.Tx, appt *model.Appointment) (string, time.Time, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (model.Appointment, error)
	MarkUserConfirmed(ctx context.Context, tx pgx.Tx, id string) error
	MarkBusinessConfirmed(ctx context.Context, tx pgx.Tx, id string) error
	MarkCompleted(ctx context.Context, tx pgx.Tx, id string) error
	Cancel(ctx context.Context, tx pgx.Tx, id, reason, canceledBy string) (time.Time, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]model.Appointment, error)
	ListByShop(ctx context.Context, shopID string, limit int) ([]model.Appointment, error)
	LockIdempotencyKey(ctx context.Context, tx pgx.Tx, userID, key string) (storage.IdempotencyRecord, bool, error)
	FinalizeIdempotency(ctx context.Context, tx pgx.Tx, userID, key, appointmentID string, statusCode int, response []byte) error
}

type eventWriter interface {
	Insert(ctx context.Context, tx pgx.Tx, evt outbox.Event) error
}

type BookingHandler struct {
	repo       appointmentStore
	outboxRepo eventWriter
	dir        directory.Loader
	logger     *slog.Logger
	offsets    []time.Duration
}

func NewBookingHandler(repo appointmentStore, outboxRepo eventWriter, dir directory.Loader, logger *slog.Logger, offsets []time.Duration) *BookingHandler {
	return &BookingHandler{
		repo:       repo,
		outboxRepo: outboxRepo,
		dir:        dir,
		logger:     logger,
		offsets:    offsets,
	}
}

type createAppointmentRequest struct {
	ShopID    string `json:"shop_id"`
	ServiceID string `json:"service_id"`
	StaffID   string `json:"staff_id"`
	StartTime string `json:"start_time"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Notes     string `json:"notes"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req createAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json body")
		return
	}
	req.ShopID = strings.TrimSpace(req.ShopID)
	req.ServiceID = strings.TrimSpace(req.ServiceID)
	req.StaffID = strings.TrimSpace(req.StaffID)
	if req.ShopID == "" || req.ServiceID == "" {
		httpx.Error(w, http.StatusBadRequest, "shop_id and service_id are required")
		return
	}

	start, err := resolveStart(req)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	shop, err := h.dir.Shop(ctx, req.ShopID)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "shop not found")
			return
		}
		h.logger.Error("directory lookup failed", "err", err, "shop_id", req.ShopID)
		httpx.Error(w, http.StatusServiceUnavailable, "shop directory unavailable")
		return
	}
	if !shop.IsActive {
		httpx.Error(w, http.StatusNotFound, "shop not found")
		return
	}

	svc, ok := shop.Service(req.ServiceID)
	if !ok {
		httpx.Error(w, http.StatusNotFound, "service not found")
		return
	}
	if req.StaffID != "" {
		if _, ok := shop.StaffMember(req.StaffID); !ok {
			httpx.Error(w, http.StatusNotFound, "staff member not found")
			return
		}
	}

	duration := time.Duration(svc.DurationMinutes) * time.Minute
	if duration <= 0 {
		duration = defaultServiceDuration
	}
	end := start.Add(duration)

	price := svc.Price
	if svc.DiscountedPrice > 0 {
		price = svc.DiscountedPrice
	}

	if !availability.WithinHours(shop.WorkingHours, start, end) {
		httpx.Error(w, http.StatusUnprocessableEntity, "requested time is outside the shop's working hours")
		return
	}

	appt := &model.Appointment{
		ShopID:    req.ShopID,
		ServiceID: req.ServiceID,
		UserID:    caller,
		StaffID:   req.StaffID,
		Status:    lifecycle.PendingUserConfirmation,
		StartTime: start,
		EndTime:   end,
		Price:     price,
		Notes:     strings.TrimSpace(req.Notes),
	}

	tx, err := h.repo.Begin(ctx)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	idempotencyKey := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	if idempotencyKey != "" {
		rec, exists, err := h.repo.LockIdempotencyKey(ctx, tx, caller, idempotencyKey)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "failed to lock idempotency key")
			return
		}
		if exists && rec.StatusCode > 0 && len(rec.ResponsePayload) > 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(rec.StatusCode)
			_, _ = w.Write(rec.ResponsePayload)
			return
		}
	}

	id, createdAt, err := h.repo.Create(ctx, tx, appt)
	if err != nil {
		if storage.IsConflict(err) {
			httpx.Error(w, http.StatusConflict, "time slot already booked")
			return
		}
		h.logger.Error("appointment insert failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "failed to create appointment")
		return
	}
	appt.ID = id
	appt.CreatedAt = createdAt
	appt.UpdatedAt = createdAt

	if err := h.insertEvent(ctx, tx, "booking.appointment.created.v1", appt, map[string]any{
		"shop_name":    shop.Name,
		"service_name": svc.Name,
	}); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to write outbox event")
		return
	}

	respBody, err := json.Marshal(httpx.Envelope{Success: true, Data: appt})
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to build response")
		return
	}
	if idempotencyKey != "" {
		if err := h.repo.FinalizeIdempotency(ctx, tx, caller, idempotencyKey, id, http.StatusCreated, respBody); err != nil {
			httpx.Error(w, http.StatusInternalServerError, "failed to finalize idempotency key")
			return
		}
	}

	if err := tx.Commit(ctx); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to commit")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(respBody)
}

// resolveStart accepts either an RFC3339 start_time or a date + time pair.
func resolveStart(req createAppointmentRequest) (time.Time, error) {
	if s := strings.TrimSpace(req.StartTime); s != "" {
		start, err := timeshape.FromString(s)
		if err != nil {
			return time.Time{}, errors.New("invalid start_time")
		}
		return start, nil
	}
	if strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Time) == "" {
		return time.Time{}, errors.New("start_time or date and time are required")
	}
	return timeshape.Combine(req.Date, req.Time)
}

func (h *BookingHandler) ConfirmByUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireUser(w, r)
	if !ok {
		return
	}
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		httpx.Error(w, http.StatusBadRequest, "appointment id is required")
		return
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	appt, err := h.repo.GetForUpdate(ctx, tx, id)
	if err != nil {
		if storage.IsNotFound(err) {
			httpx.Error(w, http.StatusNotFound, "appointment not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to load appointment")
		return
	}
	if appt.UserID != caller {
		httpx.Error(w, http.StatusForbidden, "not your appointment")
		return
	}

	if err := lifecycle.Transition(appt.Status, lifecycle.PendingBusinessConfirmation); err != nil {
		httpx.Error(w, http.StatusConflict, err.Error())
		return
	}
	if err := h.repo.MarkUserConfirmed(ctx, tx, id); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to update appointment")
		return
	}
	appt.Status = lifecycle.PendingBusinessConfirmation
	appt.UserConfirmed = true

	if err := h.insertEvent(ctx, tx, "booking.appointment.confirmed_by_user.v1", &appt, nil); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to write outbox event")
		return
	}
	if err := tx.Commit(ctx); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to commit")
		return
	}
	httpx.JSON(w, http.StatusOK, appt)
}

type statusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// SetStatus is the shop-owner side of the lifecycle: business confirmation,
// completion, and rejection all run through it.
func (h *BookingHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireUser(w, r)
	if !ok {
		return
	}
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		httpx.Error(w, http.StatusBadRequest, "appointment id is required")
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json body")
		return
	}
	requested := lifecycle.Status(strings.TrimSpace(req.Status))
	switch requested {
	case lifecycle.Confirmed, lifecycle.Completed, lifecycle.Canceled:
	default:
		httpx.Error(w, http.StatusBadRequest, "status must be confirmed, completed, or canceled")
		return
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	appt, err := h.repo.GetForUpdate(ctx, tx, id)
	if err != nil {
		if storage.IsNotFound(err) {
			httpx.Error(w, http.StatusNotFound, "appointment not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to load appointment")
		return
	}

	shop, err := h.dir.Shop(ctx, appt.ShopID)
	if err != nil {
		h.logger.Error("directory lookup failed", "err", err, "shop_id", appt.ShopID)
		httpx.Error(w, http.StatusServiceUnavailable, "shop directory unavailable")
		return
	}
	if shop.OwnerID != caller {
		httpx.Error(w, http.StatusForbidden, "not your shop")
		return
	}

	if err := lifecycle.Transition(appt.Status, requested); err != nil {
		httpx.Error(w, http.StatusConflict, err.Error())
		return
	}

	switch requested {
	case lifecycle.Confirmed:
		if err := h.repo.MarkBusinessConfirmed(ctx, tx, id); err != nil {
			httpx.Error(w, http.StatusInternalServerError, "failed to update appointment")
			return
		}
		appt.Status = lifecycle.Confirmed
		appt.BusinessConfirmed = true
		if err := h.insertEvent(ctx, tx, "booking.appointment.confirmed.v1", &appt, map[string]any{"shop_name": shop.Name}); err != nil {
			httpx.Error(w, http.StatusInternalServerError, "failed to write outbox event")
			return
		}
		h.enqueueReminders(ctx, tx, &appt, shop.Name)
	case lifecycle.Completed:
		if err := h.repo.MarkCompleted(ctx, tx, id); err != nil {
			httpx.Error(w, http.StatusInternalServerError, "failed to update appointment")
			return
		}
		appt.Status = lifecycle.Completed
		if err := h.insertEvent(ctx, tx, "booking.appointment.completed.v1", &appt, nil); err != nil {
			httpx.Error(w, http.StatusInternalServerError, "failed to write outbox event")
			return
		}
	case lifecycle.Canceled:
		canceledAt, err := h.repo.Cancel(ctx, tx, id, strings.TrimSpace(req.Reason), "business")
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "failed to cancel appointment")
			return
		}
		appt.Status = lifecycle.Canceled
		appt.CancelReason = strings.TrimSpace(req.Reason)
		appt.CanceledBy = "business"
		appt.CanceledAt = &canceledAt
		if err := h.insertEvent(ctx, tx, "booking.appointment.canceled.v1", &appt, map[string]any{"reason": appt.CancelReason}); err != nil {
			httpx.Error(w, http.StatusInternalServerError, "failed to write outbox event")
			return
		}
	}

	if err := tx.Commit(ctx); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to commit")
		return
	}
	httpx.JSON(w, http.StatusOK, appt)
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireUser(w, r)
	if !ok {
		return
	}
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		httpx.Error(w, http.StatusBadRequest, "appointment id is required")
		return
	}

	var req cancelRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	appt, err := h.repo.GetForUpdate(ctx, tx, id)
	if err != nil {
		if storage.IsNotFound(err) {
			httpx.Error(w, http.StatusNotFound, "appointment not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to load appointment")
		return
	}

	canceledBy := "user"
	if appt.UserID != caller {
		shop, err := h.dir.Shop(ctx, appt.ShopID)
		if err != nil || shop.OwnerID != caller {
			httpx.Error(w, http.StatusForbidden, "not your appointment")
			return
		}
		canceledBy = "business"
	}

	// Cancelling twice returns the already-canceled state unchanged.
	if appt.Status == lifecycle.Canceled {
		httpx.JSON(w, http.StatusOK, appt)
		return
	}
	if err := lifecycle.Transition(appt.Status, lifecycle.Canceled); err != nil {
		httpx.Error(w, http.StatusConflict, err.Error())
		return
	}

	reason := strings.TrimSpace(req.Reason)
	canceledAt, err := h.repo.Cancel(ctx, tx, id, reason, canceledBy)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to cancel appointment")
		return
	}
	appt.Status = lifecycle.Canceled
	appt.CancelReason = reason
	appt.CanceledBy = canceledBy
	appt.CanceledAt = &canceledAt

	if err := h.insertEvent(ctx, tx, "booking.appointment.canceled.v1", &appt, map[string]any{"reason": reason, "canceled_by": canceledBy}); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to write outbox event")
		return
	}
	if err := tx.Commit(ctx); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to commit")
		return
	}
	httpx.JSON(w, http.StatusOK, appt)
}

func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireUser(w, r)
	if !ok {
		return
	}
	appts, err := h.repo.ListByUser(r.Context(), caller, 100)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to list appointments")
		return
	}
	httpx.JSON(w, http.StatusOK, h.assembleViews(r.Context(), appts))
}

func (h *BookingHandler) ListForShop(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireUser(w, r)
	if !ok {
		return
	}
	shopID := strings.TrimSpace(r.PathValue("shopId"))
	if shopID == "" {
		httpx.Error(w, http.StatusBadRequest, "shop id is required")
		return
	}

	shop, err := h.dir.Shop(r.Context(), shopID)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "shop not found")
			return
		}
		httpx.Error(w, http.StatusServiceUnavailable, "shop directory unavailable")
		return
	}
	if shop.OwnerID != caller {
		httpx.Error(w, http.StatusForbidden, "not your shop")
		return
	}

	appts, err := h.repo.ListByShop(r.Context(), shopID, 200)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to list appointments")
		return
	}
	httpx.JSON(w, http.StatusOK, h.assembleViews(r.Context(), appts))
}

// assembleViews denormalizes appointments with shop, service, and staff
// attributes. A request-scoped memo keeps directory traffic to one lookup per
// distinct shop; lookup failures degrade to the bare appointment fields.
func (h *BookingHandler) assembleViews(ctx context.Context, appts []model.Appointment) []model.AppointmentView {
	memo := directory.NewMemo(h.dir)
	views := make([]model.AppointmentView, 0, len(appts))
	for _, appt := range appts {
		view := model.AppointmentView{Appointment: appt}
		shop, err := memo.Shop(ctx, appt.ShopID)
		if err != nil {
			h.logger.Warn("directory lookup failed during view assembly", "err", err, "shop_id", appt.ShopID)
			views = append(views, view)
			continue
		}
		view.ShopName = shop.Name
		view.ShopAddress = shop.Address
		view.ShopImage = shop.ImageMain
		if svc, ok := shop.Service(appt.ServiceID); ok {
			view.ServiceName = svc.Name
			view.ServiceDuration = svc.DurationMinutes
			view.ServicePrice = svc.Price
		}
		if appt.StaffID != "" {
			if st, ok := shop.StaffMember(appt.StaffID); ok {
				view.StaffName = st.Name
			}
		}
		views = append(views, view)
	}
	return views
}

func (h *BookingHandler) insertEvent(ctx context.Context, tx pgx.Tx, eventType string, appt *model.Appointment, extra map[string]any) error {
	payload := map[string]any{
		"appointment_id": appt.ID,
		"shop_id":        appt.ShopID,
		"service_id":     appt.ServiceID,
		"user_id":        appt.UserID,
		"status":         string(appt.Status),
		"start_time":     appt.StartTime.UTC().Format(time.RFC3339),
		"end_time":       appt.EndTime.UTC().Format(time.RFC3339),
	}
	for k, v := range extra {
		payload[k] = v
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "appointment",
		AggregateID:   appt.ID,
		EventType:     eventType,
		Payload:       raw,
	})
}

// enqueueReminders emits one reminder request per configured offset before
// start time. Offsets already in the past are skipped.
func (h *BookingHandler) enqueueReminders(ctx context.Context, tx pgx.Tx, appt *model.Appointment, shopName string) {
	now := time.Now().UTC()
	for _, offset := range h.offsets {
		remindAt := appt.StartTime.Add(-offset)
		if remindAt.Before(now) {
			continue
		}
		payload, err := json.Marshal(map[string]any{
			"appointment_id": appt.ID,
			"shop_id":        appt.ShopID,
			"user_id":        appt.UserID,
			"shop_name":      shopName,
			"start_time":     appt.StartTime.UTC().Format(time.RFC3339),
			"remind_at":      remindAt.Format(time.RFC3339),
		})
		if err != nil {
			h.logger.Error("failed to build reminder payload", "err", err)
			continue
		}
		if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
			AggregateType: "appointment",
			AggregateID:   appt.ID,
			EventType:     "booking.reminder.requested.v1",
			Payload:       payload,
		}); err != nil {
			h.logger.Error("failed to enqueue reminder", "err", err)
		}
	}
}
