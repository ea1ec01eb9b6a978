package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/randevuapp/randevu/services/booking-service/internal/directory"
	"github.com/randevuapp/randevu/services/booking-service/internal/lifecycle"
	"github.com/randevuapp/randevu/services/booking-service/internal/model"
	"github.com/randevuapp/randevu/services/booking-service/internal/outbox"
	"github.com/randevuapp/randevu/services/booking-service/internal/storage"
)

func TestResolveStart(t *testing.T) {
	want := time.Date(2025, 5, 25, 10, 0, 0, 0, time.UTC)

	got, err := resolveStart(createAppointmentRequest{StartTime: "2025-05-25T10:00:00Z"})
	if err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("rfc3339: got %s", got)
	}

	got, err = resolveStart(createAppointmentRequest{Date: "2025-05-25", Time: "10:00"})
	if err != nil {
		t.Fatalf("date+time: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("date+time: got %s", got)
	}

	if _, err := resolveStart(createAppointmentRequest{Date: "2025-05-25"}); err == nil {
		t.Fatal("expected missing time to be rejected")
	}
	if _, err := resolveStart(createAppointmentRequest{StartTime: "next tuesday"}); err == nil {
		t.Fatal("expected unparseable start_time to be rejected")
	}
}

type fakeLoader struct {
	calls int
	shops map[string]directory.ShopInfo
}

func (f *fakeLoader) Shop(_ context.Context, shopID string) (directory.ShopInfo, error) {
	f.calls++
	info, ok := f.shops[shopID]
	if !ok {
		return directory.ShopInfo{}, directory.ErrNotFound
	}
	return info, nil
}

// stubTx satisfies pgx.Tx for handler flows that never touch the database.
type stubTx struct{ pgx.Tx }

func (stubTx) Commit(context.Context) error   { return nil }
func (stubTx) Rollback(context.Context) error { return nil }

type fakeStore struct {
	appt    model.Appointment
	created *model.Appointment
	cancels int
}

func (s *fakeStore) Begin(context.Context) (pgx.Tx, error) { return stubTx{}, nil }

func (s *fakeStore) Create(_ context.Context, _ pgx.Tx, appt *model.Appointment) (string, time.Time, error) {
	s.created = appt
	return "appt-1", time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC), nil
}

func (s *fakeStore) GetForUpdate(_ context.Context, _ pgx.Tx, id string) (model.Appointment, error) {
	if s.appt.ID != id {
		return model.Appointment{}, pgx.ErrNoRows
	}
	return s.appt, nil
}

func (s *fakeStore) MarkUserConfirmed(context.Context, pgx.Tx, string) error     { return nil }
func (s *fakeStore) MarkBusinessConfirmed(context.Context, pgx.Tx, string) error { return nil }
func (s *fakeStore) MarkCompleted(context.Context, pgx.Tx, string) error         { return nil }

func (s *fakeStore) Cancel(_ context.Context, _ pgx.Tx, _, _, _ string) (time.Time, error) {
	s.cancels++
	return time.Date(2025, 5, 21, 12, 0, 0, 0, time.UTC), nil
}

func (s *fakeStore) ListByUser(context.Context, string, int) ([]model.Appointment, error) {
	return nil, nil
}

func (s *fakeStore) ListByShop(context.Context, string, int) ([]model.Appointment, error) {
	return nil, nil
}

func (s *fakeStore) LockIdempotencyKey(context.Context, pgx.Tx, string, string) (storage.IdempotencyRecord, bool, error) {
	return storage.IdempotencyRecord{}, false, nil
}

func (s *fakeStore) FinalizeIdempotency(context.Context, pgx.Tx, string, string, string, int, []byte) error {
	return nil
}

type fakeOutbox struct {
	events []outbox.Event
}

func (f *fakeOutbox) Insert(_ context.Context, _ pgx.Tx, evt outbox.Event) error {
	f.events = append(f.events, evt)
	return nil
}

type appointmentEnvelope struct {
	Success bool              `json:"success"`
	Data    model.Appointment `json:"data"`
}

func TestCreateStartsPendingUserConfirmation(t *testing.T) {
	loader := &fakeLoader{shops: map[string]directory.ShopInfo{
		"shop-a": {
			ID: "shop-a", OwnerID: "owner-1", IsActive: true,
			Services: []directory.ServiceInfo{{ID: "svc-1", Name: "Saç Kesimi", DurationMinutes: 45, Price: 350}},
		},
	}}
	store := &fakeStore{}
	events := &fakeOutbox{}
	h := NewBookingHandler(store, events, loader, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/appointments", h.Create)

	body := `{"shop_id":"shop-a","service_id":"svc-1","start_time":"2025-05-25T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	req.Header.Set("X-User-Id", "user-1")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp appointmentEnvelope
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Status != lifecycle.PendingUserConfirmation {
		t.Fatalf("expected pending_user_confirmation, got %s", resp.Data.Status)
	}
	if resp.Data.UserConfirmed || resp.Data.BusinessConfirmed {
		t.Fatalf("expected both confirmation flags false: %+v", resp.Data)
	}
	if store.created == nil || store.created.Status != lifecycle.PendingUserConfirmation {
		t.Fatalf("persisted status not pending_user_confirmation: %+v", store.created)
	}
	if len(events.events) != 1 || events.events[0].EventType != "booking.appointment.created.v1" {
		t.Fatalf("expected one created event, got %+v", events.events)
	}
}

func cancelMux(h *BookingHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/v1/appointments/{id}/cancel", h.Cancel)
	return mux
}

func TestCancelPendingAppointment(t *testing.T) {
	store := &fakeStore{appt: model.Appointment{
		ID: "appt-1", ShopID: "shop-a", UserID: "user-1",
		Status: lifecycle.PendingUserConfirmation,
	}}
	events := &fakeOutbox{}
	h := NewBookingHandler(store, events, &fakeLoader{}, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/appointments/appt-1/cancel", strings.NewReader(`{"reason":"changed my mind"}`))
	req.Header.Set("X-User-Id", "user-1")
	rr := httptest.NewRecorder()
	cancelMux(h).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if store.cancels != 1 {
		t.Fatalf("expected one cancel write, got %d", store.cancels)
	}
	if len(events.events) != 1 || events.events[0].EventType != "booking.appointment.canceled.v1" {
		t.Fatalf("expected one canceled event, got %+v", events.events)
	}
}

func TestCancelTwiceReturnsCanceledState(t *testing.T) {
	canceledAt := time.Date(2025, 5, 21, 12, 0, 0, 0, time.UTC)
	store := &fakeStore{appt: model.Appointment{
		ID: "appt-1", ShopID: "shop-a", UserID: "user-1",
		Status: lifecycle.Canceled, CancelReason: "no longer needed",
		CanceledBy: "user", CanceledAt: &canceledAt,
	}}
	events := &fakeOutbox{}
	h := NewBookingHandler(store, events, &fakeLoader{}, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/appointments/appt-1/cancel", strings.NewReader(`{"reason":"again"}`))
	req.Header.Set("X-User-Id", "user-1")
	rr := httptest.NewRecorder()
	cancelMux(h).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp appointmentEnvelope
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Status != lifecycle.Canceled || resp.Data.CancelReason != "no longer needed" {
		t.Fatalf("expected the original canceled state back, got %+v", resp.Data)
	}
	if store.cancels != 0 {
		t.Fatalf("second cancel must not write, got %d writes", store.cancels)
	}
	if len(events.events) != 0 {
		t.Fatalf("second cancel must not emit events, got %+v", events.events)
	}
}

func TestCancelCompletedAppointmentRejected(t *testing.T) {
	store := &fakeStore{appt: model.Appointment{
		ID: "appt-1", ShopID: "shop-a", UserID: "user-1",
		Status: lifecycle.Completed,
	}}
	h := NewBookingHandler(store, &fakeOutbox{}, &fakeLoader{}, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/appointments/appt-1/cancel", strings.NewReader(`{}`))
	req.Header.Set("X-User-Id", "user-1")
	rr := httptest.NewRecorder()
	cancelMux(h).ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rr.Code, rr.Body.String())
	}
	if store.cancels != 0 {
		t.Fatalf("cancel of a completed appointment must not write, got %d writes", store.cancels)
	}
}

func TestAssembleViewsOneLookupPerShop(t *testing.T) {
	loader := &fakeLoader{shops: map[string]directory.ShopInfo{
		"shop-a": {
			ID: "shop-a", Name: "Star Berber", Address: "Moda Cad. 5",
			Services: []directory.ServiceInfo{{ID: "svc-1", Name: "Saç Kesimi", DurationMinutes: 45, Price: 350}},
			Staff:    []directory.StaffInfo{{ID: "stf-1", Name: "Mehmet"}},
		},
		"shop-b": {ID: "shop-b", Name: "Elite Bayan Kuaför"},
	}}
	h := NewBookingHandler(nil, nil, loader, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	var appts []model.Appointment
	for i := 0; i < 6; i++ {
		shopID := "shop-a"
		if i%2 == 1 {
			shopID = "shop-b"
		}
		appts = append(appts, model.Appointment{
			ID:        string(rune('a' + i)),
			ShopID:    shopID,
			ServiceID: "svc-1",
			StaffID:   "stf-1",
			Status:    lifecycle.Confirmed,
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Minute),
		})
	}

	views := h.assembleViews(context.Background(), appts)
	if len(views) != len(appts) {
		t.Fatalf("expected %d views, got %d", len(appts), len(views))
	}
	if loader.calls != 2 {
		t.Fatalf("expected one directory lookup per distinct shop (2), got %d", loader.calls)
	}
	if views[0].ShopName != "Star Berber" || views[0].ServiceName != "Saç Kesimi" || views[0].StaffName != "Mehmet" {
		t.Fatalf("view not assembled: %+v", views[0])
	}
	// Repository order is preserved through assembly.
	for i := 1; i < len(views); i++ {
		if views[i].CreatedAt.After(views[i-1].CreatedAt) {
			t.Fatalf("views out of created_at order at index %d", i)
		}
	}
}

func TestAssembleViewsDegradesOnLookupFailure(t *testing.T) {
	loader := &fakeLoader{shops: map[string]directory.ShopInfo{}}
	h := NewBookingHandler(nil, nil, loader, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	views := h.assembleViews(context.Background(), []model.Appointment{
		{ID: "a1", ShopID: "gone", Status: lifecycle.PendingUserConfirmation},
	})
	if len(views) != 1 {
		t.Fatalf("expected the bare appointment to survive, got %d views", len(views))
	}
	if views[0].ShopName != "" || views[0].ID != "a1" {
		t.Fatalf("unexpected degraded view: %+v", views[0])
	}
}
