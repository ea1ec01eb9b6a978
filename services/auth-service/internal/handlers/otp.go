package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/randevuapp/randevu/libs/db"
	"github.com/randevuapp/randevu/libs/httpx"
	"github.com/randevuapp/randevu/services/auth-service/internal/otp"
	"github.com/randevuapp/randevu/services/auth-service/internal/outbox"
	"github.com/randevuapp/randevu/services/auth-service/internal/storage"
)

type OTPHandler struct {
	signer TokenSigner
	pool   *db.Pool
	users  *storage.UserRepository
	outbox *outbox.Repository
	store  otp.Store
	logger *slog.Logger
	ttl    time.Duration
}

func NewOTPHandler(
	signer TokenSigner,
	pool *db.Pool,
	users *storage.UserRepository,
	outboxRepo *outbox.Repository,
	store otp.Store,
	logger *slog.Logger,
	ttl time.Duration,
) *OTPHandler {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &OTPHandler{
		signer: signer,
		pool:   pool,
		users:  users,
		outbox: outboxRepo,
		store:  store,
		logger: logger,
		ttl:    ttl,
	}
}

type otpRequestBody struct {
	Phone string `json:"phone"`
}

type otpVerifyBody struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// Request generates a one-time code and hands delivery to the notification
// pipeline through the outbox. The code itself never appears in the response.
func (h *OTPHandler) Request(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpx.Error(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req otpRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json body")
		return
	}
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Phone == "" {
		httpx.Error(w, http.StatusBadRequest, "phone required")
		return
	}

	code, err := otp.NewCode()
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to generate code")
		return
	}

	ctx := r.Context()
	if err := h.store.Save(ctx, req.Phone, code, h.ttl); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to store code")
		return
	}

	payload, err := json.Marshal(map[string]any{
		"phone":      req.Phone,
		"code":       code,
		"expires_at": time.Now().Add(h.ttl).UTC(),
	})
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to marshal otp event")
		return
	}

	tx, err := h.pool.Begin(ctx)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to start transaction")
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := h.outbox.Insert(ctx, tx, outbox.Event{
		AggregateType: "otp",
		AggregateID:   req.Phone,
		EventType:     "auth.otp.requested.v1",
		Payload:       payload,
	}); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to enqueue otp event")
		return
	}
	if err := tx.Commit(ctx); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to commit transaction")
		return
	}

	h.logger.Info("otp requested", "phone", req.Phone)
	httpx.Message(w, http.StatusOK, "code sent")
}

// Verify consumes the code. When the caller presents a valid bearer token the
// phone is also marked verified on their account.
func (h *OTPHandler) Verify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpx.Error(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req otpVerifyBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json body")
		return
	}
	req.Phone = strings.TrimSpace(req.Phone)
	req.Code = strings.TrimSpace(req.Code)
	if req.Phone == "" || req.Code == "" {
		httpx.Error(w, http.StatusBadRequest, "phone and code required")
		return
	}

	switch err := h.store.Verify(r.Context(), req.Phone, req.Code); err {
	case nil:
	case otp.ErrNotFound, otp.ErrMismatch:
		httpx.Error(w, http.StatusUnauthorized, "wrong or expired code")
		return
	default:
		httpx.Error(w, http.StatusInternalServerError, "failed to verify code")
		return
	}

	if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if claims, err := h.signer.Verify(token); err == nil {
			if err := h.users.MarkPhoneVerified(r.Context(), claims.Sub); err != nil {
				h.logger.Error("failed to mark phone verified", "user_id", claims.Sub, "err", err)
			}
		}
	}

	httpx.Message(w, http.StatusOK, "phone verified")
}
