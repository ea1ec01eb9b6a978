package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/randevuapp/randevu/libs/db"
	"github.com/randevuapp/randevu/services/booking-service/internal/lifecycle"
	"github.com/randevuapp/randevu/services/booking-service/internal/model"
	"github.com/randevuapp/randevu/services/booking-service/internal/timeshape"
)

type AppointmentRepository struct {
	pool *db.Pool
}

func NewAppointmentRepository(pool *db.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

func (r *AppointmentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

const appointmentColumns = `
	id, shop_id, service_id, user_id, COALESCE(staff_id::text, ''),
	status, start_time, end_time, legacy_date, price, COALESCE(notes, ''),
	user_confirmed, business_confirmed,
	COALESCE(cancel_reason, ''), COALESCE(canceled_by, ''), canceled_at,
	created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanAppointment normalizes legacy rows at the read boundary: old status
// strings map onto the current state set, and rows that predate the
// start_time column carry their instant in the legacy_date jsonb in one of
// several shapes. Nothing past this function sees either legacy form.
func scanAppointment(row rowScanner) (model.Appointment, error) {
	var (
		appt      model.Appointment
		rawStatus string
		start     *time.Time
		end       *time.Time
		legacy    []byte
	)
	err := row.Scan(
		&appt.ID,
		&appt.ShopID,
		&appt.ServiceID,
		&appt.UserID,
		&appt.StaffID,
		&rawStatus,
		&start,
		&end,
		&legacy,
		&appt.Price,
		&appt.Notes,
		&appt.UserConfirmed,
		&appt.BusinessConfirmed,
		&appt.CancelReason,
		&appt.CanceledBy,
		&appt.CanceledAt,
		&appt.CreatedAt,
		&appt.UpdatedAt,
	)
	if err != nil {
		return model.Appointment{}, err
	}

	status, err := lifecycle.Normalize(rawStatus)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("appointment %s: %w", appt.ID, err)
	}
	appt.Status = status

	switch {
	case start != nil:
		appt.StartTime = start.UTC()
	case len(legacy) > 0:
		normalized, err := timeshape.Normalize(json.RawMessage(legacy))
		if err != nil {
			return model.Appointment{}, err
		}
		appt.StartTime = normalized
	}
	if end != nil {
		appt.EndTime = end.UTC()
	} else if !appt.StartTime.IsZero() {
		appt.EndTime = appt.StartTime.Add(time.Hour)
	}
	return appt, nil
}

func (r *AppointmentRepository) Create(ctx context.Context, tx pgx.Tx, appt *model.Appointment) (string, time.Time, error) {
	var (
		id        string
		createdAt time.Time
	)
	err := tx.QueryRow(ctx, `
		INSERT INTO appointments
			(shop_id, service_id, user_id, staff_id, status, start_time, end_time, price, notes,
			 user_confirmed, business_confirmed)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, $6, $7, $8, NULLIF($9, ''), false, false)
		RETURNING id, created_at
	`, appt.ShopID, appt.ServiceID, appt.UserID, appt.StaffID, string(appt.Status),
		appt.StartTime, appt.EndTime, appt.Price, appt.Notes).Scan(&id, &createdAt)
	if err != nil {
		return "", time.Time{}, err
	}
	return id, createdAt, nil
}

func (r *AppointmentRepository) GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (model.Appointment, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE id = $1
		FOR UPDATE
	`, id)
	return scanAppointment(row)
}

func (r *AppointmentRepository) MarkUserConfirmed(ctx context.Context, tx pgx.Tx, id string) error {
	_, err := tx.Exec(ctx, `
		UPDATE appointments
		SET status = $2, user_confirmed = true, updated_at = now()
		WHERE id = $1
	`, id, string(lifecycle.PendingBusinessConfirmation))
	return err
}

func (r *AppointmentRepository) MarkBusinessConfirmed(ctx context.Context, tx pgx.Tx, id string) error {
	_, err := tx.Exec(ctx, `
		UPDATE appointments
		SET status = $2, business_confirmed = true, updated_at = now()
		WHERE id = $1
	`, id, string(lifecycle.Confirmed))
	return err
}

func (r *AppointmentRepository) MarkCompleted(ctx context.Context, tx pgx.Tx, id string) error {
	_, err := tx.Exec(ctx, `
		UPDATE appointments
		SET status = $2, updated_at = now()
		WHERE id = $1
	`, id, string(lifecycle.Completed))
	return err
}

func (r *AppointmentRepository) Cancel(ctx context.Context, tx pgx.Tx, id, reason, canceledBy string) (time.Time, error) {
	var canceledAt time.Time
	err := tx.QueryRow(ctx, `
		UPDATE appointments
		SET status = $2,
			cancel_reason = NULLIF($3, ''),
			canceled_by = $4,
			canceled_at = now(),
			updated_at = now()
		WHERE id = $1
		RETURNING canceled_at
	`, id, string(lifecycle.Canceled), reason, canceledBy).Scan(&canceledAt)
	return canceledAt, err
}

func (r *AppointmentRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.Appointment, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func (r *AppointmentRepository) ListByShop(ctx context.Context, shopID string, limit int) ([]model.Appointment, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE shop_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, shopID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func collectAppointments(rows pgx.Rows) ([]model.Appointment, error) {
	var appts []model.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, appt)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return appts, nil
}

// IsConflict reports an exclusion-constraint violation, raised when two
// appointments for the same staff member overlap in time.
func IsConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
