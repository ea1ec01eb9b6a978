package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/randevuapp/randevu/libs/db"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/model"
)

type ReviewRepository struct {
	pool *db.Pool
}

func NewReviewRepository(pool *db.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) CreateTx(ctx context.Context, tx pgx.Tx, review model.Review) (string, error) {
	id := uuid.NewString()
	_, err := tx.Exec(ctx, `
		INSERT INTO reviews (id, shop_id, user_id, appointment_id, rating, comment)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, $6)
	`, id, review.ShopID, review.UserID, review.AppointmentID, review.Rating, review.Comment)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (model.Review, error) {
	var rv model.Review
	var appointmentID *string
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, shop_id::text, user_id::text, appointment_id::text, rating, comment, created_at, updated_at
		FROM reviews
		WHERE id = $1
	`, id).Scan(&rv.ID, &rv.ShopID, &rv.UserID, &appointmentID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return model.Review{}, err
	}
	if appointmentID != nil {
		rv.AppointmentID = *appointmentID
	}
	return rv, nil
}

// UpdateTx only touches rows authored by userID; zero rows means not-found or
// not the author, which callers surface the same way.
func (r *ReviewRepository) UpdateTx(ctx context.Context, tx pgx.Tx, id, userID string, rating int, comment string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE reviews
		SET rating = $3, comment = $4, updated_at = now()
		WHERE id = $1 AND user_id = $2
	`, id, userID, rating, comment)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ReviewRepository) DeleteTx(ctx context.Context, tx pgx.Tx, id, userID string) error {
	tag, err := tx.Exec(ctx, `
		DELETE FROM reviews
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ReviewRepository) list(ctx context.Context, query string, args ...any) ([]model.Review, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Review
	for rows.Next() {
		var rv model.Review
		var appointmentID *string
		if err := rows.Scan(&rv.ID, &rv.ShopID, &rv.UserID, &appointmentID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		if appointmentID != nil {
			rv.AppointmentID = *appointmentID
		}
		out = append(out, rv)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *ReviewRepository) ListByShop(ctx context.Context, shopID string, limit int) ([]model.Review, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return r.list(ctx, `
		SELECT id::text, shop_id::text, user_id::text, appointment_id::text, rating, comment, created_at, updated_at
		FROM reviews
		WHERE shop_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, shopID, limit)
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.Review, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return r.list(ctx, `
		SELECT id::text, shop_id::text, user_id::text, appointment_id::text, rating, comment, created_at, updated_at
		FROM reviews
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
}
