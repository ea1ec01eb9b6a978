package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/randevuapp/randevu/libs/db"
)

// Recipient is a local projection of auth users, maintained from
// auth.user.created.v1 events so e-mail delivery never calls back into the
// auth service.
type Recipient struct {
	UserID      string
	Email       string
	DisplayName string
}

type RecipientRepository struct {
	pool *db.Pool
}

func NewRecipientRepository(pool *db.Pool) *RecipientRepository {
	return &RecipientRepository{pool: pool}
}

func (r *RecipientRepository) Upsert(ctx context.Context, rec Recipient) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO notification_recipients (user_id, email, display_name)
		VALUES ($1, $2, NULLIF($3, ''))
		ON CONFLICT (user_id) DO UPDATE SET email = EXCLUDED.email, display_name = EXCLUDED.display_name
	`, rec.UserID, rec.Email, rec.DisplayName)
	return err
}

func (r *RecipientRepository) Get(ctx context.Context, userID string) (Recipient, error) {
	var rec Recipient
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, email, COALESCE(display_name, '')
		FROM notification_recipients
		WHERE user_id = $1
	`, userID).Scan(&rec.UserID, &rec.Email, &rec.DisplayName)
	if err != nil {
		return Recipient{}, err
	}
	return rec, nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
