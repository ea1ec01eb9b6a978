package storage

import (
	"context"

	"github.com/randevuapp/randevu/libs/db"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/model"
)

type ProfileRepository struct {
	pool *db.Pool
}

func NewProfileRepository(pool *db.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// GetOrCreate seeds an empty profile on first read so the client always has
// a row to edit.
func (r *ProfileRepository) GetOrCreate(ctx context.Context, userID string) (model.Profile, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO profiles (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`, userID)
	if err != nil {
		return model.Profile{}, err
	}

	var p model.Profile
	err = r.pool.QueryRow(ctx, `
		SELECT user_id::text, name, phone, photo_url, updated_at
		FROM profiles
		WHERE user_id = $1
	`, userID).Scan(&p.UserID, &p.Name, &p.Phone, &p.PhotoURL, &p.UpdatedAt)
	return p, err
}

func (r *ProfileRepository) Update(ctx context.Context, p model.Profile) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO profiles (user_id, name, phone, photo_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			photo_url = EXCLUDED.photo_url,
			updated_at = now()
	`, p.UserID, p.Name, p.Phone, p.PhotoURL)
	return err
}
