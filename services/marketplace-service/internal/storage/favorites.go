package storage

import (
	"context"

	"github.com/randevuapp/randevu/libs/db"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/model"
)

type FavoriteRepository struct {
	pool *db.Pool
}

func NewFavoriteRepository(pool *db.Pool) *FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

// Add is idempotent: favoriting twice is a no-op.
func (r *FavoriteRepository) Add(ctx context.Context, userID, shopID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO favorites (user_id, shop_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, shop_id) DO NOTHING
	`, userID, shopID)
	return err
}

// Remove is idempotent: removing an absent favorite is a no-op.
func (r *FavoriteRepository) Remove(ctx context.Context, userID, shopID string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM favorites
		WHERE user_id = $1 AND shop_id = $2
	`, userID, shopID)
	return err
}

// ListShops returns the favorited shops as assembled cards in one query.
func (r *FavoriteRepository) ListShops(ctx context.Context, userID string) ([]model.Shop, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+shopColumns+`
		FROM shops
		JOIN favorites f ON f.shop_id = shops.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Shop
	for rows.Next() {
		s, err := scanShop(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}
