package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/randevuapp/randevu/libs/db"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/model"
)

type ShopRepository struct {
	pool *db.Pool
}

func NewShopRepository(pool *db.Pool) *ShopRepository {
	return &ShopRepository{pool: pool}
}

const shopColumns = `
	id::text, owner_id::text, name, category, description, address, city, district,
	contact, image_main, image_gallery, rating_average::float8, rating_count,
	booking_count, working_hours, is_active, is_verified, is_premium, created_at, updated_at`

func scanShop(row pgx.Row) (model.Shop, error) {
	var s model.Shop
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.Name, &s.Category, &s.Description, &s.Address, &s.City,
		&s.District, &s.Contact, &s.ImageMain, &s.ImageGallery, &s.RatingAverage,
		&s.RatingCount, &s.BookingCount, &s.WorkingHours, &s.IsActive, &s.IsVerified,
		&s.IsPremium, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *ShopRepository) Create(ctx context.Context, shop model.Shop) (string, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO shops (id, owner_id, name, category, description, address, city, district,
			contact, image_main, image_gallery, working_hours, is_active, is_premium)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, TRUE, $13)
	`, id, shop.OwnerID, shop.Name, shop.Category, shop.Description, shop.Address,
		shop.City, shop.District, shop.Contact, shop.ImageMain, shop.ImageGallery,
		shop.WorkingHours, shop.IsPremium)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Update writes owner-editable fields. The owner_id predicate makes ownership
// part of the statement itself, so a non-owner update affects zero rows.
func (r *ShopRepository) Update(ctx context.Context, shop model.Shop) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE shops
		SET name = $3, category = $4, description = $5, address = $6, city = $7,
			district = $8, contact = $9, image_main = $10, image_gallery = $11,
			working_hours = $12, is_active = $13, updated_at = now()
		WHERE id = $1 AND owner_id = $2
	`, shop.ID, shop.OwnerID, shop.Name, shop.Category, shop.Description, shop.Address,
		shop.City, shop.District, shop.Contact, shop.ImageMain, shop.ImageGallery,
		shop.WorkingHours, shop.IsActive)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ShopRepository) GetByID(ctx context.Context, id string) (model.Shop, error) {
	return scanShop(r.pool.QueryRow(ctx, `
		SELECT `+shopColumns+`
		FROM shops
		WHERE id = $1
	`, id))
}

func (r *ShopRepository) listQuery(ctx context.Context, query string, args ...any) ([]model.Shop, error) {
	rows, err := r.pool.Query(ctx, query, args...)
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

func (r *ShopRepository) ListActive(ctx context.Context, limit int) ([]model.Shop, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	return r.listQuery(ctx, `
		SELECT `+shopColumns+`
		FROM shops
		WHERE is_active
		ORDER BY is_premium DESC, rating_average DESC, booking_count DESC
		LIMIT $1
	`, limit)
}

func (r *ShopRepository) ListByCategory(ctx context.Context, category string, limit int) ([]model.Shop, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	return r.listQuery(ctx, `
		SELECT `+shopColumns+`
		FROM shops
		WHERE is_active AND lower(category) = lower($1)
		ORDER BY is_premium DESC, rating_average DESC, booking_count DESC
		LIMIT $2
	`, category, limit)
}

func (r *ShopRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Shop, error) {
	return r.listQuery(ctx, `
		SELECT `+shopColumns+`
		FROM shops
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
}

func (r *ShopRepository) OwnerOf(ctx context.Context, shopID string) (string, error) {
	var ownerID string
	err := r.pool.QueryRow(ctx, `
		SELECT owner_id::text FROM shops WHERE id = $1
	`, shopID).Scan(&ownerID)
	return ownerID, err
}

func (r *ShopRepository) IncrementBookingCount(ctx context.Context, tx pgx.Tx, shopID string) error {
	_, err := tx.Exec(ctx, `
		UPDATE shops
		SET booking_count = booking_count + 1, updated_at = now()
		WHERE id = $1
	`, shopID)
	return err
}

// RecalculateRating recomputes the aggregate from the reviews table inside the
// caller's transaction, so review writes and the aggregate stay consistent.
func (r *ShopRepository) RecalculateRating(ctx context.Context, tx pgx.Tx, shopID string) error {
	_, err := tx.Exec(ctx, `
		UPDATE shops
		SET rating_average = COALESCE((SELECT AVG(rating) FROM reviews WHERE shop_id = $1), 0),
			rating_count = (SELECT COUNT(*) FROM reviews WHERE shop_id = $1),
			updated_at = now()
		WHERE id = $1
	`, shopID)
	return err
}

func IsNotFound(err error) bool {
	return err == pgx.ErrNoRows
}
