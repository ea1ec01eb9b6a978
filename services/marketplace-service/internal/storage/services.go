package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/randevuapp/randevu/libs/db"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/model"
)

// CatalogRepository covers the per-shop catalog: offered services and staff.
type CatalogRepository struct {
	pool *db.Pool
}

func NewCatalogRepository(pool *db.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) CreateService(ctx context.Context, svc model.ShopService) (string, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO shop_services (id, shop_id, name, duration_minutes, price, discounted_price, description)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, 0), $7)
	`, id, svc.ShopID, svc.Name, svc.DurationMinutes, svc.Price, svc.DiscountedPrice, svc.Description)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *CatalogRepository) UpdateService(ctx context.Context, svc model.ShopService) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE shop_services
		SET name = $3, duration_minutes = $4, price = $5, discounted_price = NULLIF($6, 0), description = $7
		WHERE id = $1 AND shop_id = $2
	`, svc.ID, svc.ShopID, svc.Name, svc.DurationMinutes, svc.Price, svc.DiscountedPrice, svc.Description)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *CatalogRepository) DeleteService(ctx context.Context, shopID, serviceID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM shop_services
		WHERE id = $1 AND shop_id = $2
	`, serviceID, shopID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *CatalogRepository) ListServices(ctx context.Context, shopID string) ([]model.ShopService, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, shop_id::text, name, duration_minutes, price::float8,
			COALESCE(discounted_price::float8, 0), description, created_at
		FROM shop_services
		WHERE shop_id = $1
		ORDER BY created_at ASC
	`, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ShopService
	for rows.Next() {
		var s model.ShopService
		if err := rows.Scan(&s.ID, &s.ShopID, &s.Name, &s.DurationMinutes, &s.Price, &s.DiscountedPrice, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *CatalogRepository) GetService(ctx context.Context, shopID, serviceID string) (model.ShopService, error) {
	var s model.ShopService
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, shop_id::text, name, duration_minutes, price::float8,
			COALESCE(discounted_price::float8, 0), description, created_at
		FROM shop_services
		WHERE id = $1 AND shop_id = $2
	`, serviceID, shopID).Scan(&s.ID, &s.ShopID, &s.Name, &s.DurationMinutes, &s.Price, &s.DiscountedPrice, &s.Description, &s.CreatedAt)
	return s, err
}

func (r *CatalogRepository) CreateStaff(ctx context.Context, st model.Staff) (string, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO staff (id, shop_id, name, is_active)
		VALUES ($1, $2, $3, $4)
	`, id, st.ShopID, st.Name, st.IsActive)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *CatalogRepository) DeleteStaff(ctx context.Context, shopID, staffID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM staff
		WHERE id = $1 AND shop_id = $2
	`, staffID, shopID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *CatalogRepository) ListStaff(ctx context.Context, shopID string) ([]model.Staff, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, shop_id::text, name, is_active, created_at
		FROM staff
		WHERE shop_id = $1
		ORDER BY created_at ASC
	`, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Staff
	for rows.Next() {
		var s model.Staff
		if err := rows.Scan(&s.ID, &s.ShopID, &s.Name, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}
