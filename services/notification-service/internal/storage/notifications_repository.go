package storage

import (
	"context"
	"time"

	"github.com/randevuapp/randevu/libs/db"
)

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	RelatedID string    `json:"related_id,omitempty"`
	IsRead    bool      `json:"is_read"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type Repository struct {
	pool *db.Pool
}

func NewRepository(pool *db.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Insert(ctx context.Context, n Notification) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO notifications (user_id, type, title, message, related_id, status)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		RETURNING id
	`, n.UserID, n.Type, n.Title, n.Message, n.RelatedID, n.Status).Scan(&id)
	return id, err
}

func (r *Repository) ListByUser(ctx context.Context, userID string, limit int) ([]Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, type, title, message, COALESCE(related_id, ''), is_read, status, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.RelatedID, &n.IsRead, &n.Status, &n.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return items, nil
}

// MarkRead flags the given notifications as read. The user predicate keeps
// callers from acknowledging someone else's feed.
func (r *Repository) MarkRead(ctx context.Context, userID string, ids []string) error {
	if len(ids) == 0 {
		_, err := r.pool.Exec(ctx, `
			UPDATE notifications SET is_read = true WHERE user_id = $1 AND is_read = false
		`, userID)
		return err
	}
	_, err := r.pool.Exec(ctx, `
		UPDATE notifications SET is_read = true WHERE user_id = $1 AND id = ANY($2)
	`, userID, ids)
	return err
}
