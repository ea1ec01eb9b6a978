package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/randevuapp/randevu/libs/db"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/model"
)

type MessageRepository struct {
	pool *db.Pool
}

func NewMessageRepository(pool *db.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

func (r *MessageRepository) CreateTx(ctx context.Context, tx pgx.Tx, msg model.Message) (string, error) {
	id := uuid.NewString()
	_, err := tx.Exec(ctx, `
		INSERT INTO messages (id, shop_id, sender_id, receiver_id, body)
		VALUES ($1, $2, $3, $4, $5)
	`, id, msg.ShopID, msg.SenderID, msg.ReceiverID, msg.Body)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListForShop returns the thread between one user and one shop, oldest first.
// callerID keeps the query participant-scoped; the shop owner passes their
// own id plus the customer they are talking to.
func (r *MessageRepository) ListForShop(ctx context.Context, shopID, callerID string, limit int) ([]model.Message, error) {
	if limit <= 0 || limit > 1000 {
		limit = 200
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, shop_id::text, sender_id::text, receiver_id::text, body, read, created_at
		FROM messages
		WHERE shop_id = $1 AND (sender_id = $2 OR receiver_id = $2)
		ORDER BY created_at ASC
		LIMIT $3
	`, shopID, callerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.ShopID, &m.SenderID, &m.ReceiverID, &m.Body, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

// MarkRead marks every message addressed to userID in the shop thread.
func (r *MessageRepository) MarkRead(ctx context.Context, shopID, userID string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE messages
		SET read = TRUE
		WHERE shop_id = $1 AND receiver_id = $2 AND NOT read
	`, shopID, userID)
	return err
}
