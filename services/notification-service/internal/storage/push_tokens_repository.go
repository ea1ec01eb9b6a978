package storage

import (
	"context"

	"github.com/randevuapp/randevu/libs/db"
)

type PushToken struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
	Topic  string `json:"topic,omitempty"`
}

type PushTokenRepository struct {
	pool *db.Pool
}

func NewPushTokenRepository(pool *db.Pool) *PushTokenRepository {
	return &PushTokenRepository{pool: pool}
}

// Subscribe is idempotent per (user, token); re-subscribing updates the topic.
func (r *PushTokenRepository) Subscribe(ctx context.Context, t PushToken) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO push_tokens (user_id, token, topic)
		VALUES ($1, $2, NULLIF($3, ''))
		ON CONFLICT (user_id, token) DO UPDATE SET topic = EXCLUDED.topic
	`, t.UserID, t.Token, t.Topic)
	return err
}

func (r *PushTokenRepository) ListForUser(ctx context.Context, userID string) ([]PushToken, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, token, COALESCE(topic, '')
		FROM push_tokens
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []PushToken
	for rows.Next() {
		var t PushToken
		if err := rows.Scan(&t.UserID, &t.Token, &t.Topic); err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return tokens, nil
}
