package storage

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/randevuapp/randevu/libs/db"
)

type User struct {
	ID            string
	Email         string
	PasswordHash  string
	Role          string
	DisplayName   string
	Phone         string
	PhoneVerified bool
}

type UserRepository struct {
	pool *db.Pool
}

func NewUserRepository(pool *db.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, display_name, phone)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
	`, user.ID, user.Email, user.PasswordHash, user.Role, user.DisplayName, user.Phone)
	return err
}

func (r *UserRepository) CreateTx(ctx context.Context, tx pgx.Tx, user User) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, display_name, phone)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
	`, user.ID, user.Email, user.PasswordHash, user.Role, user.DisplayName, user.Phone)
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, role, display_name, COALESCE(phone, ''), phone_verified
		FROM users
		WHERE email = $1
	`, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.DisplayName, &user.Phone, &user.PhoneVerified)
	if err != nil {
		return User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (User, error) {
	var user User
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, role, display_name, COALESCE(phone, ''), phone_verified
		FROM users
		WHERE id = $1
	`, id).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.DisplayName, &user.Phone, &user.PhoneVerified)
	if err != nil {
		return User{}, err
	}
	return user, nil
}

func (r *UserRepository) MarkPhoneVerified(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users
		SET phone_verified = TRUE
		WHERE id = $1
	`, id)
	return err
}

func IsNotFound(err error) bool {
	return err == pgx.ErrNoRows
}
