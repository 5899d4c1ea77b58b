package repository

import (
	"context"
	"errors"

	"bookhaven/internal/domain/user"
	"bookhaven/internal/infra"
	"bookhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail returns the user read model together with the stored
// password hash; the hash never leaves the auth use case.
func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error) {
	var rm readmodel.AuthorizedUserRM
	var passwordHash string
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, role, is_active, last_login_at, created_at, password_hash
		FROM users
		WHERE email = $1`,
		email.Value(),
	).Scan(&rm.ID, &rm.Name, &rm.Email, &rm.Role, &rm.IsActive, &rm.LastLogin, &rm.CreatedAt, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &rm, passwordHash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	var rm readmodel.AuthorizedUserRM
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, role, is_active, last_login_at, created_at
		FROM users
		WHERE id = $1`,
		id,
	).Scan(&rm.ID, &rm.Name, &rm.Email, &rm.Role, &rm.IsActive, &rm.LastLogin, &rm.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &rm, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID(), u.Name(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.IsActive(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err, infra.ClassifyPgError(err))
	}
	return u.ID(), nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login_at = now() WHERE id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
