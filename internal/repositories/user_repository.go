package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/propertyhub/listings-api/internal/models"
	"github.com/propertyhub/listings-api/internal/utils"
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// First returns any user record, or nil when the table is empty. Used as
	// the last fallback when resolving a listing owner.
	First(ctx context.Context) (*models.User, error)

	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)

	SetResetToken(ctx context.Context, id uuid.UUID, token *string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

func baseSelectUser() string {
	return `SELECT id, username, email, password_hash, role, reset_token, created_at FROM users`
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.ResetToken, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, username, email, password_hash, role, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.CreatedAt)
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, baseSelectUser()+" WHERE id=$1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, baseSelectUser()+" WHERE lower(username)=lower($1)", username))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, baseSelectUser()+" WHERE lower(email)=lower($1)", email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

func (r *userRepo) First(ctx context.Context) (*models.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, baseSelectUser()+" ORDER BY created_at LIMIT 1"))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

func (r *userRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE lower(username)=lower($1))`, username).Scan(&exists)
	return exists, err
}

func (r *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE lower(email)=lower($1))`, email).Scan(&exists)
	return exists, err
}

func (r *userRepo) SetResetToken(ctx context.Context, id uuid.UUID, token *string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET reset_token=$1 WHERE id=$2`, token, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET password_hash=$1, reset_token=NULL WHERE id=$2`, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}
