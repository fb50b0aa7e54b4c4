package repository

import (
	"context"
	"errors"

	"github.com/connect237/busconnect/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	AddLoyaltyPoints(ctx context.Context, userID string, points int) error
}

type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db}
}

func (r *PGUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, email, phone, first_name, last_name, loyalty_points, created_at
		FROM users WHERE id=$1`, id)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.Phone, &u.FirstName, &u.LastName, &u.LoyaltyPoints, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundf("user %q", id)
		}
		return nil, domain.StorageError("get user", err)
	}
	return &u, nil
}

func (r *PGUserRepository) AddLoyaltyPoints(ctx context.Context, userID string, points int) error {
	cmd, err := r.db.Exec(ctx, `UPDATE users SET loyalty_points = loyalty_points + $1 WHERE id=$2`, points, userID)
	if err != nil {
		return domain.StorageError("add loyalty points", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFoundf("user %q", userID)
	}
	return nil
}

var _ UserRepository = (*PGUserRepository)(nil)
