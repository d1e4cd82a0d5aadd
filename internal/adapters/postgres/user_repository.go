package postgres

import (
	"context"
	"errors"
	"fmt"

	"jewelstore/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

const userColumns = `id, phone, name, email, address, pincode, created_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func (r *UserRepository) Create(ctx context.Context, u domain.User) error {
	const q = `
		insert into users (id, phone, name, email, address, pincode, created_at)
		values ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, q, u.ID, u.Phone, u.Name, u.Email, u.Address, u.Pincode, u.CreatedAt)
	if err != nil {
		if hasPgCode(err, uniqueViolation) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, `select `+userColumns+` from users where phone = $1`, phone).Scan(
		&u.ID, &u.Phone, &u.Name, &u.Email, &u.Address, &u.Pincode, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("failed to select user by phone: %w", err)
	}
	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `select `+userColumns+` from users order by created_at desc`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0, 32)
	for rows.Next() {
		var u domain.User
		if err = rows.Scan(&u.ID, &u.Phone, &u.Name, &u.Email, &u.Address, &u.Pincode, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

func isForeignKeyViolation(err error) bool {
	return hasPgCode(err, foreignKeyViolation)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}
