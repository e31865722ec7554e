package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const selectUser = `
	SELECT id, username, email, first_name, COALESCE(last_name, ''), role
	FROM club.users
`

func (r *Repository) FindByID(ctx context.Context, id string) (User, error) {
	return r.findOne(ctx, selectUser+`WHERE id=$1;`, id)
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (User, error) {
	return r.findOne(ctx, selectUser+`WHERE username=$1;`, username)
}

func (r *Repository) findOne(ctx context.Context, sql string, arg string) (User, error) {
	var user User
	err := r.pool.QueryRow(ctx, sql, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Role,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user '%v': %w", arg, err)
	}

	return user, nil
}
