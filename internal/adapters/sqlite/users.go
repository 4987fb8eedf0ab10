package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"leadbook/internal/domain"
)

type userRow struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	Name         string `db:"name"`
	CreatedAt    int64  `db:"created_at"`
}

func (r userRow) user() domain.User {
	return domain.User{ID: r.ID, Username: r.Username, PasswordHash: r.PasswordHash, Name: r.Name, CreatedAt: fromNanos(r.CreatedAt)}
}

func (q queries) InsertUser(ctx context.Context, u domain.User) (domain.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, q.q, &row, `
		INSERT INTO users (username, password_hash, name, created_at) VALUES (?, ?, ?, ?)
		RETURNING id, username, password_hash, name, created_at`,
		u.Username, u.PasswordHash, u.Name, nanos(u.CreatedAt))
	if err != nil {
		return domain.User{}, err
	}
	return row.user(), nil
}

func (q queries) GetUser(ctx context.Context, id int64) (domain.User, error) {
	return q.getUser(ctx, `SELECT id, username, password_hash, name, created_at FROM users WHERE id = ?`, id)
}

func (q queries) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return q.getUser(ctx, `SELECT id, username, password_hash, name, created_at FROM users WHERE username = ?`, username)
}

func (q queries) getUser(ctx context.Context, query string, arg any) (domain.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, q.q, &row, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return row.user(), nil
}
