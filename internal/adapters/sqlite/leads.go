package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"leadbook/internal/domain"
)

const leadColumns = `id, name, email, source, status, follow_up_date, notes, created_at, updated_at`

type leadRow struct {
	ID           int64          `db:"id"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	Source       string         `db:"source"`
	Status       string         `db:"status"`
	FollowUpDate textTime       `db:"follow_up_date"`
	Notes        sql.NullString `db:"notes"`
	CreatedAt    int64          `db:"created_at"`
	UpdatedAt    int64          `db:"updated_at"`
}

func (r leadRow) lead() domain.Lead {
	return domain.Lead{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Source:       r.Source,
		Status:       domain.Status(r.Status),
		FollowUpDate: r.FollowUpDate.ptr(),
		Notes:        fromNullString(r.Notes),
		CreatedAt:    fromNanos(r.CreatedAt),
		UpdatedAt:    fromNanos(r.UpdatedAt),
	}
}

func (q queries) ListLeads(ctx context.Context) ([]domain.Lead, error) {
	var rows []leadRow
	if err := sqlx.SelectContext(ctx, q.q, &rows, `SELECT `+leadColumns+` FROM leads ORDER BY created_at DESC, id DESC`); err != nil {
		return nil, err
	}
	out := make([]domain.Lead, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.lead())
	}
	return out, nil
}

func (q queries) GetLead(ctx context.Context, id int64) (domain.Lead, error) {
	var row leadRow
	err := sqlx.GetContext(ctx, q.q, &row, `SELECT `+leadColumns+` FROM leads WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Lead{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Lead{}, err
	}
	return row.lead(), nil
}

func (q queries) InsertLead(ctx context.Context, in domain.LeadInput, now time.Time) (domain.Lead, error) {
	var row leadRow
	err := sqlx.GetContext(ctx, q.q, &row, `
		INSERT INTO leads (name, email, source, status, follow_up_date, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+leadColumns,
		in.Name, in.Email, in.Source, string(in.Status), nullText(in.FollowUpDate), nullString(in.Notes), nanos(now), nanos(now))
	if err != nil {
		return domain.Lead{}, err
	}
	return row.lead(), nil
}

func (q queries) SaveLead(ctx context.Context, l domain.Lead) (domain.Lead, error) {
	var row leadRow
	err := sqlx.GetContext(ctx, q.q, &row, `
		UPDATE leads
		SET name = ?, email = ?, source = ?, status = ?, follow_up_date = ?, notes = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+leadColumns,
		l.Name, l.Email, l.Source, string(l.Status), nullText(l.FollowUpDate), nullString(l.Notes), nanos(l.UpdatedAt), l.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Lead{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Lead{}, err
	}
	return row.lead(), nil
}

func (q queries) DeleteLead(ctx context.Context, id int64) (bool, error) {
	res, err := q.q.ExecContext(ctx, `DELETE FROM leads WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (q queries) CountLeads(ctx context.Context) (int, error) {
	var n int
	err := sqlx.GetContext(ctx, q.q, &n, `SELECT COUNT(*) FROM leads`)
	return n, err
}
