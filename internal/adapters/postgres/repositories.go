package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"leadbook/internal/domain"
)

const leadColumns = `id, name, email, source, status, follow_up_date, notes, created_at, updated_at`

func scanLead(row pgx.Row) (domain.Lead, error) {
	var l domain.Lead
	var status string
	err := row.Scan(&l.ID, &l.Name, &l.Email, &l.Source, &status, &l.FollowUpDate, &l.Notes, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return l, domain.ErrNotFound
	}
	l.Status = domain.Status(status)
	return l, err
}

// LeadRepository
func (q queries) ListLeads(ctx context.Context) ([]domain.Lead, error) {
	rows, err := q.q.Query(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (q queries) GetLead(ctx context.Context, id int64) (domain.Lead, error) {
	return scanLead(q.q.QueryRow(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id))
}

func (q queries) InsertLead(ctx context.Context, in domain.LeadInput, now time.Time) (domain.Lead, error) {
	return scanLead(q.q.QueryRow(ctx, `
        INSERT INTO leads (name, email, source, status, follow_up_date, notes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
        RETURNING `+leadColumns,
		in.Name, in.Email, in.Source, string(in.Status), in.FollowUpDate, in.Notes, now))
}

func (q queries) SaveLead(ctx context.Context, l domain.Lead) (domain.Lead, error) {
	return scanLead(q.q.QueryRow(ctx, `
        UPDATE leads
        SET name = $2, email = $3, source = $4, status = $5, follow_up_date = $6, notes = $7, updated_at = $8
        WHERE id = $1
        RETURNING `+leadColumns,
		l.ID, l.Name, l.Email, l.Source, string(l.Status), l.FollowUpDate, l.Notes, l.UpdatedAt))
}

func (q queries) DeleteLead(ctx context.Context, id int64) (bool, error) {
	tag, err := q.q.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (q queries) CountLeads(ctx context.Context) (int, error) {
	var n int
	err := q.q.QueryRow(ctx, `SELECT COUNT(*) FROM leads`).Scan(&n)
	return n, err
}

// NoteRepository
func (q queries) InsertNote(ctx context.Context, leadID int64, content string, now time.Time) (domain.Note, error) {
	var n domain.Note
	err := q.q.QueryRow(ctx, `
        INSERT INTO notes (lead_id, content, created_at) VALUES ($1, $2, $3)
        RETURNING id, lead_id, content, created_at
    `, leadID, content, now).Scan(&n.ID, &n.LeadID, &n.Content, &n.CreatedAt)
	return n, err
}

func (q queries) ListNotes(ctx context.Context, leadID int64) ([]domain.Note, error) {
	rows, err := q.q.Query(ctx, `
        SELECT id, lead_id, content, created_at FROM notes
        WHERE lead_id = $1
        ORDER BY created_at DESC, id DESC
    `, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Note{}
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.LeadID, &n.Content, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// ActivityRepository
func (q queries) InsertActivity(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	var typ string
	err := q.q.QueryRow(ctx, `
        INSERT INTO activities (lead_id, type, description, created_at) VALUES ($1, $2, $3, $4)
        RETURNING id, lead_id, type, description, created_at
    `, a.LeadID, string(a.Type), a.Description, a.CreatedAt).Scan(&a.ID, &a.LeadID, &typ, &a.Description, &a.CreatedAt)
	a.Type = domain.ActivityType(typ)
	return a, err
}

func (q queries) ListActivities(ctx context.Context, leadID int64) ([]domain.Activity, error) {
	return q.listActivities(ctx, `
        SELECT id, lead_id, type, description, created_at FROM activities
        WHERE lead_id = $1
        ORDER BY created_at DESC, id DESC
    `, leadID)
}

func (q queries) ListRecentActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	return q.listActivities(ctx, `
        SELECT id, lead_id, type, description, created_at FROM activities
        ORDER BY created_at DESC, id DESC
        LIMIT $1
    `, limit)
}

func (q queries) listActivities(ctx context.Context, query string, arg any) ([]domain.Activity, error) {
	rows, err := q.q.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Activity{}
	for rows.Next() {
		var a domain.Activity
		var typ string
		if err := rows.Scan(&a.ID, &a.LeadID, &typ, &a.Description, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Type = domain.ActivityType(typ)
		out = append(out, a)
	}
	return out, rows.Err()
}

// UserRepository
func (q queries) InsertUser(ctx context.Context, u domain.User) (domain.User, error) {
	err := q.q.QueryRow(ctx, `
        INSERT INTO users (username, password_hash, name, created_at) VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `, u.Username, u.PasswordHash, u.Name, u.CreatedAt).Scan(&u.ID, &u.CreatedAt)
	return u, err
}

func (q queries) GetUser(ctx context.Context, id int64) (domain.User, error) {
	return scanUser(q.q.QueryRow(ctx, `SELECT id, username, password_hash, name, created_at FROM users WHERE id = $1`, id))
}

func (q queries) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return scanUser(q.q.QueryRow(ctx, `SELECT id, username, password_hash, name, created_at FROM users WHERE username = $1`, username))
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, domain.ErrNotFound
	}
	return u, err
}
