package sqlite

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"leadbook/internal/domain"
)

type noteRow struct {
	ID        int64  `db:"id"`
	LeadID    int64  `db:"lead_id"`
	Content   string `db:"content"`
	CreatedAt int64  `db:"created_at"`
}

func (r noteRow) note() domain.Note {
	return domain.Note{ID: r.ID, LeadID: r.LeadID, Content: r.Content, CreatedAt: fromNanos(r.CreatedAt)}
}

func (q queries) InsertNote(ctx context.Context, leadID int64, content string, now time.Time) (domain.Note, error) {
	var row noteRow
	err := sqlx.GetContext(ctx, q.q, &row, `
		INSERT INTO notes (lead_id, content, created_at) VALUES (?, ?, ?)
		RETURNING id, lead_id, content, created_at`, leadID, content, nanos(now))
	if err != nil {
		return domain.Note{}, err
	}
	return row.note(), nil
}

func (q queries) ListNotes(ctx context.Context, leadID int64) ([]domain.Note, error) {
	var rows []noteRow
	err := sqlx.SelectContext(ctx, q.q, &rows, `
		SELECT id, lead_id, content, created_at FROM notes
		WHERE lead_id = ?
		ORDER BY created_at DESC, id DESC`, leadID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Note, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.note())
	}
	return out, nil
}
