package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"leadbook/internal/domain"
)

type activityRow struct {
	ID          int64  `db:"id"`
	LeadID      int64  `db:"lead_id"`
	Type        string `db:"type"`
	Description string `db:"description"`
	CreatedAt   int64  `db:"created_at"`
}

func (r activityRow) activity() domain.Activity {
	return domain.Activity{
		ID:          r.ID,
		LeadID:      r.LeadID,
		Type:        domain.ActivityType(r.Type),
		Description: r.Description,
		CreatedAt:   fromNanos(r.CreatedAt),
	}
}

func activities(rows []activityRow) []domain.Activity {
	out := make([]domain.Activity, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.activity())
	}
	return out
}

func (q queries) InsertActivity(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	var row activityRow
	err := sqlx.GetContext(ctx, q.q, &row, `
		INSERT INTO activities (lead_id, type, description, created_at) VALUES (?, ?, ?, ?)
		RETURNING id, lead_id, type, description, created_at`,
		a.LeadID, string(a.Type), a.Description, nanos(a.CreatedAt))
	if err != nil {
		return domain.Activity{}, err
	}
	return row.activity(), nil
}

func (q queries) ListActivities(ctx context.Context, leadID int64) ([]domain.Activity, error) {
	var rows []activityRow
	err := sqlx.SelectContext(ctx, q.q, &rows, `
		SELECT id, lead_id, type, description, created_at FROM activities
		WHERE lead_id = ?
		ORDER BY created_at DESC, id DESC`, leadID)
	if err != nil {
		return nil, err
	}
	return activities(rows), nil
}

func (q queries) ListRecentActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	var rows []activityRow
	err := sqlx.SelectContext(ctx, q.q, &rows, `
		SELECT id, lead_id, type, description, created_at FROM activities
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	return activities(rows), nil
}
