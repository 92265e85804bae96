package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unimeet/unimeet-api/internal/domain"
)

// EventRepository defines persistence access for events.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, event *domain.Event, overrideCancelled *bool) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context, includeCancelled bool) ([]domain.Event, error)
	SetCancelled(ctx context.Context, id int64, cancelled bool) error
}

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository returns a Postgres-backed implementation.
func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

// eventColumns joins clubs so reads carry the club display name; a missing
// club yields NULL rather than dropping the row.
const eventColumns = `
        e.id, e.title, e.location, e.start_at, e.end_at, e.quota,
        e.club_id, c.name, e.description, e.is_cancelled,
        e.created_by_user_id, e.created_at
    FROM events e
    LEFT JOIN clubs c ON c.id = e.club_id`

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	const query = `
        INSERT INTO events
            (title, location, start_at, end_at, quota, club_id, description,
             is_cancelled, created_by_user_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		event.Title,
		event.Location,
		event.StartAt,
		event.EndAt,
		event.Quota,
		event.ClubID,
		event.Description,
		event.IsCancelled,
		event.CreatedByUserID,
		event.CreatedAt,
	).Scan(&event.ID)
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event, overrideCancelled *bool) error {
	const query = `
        UPDATE events SET
            title=$1, location=$2, start_at=$3, end_at=$4, quota=$5,
            club_id=$6, description=$7,
            is_cancelled=COALESCE($8, is_cancelled)
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		event.Title,
		event.Location,
		event.StartAt,
		event.EndAt,
		event.Quota,
		event.ClubID,
		event.Description,
		overrideCancelled,
		event.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT` + eventColumns + ` WHERE e.id=$1`

	var event domain.Event
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Location,
		&event.StartAt,
		&event.EndAt,
		&event.Quota,
		&event.ClubID,
		&event.ClubName,
		&event.Description,
		&event.IsCancelled,
		&event.CreatedByUserID,
		&event.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context, includeCancelled bool) ([]domain.Event, error) {
	query := `SELECT` + eventColumns
	if !includeCancelled {
		query += ` WHERE NOT e.is_cancelled`
	}
	query += ` ORDER BY e.start_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]domain.Event, 0)
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Location,
			&event.StartAt,
			&event.EndAt,
			&event.Quota,
			&event.ClubID,
			&event.ClubName,
			&event.Description,
			&event.IsCancelled,
			&event.CreatedByUserID,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *eventRepository) SetCancelled(ctx context.Context, id int64, cancelled bool) error {
	const query = `UPDATE events SET is_cancelled=$1 WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, cancelled, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
