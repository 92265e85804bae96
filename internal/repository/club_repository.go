package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unimeet/unimeet-api/internal/domain"
)

// ClubRepository defines read access to clubs.
type ClubRepository interface {
	List(ctx context.Context) ([]domain.Club, error)
	GetByID(ctx context.Context, id int64) (*domain.Club, error)
}

type clubRepository struct {
	pool *pgxpool.Pool
}

// NewClubRepository returns a Postgres-backed implementation.
func NewClubRepository(pool *pgxpool.Pool) ClubRepository {
	return &clubRepository{pool: pool}
}

func (r *clubRepository) List(ctx context.Context) ([]domain.Club, error) {
	const query = `
        SELECT id, name, description
        FROM clubs
        ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clubs := make([]domain.Club, 0)
	for rows.Next() {
		var club domain.Club
		if err := rows.Scan(&club.ID, &club.Name, &club.Description); err != nil {
			return nil, err
		}
		clubs = append(clubs, club)
	}
	return clubs, rows.Err()
}

func (r *clubRepository) GetByID(ctx context.Context, id int64) (*domain.Club, error) {
	const query = `
        SELECT id, name, description
        FROM clubs WHERE id=$1`

	var club domain.Club
	if err := r.pool.QueryRow(ctx, query, id).Scan(&club.ID, &club.Name, &club.Description); err != nil {
		return nil, err
	}
	return &club, nil
}
