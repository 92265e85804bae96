package service

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/unimeet/unimeet-api/internal/domain"
)

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[int64]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = r.nextID
	user.CreatedAt = time.Now().UTC()
	r.nextID++
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) count() int {
	return len(r.users)
}

type fakeClubRepo struct {
	clubs map[int64]domain.Club
}

func newFakeClubRepo(clubs ...domain.Club) *fakeClubRepo {
	repo := &fakeClubRepo{clubs: make(map[int64]domain.Club)}
	for _, club := range clubs {
		repo.clubs[club.ID] = club
	}
	return repo
}

func (r *fakeClubRepo) List(_ context.Context) ([]domain.Club, error) {
	clubs := make([]domain.Club, 0, len(r.clubs))
	for _, club := range r.clubs {
		clubs = append(clubs, club)
	}
	sort.Slice(clubs, func(i, j int) bool { return clubs[i].Name < clubs[j].Name })
	return clubs, nil
}

func (r *fakeClubRepo) GetByID(_ context.Context, id int64) (*domain.Club, error) {
	club, ok := r.clubs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &club, nil
}

type fakeEventRepo struct {
	nextID int64
	events map[int64]*domain.Event
	clubs  *fakeClubRepo
}

func newFakeEventRepo(clubs *fakeClubRepo) *fakeEventRepo {
	return &fakeEventRepo{nextID: 1, events: make(map[int64]*domain.Event), clubs: clubs}
}

func (r *fakeEventRepo) Create(_ context.Context, event *domain.Event) error {
	event.ID = r.nextID
	r.nextID++
	stored := *event
	r.events[event.ID] = &stored
	return nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *domain.Event, overrideCancelled *bool) error {
	existing, ok := r.events[event.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	existing.Title = event.Title
	existing.Location = event.Location
	existing.StartAt = event.StartAt
	existing.EndAt = event.EndAt
	existing.Quota = event.Quota
	existing.ClubID = event.ClubID
	existing.Description = event.Description
	if overrideCancelled != nil {
		existing.IsCancelled = *overrideCancelled
	}
	return nil
}

func (r *fakeEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *event
	r.resolveClubName(ctx, &copied)
	return &copied, nil
}

func (r *fakeEventRepo) List(ctx context.Context, includeCancelled bool) ([]domain.Event, error) {
	events := make([]domain.Event, 0, len(r.events))
	for _, event := range r.events {
		if !includeCancelled && event.IsCancelled {
			continue
		}
		copied := *event
		r.resolveClubName(ctx, &copied)
		events = append(events, copied)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].StartAt.Before(events[j].StartAt) })
	return events, nil
}

func (r *fakeEventRepo) SetCancelled(_ context.Context, id int64, cancelled bool) error {
	event, ok := r.events[id]
	if !ok {
		return pgx.ErrNoRows
	}
	event.IsCancelled = cancelled
	return nil
}

// Mirrors the LEFT JOIN the real repository performs on reads.
func (r *fakeEventRepo) resolveClubName(ctx context.Context, event *domain.Event) {
	if r.clubs == nil {
		return
	}
	if club, err := r.clubs.GetByID(ctx, event.ClubID); err == nil {
		event.ClubName = &club.Name
	}
}
