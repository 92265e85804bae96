package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/unimeet/unimeet-api/internal/auth"
	"github.com/unimeet/unimeet-api/internal/domain"
	"github.com/unimeet/unimeet-api/internal/repository"
	apperrors "github.com/unimeet/unimeet-api/pkg/util"
)

// EventInput describes the full mutable field set of an event. IsCancelled
// is honored on update only, and only when the caller supplies it.
type EventInput struct {
	Title       string
	Location    string
	StartAt     time.Time
	EndAt       *time.Time
	Quota       int
	ClubID      int64
	Description *string
	IsCancelled *bool
}

// EventService implements role-gated event CRUD with soft cancellation.
type EventService struct {
	events repository.EventRepository
	clubs  repository.ClubRepository
	now    func() time.Time
}

// NewEventService constructs the service.
func NewEventService(events repository.EventRepository, clubs repository.ClubRepository) *EventService {
	return &EventService{events: events, clubs: clubs, now: time.Now}
}

// List returns events ordered by start time ascending. Cancelled events are
// excluded unless includeCancelled is set. Public.
func (s *EventService) List(ctx context.Context, includeCancelled bool) ([]domain.Event, error) {
	events, err := s.events.List(ctx, includeCancelled)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return events, nil
}

// Get returns a single event by id. Public.
func (s *EventService) Get(ctx context.Context, id int64) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Etkinlik bulunamadı.")
		}
		return nil, apperrors.MapError(err)
	}
	return event, nil
}

// Create validates and stores a new event on behalf of actor.
func (s *EventService) Create(ctx context.Context, actor *domain.User, input EventInput) (*domain.Event, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	event := &domain.Event{
		Title:           strings.TrimSpace(input.Title),
		Location:        strings.TrimSpace(input.Location),
		StartAt:         input.StartAt.UTC(),
		EndAt:           utcOrNil(input.EndAt),
		Quota:           input.Quota,
		ClubID:          input.ClubID,
		Description:     normalizeDescription(input.Description),
		IsCancelled:     false,
		CreatedByUserID: actor.ID,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, apperrors.MapError(err)
	}

	// Resolve the club display name for the response; a dangling club
	// reference leaves the name nil.
	if club, err := s.clubs.GetByID(ctx, event.ClubID); err == nil {
		event.ClubName = &club.Name
	} else if err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}
	return event, nil
}

// Update replaces all mutable fields of an event, optionally overriding the
// cancelled flag when the caller supplies it.
func (s *EventService) Update(ctx context.Context, actor *domain.User, id int64, input EventInput) (*domain.Event, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:          id,
		Title:       strings.TrimSpace(input.Title),
		Location:    strings.TrimSpace(input.Location),
		StartAt:     input.StartAt.UTC(),
		EndAt:       utcOrNil(input.EndAt),
		Quota:       input.Quota,
		ClubID:      input.ClubID,
		Description: normalizeDescription(input.Description),
	}
	if err := s.events.Update(ctx, event, input.IsCancelled); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Etkinlik bulunamadı.")
		}
		return nil, apperrors.MapError(err)
	}

	updated, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return updated, nil
}

// Cancel marks an event cancelled. The row is retained; cancelling an
// already-cancelled event succeeds.
func (s *EventService) Cancel(ctx context.Context, actor *domain.User, id int64) error {
	if err := requireManager(actor); err != nil {
		return err
	}
	if err := s.events.SetCancelled(ctx, id, true); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("Etkinlik bulunamadı.")
		}
		return apperrors.MapError(err)
	}
	return nil
}

func requireManager(actor *domain.User) error {
	if actor == nil {
		return apperrors.NewUnauthorized("Kullanıcı bilgisi alınamadı.")
	}
	if !auth.RoleAllowed(actor.Role, auth.ManagerRoles...) {
		return apperrors.NewForbidden("Bu işlem için yetkiniz yok.")
	}
	return nil
}

func validateEventInput(input EventInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return apperrors.NewValidationError("Etkinlik adı zorunludur.")
	}
	if strings.TrimSpace(input.Location) == "" {
		return apperrors.NewValidationError("Etkinlik yeri zorunludur.")
	}
	if input.Quota < 1 {
		return apperrors.NewValidationError("Kontenjan en az 1 olmalıdır.")
	}
	if input.EndAt != nil && input.EndAt.Before(input.StartAt) {
		return apperrors.NewValidationError("Bitiş, başlangıçtan önce olamaz.")
	}
	return nil
}

func utcOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}

func normalizeDescription(desc *string) *string {
	if desc == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*desc)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
