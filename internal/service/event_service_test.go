package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/unimeet/unimeet-api/internal/domain"
)

var (
	manager = &domain.User{ID: 7, Role: domain.RoleManager, IsActive: true}
	admin   = &domain.User{ID: 8, Role: domain.RoleAdmin, IsActive: true}
	member  = &domain.User{ID: 9, Role: domain.RoleMember, IsActive: true}
)

func newEventService() (*EventService, *fakeEventRepo, *fakeClubRepo) {
	clubs := newFakeClubRepo(domain.Club{ID: 1, Name: "Bilişim Kulübü"})
	events := newFakeEventRepo(clubs)
	return NewEventService(events, clubs), events, clubs
}

func validInput() EventInput {
	return EventInput{
		Title:    "Kickoff",
		Location: "Hall A",
		StartAt:  time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Quota:    50,
		ClubID:   1,
	}
}

func TestCreateRequiresManagerOrAdmin(t *testing.T) {
	svc, _, _ := newEventService()

	_, err := svc.Create(context.Background(), member, validInput())
	requireDomainError(t, err, "FORBIDDEN")

	_, err = svc.Create(context.Background(), nil, validInput())
	requireDomainError(t, err, "UNAUTHORIZED")

	for _, actor := range []*domain.User{manager, admin} {
		_, err := svc.Create(context.Background(), actor, validInput())
		require.NoError(t, err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := newEventService()
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	earlier := start.Add(-time.Hour)

	cases := []struct {
		name    string
		mutate  func(*EventInput)
		message string
	}{
		{"blank title", func(in *EventInput) { in.Title = "   " }, "Etkinlik adı zorunludur."},
		{"blank location", func(in *EventInput) { in.Location = "" }, "Etkinlik yeri zorunludur."},
		{"zero quota", func(in *EventInput) { in.Quota = 0 }, "Kontenjan en az 1 olmalıdır."},
		{"negative quota", func(in *EventInput) { in.Quota = -3 }, "Kontenjan en az 1 olmalıdır."},
		{"end before start", func(in *EventInput) { in.EndAt = &earlier }, "Bitiş, başlangıçtan önce olamaz."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)
			_, err := svc.Create(context.Background(), manager, input)
			domainErr := requireDomainError(t, err, "VALIDATION_FAILED")
			require.Equal(t, tc.message, domainErr.Message)
		})
	}
}

func TestCreateEndEqualToStartIsAllowed(t *testing.T) {
	svc, _, _ := newEventService()
	input := validInput()
	end := input.StartAt
	input.EndAt = &end

	_, err := svc.Create(context.Background(), manager, input)
	require.NoError(t, err)
}

func TestCreateNormalizesFields(t *testing.T) {
	svc, _, _ := newEventService()
	istanbul := time.FixedZone("TRT", 3*60*60)
	desc := "  açılış etkinliği  "
	end := time.Date(2025, 3, 1, 15, 0, 0, 0, istanbul)

	input := EventInput{
		Title:       "  Kickoff  ",
		Location:    " Hall A ",
		StartAt:     time.Date(2025, 3, 1, 13, 0, 0, 0, istanbul),
		EndAt:       &end,
		Quota:       50,
		ClubID:      1,
		Description: &desc,
	}
	event, err := svc.Create(context.Background(), manager, input)
	require.NoError(t, err)

	require.Equal(t, "Kickoff", event.Title)
	require.Equal(t, "Hall A", event.Location)
	require.Equal(t, time.UTC, event.StartAt.Location())
	require.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), event.StartAt)
	require.NotNil(t, event.EndAt)
	require.Equal(t, time.UTC, event.EndAt.Location())
	require.NotNil(t, event.Description)
	require.Equal(t, "açılış etkinliği", *event.Description)
	require.False(t, event.IsCancelled)
	require.Equal(t, manager.ID, event.CreatedByUserID)
	require.False(t, event.CreatedAt.IsZero())
	require.NotNil(t, event.ClubName)
	require.Equal(t, "Bilişim Kulübü", *event.ClubName)
}

func TestCreateBlankDescriptionStoredAsAbsent(t *testing.T) {
	svc, _, _ := newEventService()
	blank := "   "
	input := validInput()
	input.Description = &blank

	event, err := svc.Create(context.Background(), manager, input)
	require.NoError(t, err)
	require.Nil(t, event.Description)
}

func TestCreateWithUnknownClubYieldsNilName(t *testing.T) {
	svc, _, _ := newEventService()
	input := validInput()
	input.ClubID = 999

	event, err := svc.Create(context.Background(), manager, input)
	require.NoError(t, err)
	require.Nil(t, event.ClubName)
}

func TestGetNotFound(t *testing.T) {
	svc, _, _ := newEventService()

	_, err := svc.Get(context.Background(), 42)
	domainErr := requireDomainError(t, err, "NOT_FOUND")
	require.Equal(t, "Etkinlik bulunamadı.", domainErr.Message)
}

func TestUpdateNotFound(t *testing.T) {
	svc, _, _ := newEventService()

	_, err := svc.Update(context.Background(), manager, 42, validInput())
	requireDomainError(t, err, "NOT_FOUND")
}

func TestUpdateReplacesFields(t *testing.T) {
	svc, _, _ := newEventService()
	created, err := svc.Create(context.Background(), manager, validInput())
	require.NoError(t, err)

	input := validInput()
	input.Title = "Kickoff v2"
	input.Quota = 80

	updated, err := svc.Update(context.Background(), manager, created.ID, input)
	require.NoError(t, err)
	require.Equal(t, "Kickoff v2", updated.Title)
	require.Equal(t, 80, updated.Quota)
	require.False(t, updated.IsCancelled)
}

func TestUpdateHonorsCancelledOverride(t *testing.T) {
	svc, _, _ := newEventService()
	created, err := svc.Create(context.Background(), manager, validInput())
	require.NoError(t, err)

	cancelled := true
	input := validInput()
	input.IsCancelled = &cancelled
	updated, err := svc.Update(context.Background(), manager, created.ID, input)
	require.NoError(t, err)
	require.True(t, updated.IsCancelled)

	// Omitting the flag preserves the stored value.
	updated, err = svc.Update(context.Background(), manager, created.ID, validInput())
	require.NoError(t, err)
	require.True(t, updated.IsCancelled)

	// Supplying false un-cancels through update; only DELETE is one-way.
	notCancelled := false
	input = validInput()
	input.IsCancelled = &notCancelled
	updated, err = svc.Update(context.Background(), manager, created.ID, input)
	require.NoError(t, err)
	require.False(t, updated.IsCancelled)
}

func TestUpdateRequiresManagerRole(t *testing.T) {
	svc, _, _ := newEventService()
	created, err := svc.Create(context.Background(), manager, validInput())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), member, created.ID, validInput())
	requireDomainError(t, err, "FORBIDDEN")
}

func TestCancelIsIdempotent(t *testing.T) {
	svc, _, _ := newEventService()
	created, err := svc.Create(context.Background(), manager, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(context.Background(), manager, created.ID))
	require.NoError(t, svc.Cancel(context.Background(), manager, created.ID))

	event, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.True(t, event.IsCancelled)
}

func TestCancelUnknownIDNotFound(t *testing.T) {
	svc, _, _ := newEventService()

	err := svc.Cancel(context.Background(), manager, 42)
	requireDomainError(t, err, "NOT_FOUND")
}

func TestCancelRequiresManagerRole(t *testing.T) {
	svc, _, _ := newEventService()
	created, err := svc.Create(context.Background(), manager, validInput())
	require.NoError(t, err)

	err = svc.Cancel(context.Background(), member, created.ID)
	requireDomainError(t, err, "FORBIDDEN")
}

func TestListOrdersByStartAndFiltersCancelled(t *testing.T) {
	svc, _, _ := newEventService()

	later := validInput()
	later.Title = "Later"
	later.StartAt = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	createdLater, err := svc.Create(context.Background(), manager, later)
	require.NoError(t, err)

	earlier := validInput()
	earlier.Title = "Earlier"
	earlier.StartAt = time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	_, err = svc.Create(context.Background(), manager, earlier)
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(context.Background(), manager, createdLater.ID))

	visible, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	require.Equal(t, "Earlier", visible[0].Title)

	all, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "Earlier", all[0].Title)
	require.Equal(t, "Later", all[1].Title)
}
