package repository_test

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-planner/internal/adapter/repository"
	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	"github.com/johnquangdev/meeting-planner/internal/domain/repositories"
	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
	"github.com/johnquangdev/meeting-planner/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-planner/pkg/config"
)

// newTestDB connects to the database described by the DB_* variables and
// applies the migrations. Tests are skipped when DB_HOST is unset.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST is not set")
	}

	cfg, err := config.FromEnv()
	gt.NoError(t, err).Required()
	db, err := database.NewPostgresDB(cfg, zap.NewNop())
	gt.NoError(t, err).Required()
	t.Cleanup(func() { _ = database.CloseDB(db) })

	_, err = database.Migrate(db, "../../../migrations", migrate.Up, 0)
	gt.NoError(t, err).Required()
	return db
}

type fixture struct {
	meetings repositories.MeetingRepository
	meeting  *entities.Meeting
	people   map[string]*entities.Participant
}

// newFixture stores one participant per name and a meeting that invites the
// first invited of them, all pending.
func newFixture(t *testing.T, invited int, names ...string) *fixture {
	t.Helper()
	ctx := context.Background()
	db := newTestDB(t)
	participants := repository.NewParticipantRepository(db)
	suffix := uuid.NewString()[:8]

	f := &fixture{
		meetings: repository.NewMeetingRepository(db),
		people:   make(map[string]*entities.Participant, len(names)),
	}
	t.Cleanup(func() {
		db.Where("email LIKE ?", "%+"+suffix+"@x.com").Delete(&entities.Participant{})
	})

	for _, name := range names {
		email := fmt.Sprintf("%s+%s@x.com", strings.ToLower(name), suffix)
		gt.NoError(t, participants.Upsert(ctx, &entities.Participant{Name: name, Email: email})).Required()
		p, err := participants.FindByEmail(ctx, email)
		gt.NoError(t, err).Required()
		f.people[name] = p
	}

	f.meeting = &entities.Meeting{
		MeetingKey:  uuid.NewString(),
		Title:       "Planning",
		Description: "Sprint planning",
		Organizer:   "alice@x.com",
		Location:    "Room 1",
		Date:        datatypes.Date(time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC)),
		StartTime:   "09:00",
		EndTime:     "10:00",
	}
	for _, name := range names[:invited] {
		f.meeting.Invitations = append(f.meeting.Invitations, entities.Invitation{
			ParticipantID: f.people[name].ID,
			Response:      entities.ResponsePending,
		})
	}
	gt.NoError(t, f.meetings.Create(ctx, f.meeting)).Required()
	t.Cleanup(func() {
		db.Delete(&entities.Meeting{}, "id = ?", f.meeting.ID)
	})
	return f
}

func (f *fixture) reload(t *testing.T) *entities.Meeting {
	t.Helper()
	m, err := f.meetings.FindByKey(context.Background(), f.meeting.MeetingKey)
	gt.NoError(t, err).Required()
	return m
}

func (f *fixture) respond(t *testing.T, name string, resp entities.InvitationResponse) {
	t.Helper()
	err := f.meetings.SetResponse(context.Background(), f.meeting.ID, f.people[name].ID, resp)
	gt.NoError(t, err).Required()
}

// responses maps participant name to invitation response
func responses(m *entities.Meeting) map[string]entities.InvitationResponse {
	out := make(map[string]entities.InvitationResponse, len(m.Invitations))
	for _, inv := range m.Invitations {
		out[inv.Participant.Name] = inv.Response
	}
	return out
}

func TestReplaceAttendance(t *testing.T) {
	f := newFixture(t, 4, "Alice", "Bob", "Carol", "Dan", "Erin")
	f.respond(t, "Bob", entities.ResponseNo)
	f.respond(t, "Carol", entities.ResponseNo)
	f.respond(t, "Dan", entities.ResponseYes)

	ids := []uuid.UUID{f.people["Alice"].ID, f.people["Bob"].ID, f.people["Erin"].ID}
	gt.NoError(t, f.meetings.ReplaceAttendance(context.Background(), f.meeting.ID, ids)).Required()

	m := f.reload(t)
	got := responses(m)
	gt.Value(t, len(got)).Equal(4)
	// still invited, untouched
	gt.Value(t, got["Alice"]).Equal(entities.ResponsePending)
	// declined but sent again: invited again
	gt.Value(t, got["Bob"]).Equal(entities.ResponsePending)
	// declined and left out: keeps the decline
	gt.Value(t, got["Carol"]).Equal(entities.ResponseNo)
	// not declined and left out: invitation removed
	_, ok := got["Dan"]
	gt.Bool(t, ok).False()
	// not invited before: invited as pending
	gt.Value(t, got["Erin"]).Equal(entities.ResponsePending)

	for _, inv := range m.Invitations {
		if inv.Participant.Name == "Bob" {
			gt.Value(t, inv.RespondedAt).Nil()
		}
	}

	available, notAvailable := m.Partition()
	gt.Array(t, available).Length(3)
	gt.Array(t, notAvailable).Length(1)
	gt.Value(t, notAvailable[0].Name).Equal("Carol")
}

func TestReplaceAttendanceWithEmptySetKeepsDeclines(t *testing.T) {
	f := newFixture(t, 2, "Alice", "Bob")
	f.respond(t, "Bob", entities.ResponseNo)

	gt.NoError(t, f.meetings.ReplaceAttendance(context.Background(), f.meeting.ID, nil)).Required()

	got := responses(f.reload(t))
	gt.Value(t, got).Equal(map[string]entities.InvitationResponse{"Bob": entities.ResponseNo})
}

func TestSetResponse(t *testing.T) {
	f := newFixture(t, 1, "Alice", "Bob")
	ctx := context.Background()

	err := f.meetings.SetResponse(ctx, f.meeting.ID, f.people["Bob"].ID, entities.ResponseYes)
	gt.Error(t, err).Is(gorm.ErrRecordNotFound)

	f.respond(t, "Alice", entities.ResponseNo)
	m := f.reload(t)
	gt.Array(t, m.Invitations).Length(1)
	gt.Value(t, m.Invitations[0].Response).Equal(entities.ResponseNo)
	gt.Value(t, m.Invitations[0].RespondedAt).NotNil()
}

func TestReplaceActionItemsFollowsPosition(t *testing.T) {
	f := newFixture(t, 1, "Alice")
	ctx := context.Background()

	replace := func(texts ...string) {
		t.Helper()
		rows := make([]entities.ActionItem, 0, len(texts))
		for i, text := range texts {
			row, err := entities.NewActionItem(f.meeting.ID, i, scheduling.ActionItem{Item: text})
			gt.NoError(t, err).Required()
			rows = append(rows, row)
		}
		gt.NoError(t, f.meetings.ReplaceActionItems(ctx, f.meeting.ID, rows)).Required()
	}
	items := func() []string {
		t.Helper()
		var out []string
		for _, it := range f.reload(t).ActionItems {
			out = append(out, it.Item)
		}
		return out
	}

	replace("Book room", "Send agenda", "Collect notes")
	gt.Value(t, items()).Equal([]string{"Book room", "Send agenda", "Collect notes"})

	replace("Collect notes", "Book room")
	gt.Value(t, items()).Equal([]string{"Collect notes", "Book room"})

	replace()
	gt.Array(t, items()).Length(0)
}

func TestInvitationsInsertedTogetherHaveStableOrder(t *testing.T) {
	f := newFixture(t, 4, "Alice", "Bob", "Carol", "Dan")

	ids := func(m *entities.Meeting) []string {
		out := make([]string, 0, len(m.Invitations))
		for _, inv := range m.Invitations {
			out = append(out, inv.ID.String())
		}
		return out
	}

	m := f.reload(t)
	gt.Array(t, m.Invitations).Length(4)
	want := append([]entities.Invitation(nil), m.Invitations...)
	sort.SliceStable(want, func(i, j int) bool {
		if !want[i].CreatedAt.Equal(want[j].CreatedAt) {
			return want[i].CreatedAt.Before(want[j].CreatedAt)
		}
		return want[i].ID.String() < want[j].ID.String()
	})
	first := ids(m)
	gt.Value(t, first).Equal(ids(&entities.Meeting{Invitations: want}))
	for i := 0; i < 3; i++ {
		gt.Value(t, ids(f.reload(t))).Equal(first)
	}
}
