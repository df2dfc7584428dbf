package serviceimpl

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Fco200/UES-Academic-Helper/domain/models"
	"github.com/Fco200/UES-Academic-Helper/domain/ports"
	"github.com/Fco200/UES-Academic-Helper/domain/repositories"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/email"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/postgres"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/postgres/testdb"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/sms"
)

var hermosillo = func() *time.Location {
	loc, err := time.LoadLocation("America/Hermosillo")
	if err != nil {
		panic(err)
	}
	return loc
}()

// 11:00 in Hermosillo, 2026-10-15
var fixedNow = time.Date(2026, 10, 15, 18, 0, 0, 0, time.UTC)

var errTransport = errors.New("transport down")

// flakyMailer fails for the listed recipients or mail subjects and records the rest
type flakyMailer struct {
	*email.ConsoleMailer
	failFor     map[string]bool
	failSubject map[string]bool
}

func (m *flakyMailer) SendMail(ctx context.Context, msg *ports.MailMessage) (string, error) {
	if m.failFor[msg.To] || m.failSubject[msg.Subject] {
		return "", errTransport
	}
	return m.ConsoleMailer.SendMail(ctx, msg)
}

// hangingMailer never answers for hangOn subjects until ctx gives up
type hangingMailer struct {
	*email.ConsoleMailer
	hangOn map[string]bool
}

func (m *hangingMailer) SendMail(ctx context.Context, msg *ports.MailMessage) (string, error) {
	if m.hangOn[msg.Subject] {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return m.ConsoleMailer.SendMail(ctx, msg)
}

type recordingEvents struct {
	mu     sync.Mutex
	events []*ports.ReminderSentEvent
}

func (r *recordingEvents) PublishReminderSent(_ context.Context, e *ports.ReminderSentEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recordingEvents) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// failingSaveRepo loses every sweep write
type failingSaveRepo struct {
	repositories.SubjectRepository
}

func (failingSaveRepo) Save(context.Context, *models.Subject) error {
	return errors.New("disk full")
}

type reminderFixture struct {
	repo    repositories.SubjectRepository
	mailer  *flakyMailer
	sms     *sms.ConsoleSender
	events  *recordingEvents
	service *ReminderServiceImpl
}

func newReminderFixture(t *testing.T, window DueWindow) *reminderFixture {
	t.Helper()

	f := &reminderFixture{
		repo:   postgres.NewSubjectRepository(testdb.New(t)),
		mailer: &flakyMailer{ConsoleMailer: email.NewConsoleMailer(), failFor: map[string]bool{}, failSubject: map[string]bool{}},
		sms:    sms.NewConsoleSender(),
		events: &recordingEvents{},
	}
	f.service = f.newService(f.repo, NewNotificationDispatcher(f.mailer, f.sms), window)
	return f
}

func (f *reminderFixture) newService(repo repositories.SubjectRepository, dispatcher *NotificationDispatcher, window DueWindow) *ReminderServiceImpl {
	service := NewReminderService(ReminderConfig{
		Enabled:         true,
		Cron:            "0 8 * * *",
		Location:        hermosillo,
		WindowName:      "test",
		Window:          window,
		DispatchTimeout: time.Second,
	}, repo, dispatcher, f.events, nil)
	service.now = func() time.Time { return fixedNow }
	return service
}

// seed creates one subject for owner holding a task per due date
func (f *reminderFixture) seed(t *testing.T, owner models.Owner, dueDates ...string) *models.Subject {
	t.Helper()
	ctx := context.Background()

	subject := &models.Subject{Owner: owner.Value, OwnerKind: owner.Kind, Name: "Materia"}
	require.NoError(t, f.repo.Create(ctx, subject))
	for _, due := range dueDates {
		require.NoError(t, f.repo.AddTask(ctx, subject.ID, &models.Task{Description: "Tarea " + due, DueDate: due}))
	}

	loaded, err := f.repo.GetByID(ctx, subject.ID)
	require.NoError(t, err)
	return loaded
}

func emailOwner(v string) models.Owner { return models.Owner{Kind: models.OwnerKindEmail, Value: v} }
func phoneOwner(v string) models.Owner { return models.Owner{Kind: models.OwnerKindPhone, Value: v} }
