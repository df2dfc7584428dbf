package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/Fco200/UES-Academic-Helper/domain/models"
	"github.com/Fco200/UES-Academic-Helper/domain/ports"
	"github.com/Fco200/UES-Academic-Helper/domain/repositories"
	"github.com/Fco200/UES-Academic-Helper/domain/services"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
	"github.com/Fco200/UES-Academic-Helper/pkg/scheduler"
)

const ReminderSweepJobID = "reminder_sweep"

// DueWindow is the inclusive range of day offsets (due - today) that get a reminder
type DueWindow struct {
	From int
	To   int
}

var (
	WindowTodayTomorrow = DueWindow{From: 0, To: 1}
	WindowAround        = DueWindow{From: -1, To: 1}
)

// ParseDueWindow accepts "today_tomorrow" and "around"
func ParseDueWindow(name string) (DueWindow, error) {
	switch name {
	case "", "today_tomorrow":
		return WindowTodayTomorrow, nil
	case "around":
		return WindowAround, nil
	default:
		return DueWindow{}, fmt.Errorf("unknown reminder window %q", name)
	}
}

func (w DueWindow) Contains(days int) bool {
	return days >= w.From && days <= w.To
}

// ReminderConfig การตั้งค่าสำหรับ reminder sweep
type ReminderConfig struct {
	Enabled         bool
	Cron            string
	Location        *time.Location // "today" is computed here
	WindowName      string
	Window          DueWindow
	DispatchTimeout time.Duration
}

type ReminderServiceImpl struct {
	config      ReminderConfig
	subjectRepo repositories.SubjectRepository
	dispatcher  services.NotificationDispatcher
	events      ports.EventPublisherPort
	scheduler   scheduler.EventScheduler
	now         func() time.Time

	sweepMu sync.Mutex
	running atomic.Bool
	// sendSlot is held by a sweep or a single-task send, never both
	sendSlot chan struct{}

	lastMu    sync.RWMutex
	lastSweep *services.SweepResult
}

var _ services.ReminderService = (*ReminderServiceImpl)(nil)

func NewReminderService(
	config ReminderConfig,
	subjectRepo repositories.SubjectRepository,
	dispatcher services.NotificationDispatcher,
	events ports.EventPublisherPort,
	eventScheduler scheduler.EventScheduler,
) *ReminderServiceImpl {
	service := &ReminderServiceImpl{
		config:      config,
		subjectRepo: subjectRepo,
		dispatcher:  dispatcher,
		events:      events,
		scheduler:   eventScheduler,
		now:         time.Now,
		sendSlot:    make(chan struct{}, 1),
	}

	// Set defaults
	if service.config.Location == nil {
		service.config.Location = time.UTC
	}
	if service.config.Window == (DueWindow{}) && service.config.WindowName == "" {
		service.config.Window = WindowTodayTomorrow
		service.config.WindowName = "today_tomorrow"
	}
	if service.config.DispatchTimeout == 0 {
		service.config.DispatchTimeout = 15 * time.Second
	}
	if service.config.Cron == "" {
		service.config.Cron = "0 8 * * *"
	}
	if service.events == nil {
		service.events = noopEvents{}
	}

	return service
}

// RegisterSweepJob ลงทะเบียน sweep job กับ scheduler
func (s *ReminderServiceImpl) RegisterSweepJob() error {
	if !s.config.Enabled {
		logger.Info("Reminder sweep disabled")
		return nil
	}

	return s.scheduler.AddJob(ReminderSweepJobID, s.config.Cron, func() {
		ctx := logger.ContextWithRequestID(context.Background(), "sweep-"+uuid.NewString()[:8])
		if _, err := s.RunSweep(ctx); err != nil {
			logger.ErrorContext(ctx, "Scheduled reminder sweep failed", "error", err)
		}
	})
}

// today returns the current civil date in the reminder zone, as midnight UTC
func (s *ReminderServiceImpl) today() time.Time {
	t := s.now().In(s.config.Location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysUntil is the signed number of calendar days from today to the task's due date
func daysUntil(today time.Time, task *models.Task) (int, error) {
	due, err := task.ParseDueDate()
	if err != nil {
		return 0, err
	}
	return int(due.Sub(today) / (24 * time.Hour)), nil
}

func (s *ReminderServiceImpl) IsDueToday(dueDate string) bool {
	days, err := daysUntil(s.today(), &models.Task{DueDate: dueDate})
	return err == nil && days == 0
}

// acquireSend waits for the send slot or ctx
func (s *ReminderServiceImpl) acquireSend(ctx context.Context) error {
	select {
	case s.sendSlot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *ReminderServiceImpl) releaseSend() {
	<-s.sendSlot
}

// RunSweep walks every subject in store order and notifies due tasks one at a time.
// Failures are counted per task or per subject and never stop the sweep.
func (s *ReminderServiceImpl) RunSweep(ctx context.Context) (*services.SweepResult, error) {
	if !s.sweepMu.TryLock() {
		logger.WarnContext(ctx, "Reminder sweep skipped, another sweep is running")
		return nil, services.ErrSweepInProgress
	}
	defer s.sweepMu.Unlock()
	s.running.Store(true)
	defer s.running.Store(false)

	if err := s.acquireSend(ctx); err != nil {
		return nil, fmt.Errorf("wait for pending reminder: %w", err)
	}
	defer s.releaseSend()

	startedAt := s.now()
	today := s.today()
	result := &services.SweepResult{
		Date:      today.Format(models.DueDateLayout),
		StartedAt: startedAt,
	}

	subjects, err := s.subjectRepo.FindAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load subjects for reminder sweep", "error", err)
		return nil, fmt.Errorf("load subjects: %w", err)
	}

	for _, subject := range subjects {
		if ctx.Err() != nil {
			logger.WarnContext(ctx, "Reminder sweep interrupted", "error", ctx.Err())
			break
		}
		result.SubjectsScanned++

		if s.sweepSubject(ctx, subject, today, result) {
			if err := s.subjectRepo.Save(ctx, subject); err != nil {
				result.SaveFailures++
				logger.ErrorContext(ctx, "Failed to save subject after reminders",
					"subject_id", subject.ID,
					"error", err,
				)
			}
		}
	}

	result.Duration = s.now().Sub(startedAt)
	s.setLastSweep(result)

	logger.InfoContext(ctx, "Reminder sweep completed",
		"date", result.Date,
		"window", s.config.WindowName,
		"subjects", result.SubjectsScanned,
		"checked", result.TasksChecked,
		"sent", result.Sent,
		"failed", result.Failed,
		"invalid_dates", result.SkippedInvalidDate,
		"save_failures", result.SaveFailures,
		"duration", result.Duration,
	)

	return result, nil
}

// sweepSubject reports whether any task of the subject was flagged
func (s *ReminderServiceImpl) sweepSubject(ctx context.Context, subject *models.Subject, today time.Time, result *services.SweepResult) bool {
	owner := subject.OwnerValue()
	mutated := false

	for i := range subject.Tasks {
		task := &subject.Tasks[i]
		if task.ReminderSent {
			continue
		}
		result.TasksChecked++

		days, err := daysUntil(today, task)
		if err != nil {
			result.SkippedInvalidDate++
			logger.WarnContext(ctx, "Skipping task with malformed due date",
				"subject_id", subject.ID,
				"task_id", task.ID,
				"due_date", task.DueDate,
			)
			continue
		}
		if !s.config.Window.Contains(days) {
			continue
		}

		delivery, err := s.dispatch(ctx, owner, task)
		if err != nil {
			result.Failed++
			logger.ErrorContext(ctx, "Reminder dispatch failed",
				"subject_id", subject.ID,
				"task_id", task.ID,
				"channel", owner.Kind,
				"error", err,
			)
			continue
		}

		task.ReminderSent = true
		mutated = true
		result.Sent++
		s.publishSent(ctx, subject, task, delivery)
	}

	return mutated
}

// dispatch bounds one transport call with the configured timeout
func (s *ReminderServiceImpl) dispatch(ctx context.Context, owner models.Owner, task *models.Task) (*services.Delivery, error) {
	dctx, cancel := context.WithTimeout(ctx, s.config.DispatchTimeout)
	defer cancel()

	return s.dispatcher.Dispatch(dctx, services.Reminder{
		Owner:       owner,
		Description: task.Description,
		DueDate:     task.DueDate,
	})
}

func (s *ReminderServiceImpl) publishSent(ctx context.Context, subject *models.Subject, task *models.Task, delivery *services.Delivery) {
	event := &ports.ReminderSentEvent{
		SubjectID: subject.ID.String(),
		TaskID:    task.ID.String(),
		Owner:     subject.Owner,
		Channel:   string(delivery.Channel),
		DueDate:   task.DueDate,
		MessageID: delivery.MessageID,
		SentAt:    s.now().UTC(),
	}
	if err := s.events.PublishReminderSent(ctx, event); err != nil {
		logger.WarnContext(ctx, "Reminder event not published", "task_id", task.ID, "error", err)
	}
}

// SendTaskReminder is the single-task form of the sweep, used by the manual endpoint.
// It waits while a sweep is running and then reads the task fresh, so the two never
// notify the same task.
func (s *ReminderServiceImpl) SendTaskReminder(ctx context.Context, owner models.Owner, subjectID, taskID uuid.UUID) (*services.Delivery, error) {
	if err := s.acquireSend(ctx); err != nil {
		return nil, err
	}
	defer s.releaseSend()

	subject, err := s.subjectRepo.GetByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrSubjectNotFound
		}
		return nil, err
	}
	if subject.Owner != owner.Value {
		return nil, services.ErrSubjectNotFound
	}

	task := subject.FindTask(taskID)
	if task == nil {
		return nil, services.ErrTaskNotFound
	}
	if task.ReminderSent {
		return nil, services.ErrReminderAlreadySent
	}

	delivery, err := s.dispatch(ctx, subject.OwnerValue(), task)
	if err != nil {
		logger.ErrorContext(ctx, "Manual reminder failed", "task_id", task.ID, "error", err)
		return nil, err
	}

	if err := s.subjectRepo.MarkReminderSent(ctx, subject.ID, task.ID); err != nil {
		if errors.Is(err, repositories.ErrAlreadyMarked) {
			logger.WarnContext(ctx, "Reminder flag was already set", "task_id", task.ID)
			return nil, services.ErrReminderAlreadySent
		}
		logger.ErrorContext(ctx, "Reminder sent but flag not saved", "task_id", task.ID, "error", err)
		return nil, fmt.Errorf("mark reminder sent: %w", err)
	}

	task.ReminderSent = true
	s.publishSent(ctx, subject, task, delivery)
	logger.InfoContext(ctx, "Manual reminder sent", "task_id", task.ID, "channel", delivery.Channel)
	return delivery, nil
}

func (s *ReminderServiceImpl) setLastSweep(result *services.SweepResult) {
	s.lastMu.Lock()
	defer s.lastMu.Unlock()
	copied := *result
	s.lastSweep = &copied
}

func (s *ReminderServiceImpl) Status() *services.ReminderStatus {
	status := &services.ReminderStatus{
		Enabled:  s.config.Enabled,
		Cron:     s.config.Cron,
		Timezone: s.config.Location.String(),
		Window:   s.config.WindowName,
		Running:  s.running.Load(),
	}

	if s.scheduler != nil {
		if job, ok := s.scheduler.GetJob(ReminderSweepJobID); ok {
			status.LastRun = job.LastRun
			status.NextRun = job.NextRun
		}
		for _, job := range s.scheduler.ListJobs() {
			status.Jobs = append(status.Jobs, services.ScheduledJob{
				ID:      job.ID,
				Cron:    job.CronExpr,
				Active:  job.IsActive,
				LastRun: job.LastRun,
				NextRun: job.NextRun,
			})
		}
		sort.Slice(status.Jobs, func(i, j int) bool { return status.Jobs[i].ID < status.Jobs[j].ID })
	}

	s.lastMu.RLock()
	if s.lastSweep != nil {
		copied := *s.lastSweep
		status.LastSweep = &copied
	}
	s.lastMu.RUnlock()

	return status
}

type noopEvents struct{}

func (noopEvents) PublishReminderSent(context.Context, *ports.ReminderSentEvent) error {
	return nil
}
