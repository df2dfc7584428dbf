package services

import (
	"context"
	"time"

	"github.com/Fco200/UES-Academic-Helper/domain/models"
	"github.com/google/uuid"
)

// Reminder is what the dispatcher needs to notify one task
type Reminder struct {
	Owner       models.Owner
	Description string
	DueDate     string
}

// Delivery describes a message accepted by a transport
type Delivery struct {
	Channel   models.OwnerKind
	MessageID string
}

// NotificationDispatcher picks the channel from the owner and sends one message
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, reminder Reminder) (*Delivery, error)
	Notify(ctx context.Context, owner models.Owner, subject, body string) (*Delivery, error)
}

// SweepResult summarizes one pass over the task store
type SweepResult struct {
	Date               string
	SubjectsScanned    int
	TasksChecked       int
	Sent               int
	Failed             int
	SkippedInvalidDate int
	SaveFailures       int
	StartedAt          time.Time
	Duration           time.Duration
}

// ReminderStatus is the scheduler view of the sweep job
type ReminderStatus struct {
	Enabled   bool
	Cron      string
	Timezone  string
	Window    string
	Running   bool
	LastRun   *time.Time
	NextRun   *time.Time
	LastSweep *SweepResult
	Jobs      []ScheduledJob
}

type ScheduledJob struct {
	ID      string
	Cron    string
	Active  bool
	LastRun *time.Time
	NextRun *time.Time
}

type ReminderService interface {
	// RunSweep notifies every due task whose reminder has not been sent.
	// Returns ErrSweepInProgress when another sweep is running.
	RunSweep(ctx context.Context) (*SweepResult, error)
	SendTaskReminder(ctx context.Context, owner models.Owner, subjectID, taskID uuid.UUID) (*Delivery, error)
	// IsDueToday reports whether a YYYY-MM-DD date is today in the reminder zone
	IsDueToday(dueDate string) bool
	Status() *ReminderStatus
}
