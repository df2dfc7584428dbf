package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DueDateLayout is the date-only format of Task.DueDate
const DueDateLayout = "2006-01-02"

type Task struct {
	ID           uuid.UUID `gorm:"primaryKey;type:uuid"`
	SubjectID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Position     int       `gorm:"not null;default:0"`
	Description  string    `gorm:"not null"`
	DueDate      string    `gorm:"size:10;not null"`
	Completed    bool      `gorm:"not null;default:false"`
	ReminderSent bool      `gorm:"not null;default:false"` // written only by reminder paths, never reset
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Task) TableName() string {
	return "tasks"
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// ParseDueDate reads DueDate as a civil date (midnight UTC)
func (t *Task) ParseDueDate() (time.Time, error) {
	return time.Parse(DueDateLayout, t.DueDate)
}
