package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subject is a course owned by one student, holding that student's tasks
type Subject struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	Owner     string    `gorm:"size:255;not null;index"`
	OwnerKind OwnerKind `gorm:"size:16;not null"`
	Name      string    `gorm:"size:255;not null"`
	Tasks     []Task    `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Subject) TableName() string {
	return "subjects"
}

func (s *Subject) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// OwnerValue returns the tagged owner stored on the row
func (s *Subject) OwnerValue() Owner {
	return Owner{Kind: s.OwnerKind, Value: s.Owner}
}

// FindTask returns a pointer into s.Tasks so callers can mutate in place
func (s *Subject) FindTask(id uuid.UUID) *Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}
