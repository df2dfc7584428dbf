package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type News struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	Title       string    `gorm:"size:255;not null"`
	Slug        string    `gorm:"size:255;index"`
	Content     string    `gorm:"type:text;not null"`
	ImageURL    string
	PublishedAt time.Time `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (News) TableName() string {
	return "news"
}

func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.PublishedAt.IsZero() {
		n.PublishedAt = time.Now()
	}
	return nil
}
