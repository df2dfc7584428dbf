package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	DefaultPhotoURL    = "https://cdn-icons-png.flaticon.com/512/3135/3135715.png"
	DefaultDisplayName = "Estudiante UES"
	DefaultSemester    = "1"
	DefaultGender      = "No especificado"
)

type User struct {
	ID           uuid.UUID `gorm:"primaryKey;type:uuid"`
	Identifier   string    `gorm:"size:255;uniqueIndex;not null"` // normalized email or E.164 phone
	OwnerKind    OwnerKind `gorm:"size:16;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"size:16;default:'user'"` // user, admin
	University   string
	Career       string
	PhotoURL     string
	DisplayName  string
	Phone        string
	Bio          string
	Semester     string
	LinkedIn     string
	Gender       string
	LastAccessAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsAdmin ตรวจสอบว่าเป็น admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) Owner() Owner {
	return Owner{Kind: u.OwnerKind, Value: u.Identifier}
}

// ApplyDefaults fills the profile fields a new account starts with
func (u *User) ApplyDefaults(university, career string) {
	if u.Role == "" {
		u.Role = RoleUser
	}
	if u.University == "" {
		u.University = university
	}
	if u.Career == "" {
		u.Career = career
	}
	if u.PhotoURL == "" {
		u.PhotoURL = DefaultPhotoURL
	}
	if u.DisplayName == "" {
		u.DisplayName = DefaultDisplayName
	}
	if u.Semester == "" {
		u.Semester = DefaultSemester
	}
	if u.Gender == "" {
		u.Gender = DefaultGender
	}
}
