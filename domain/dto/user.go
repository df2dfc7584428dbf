package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID           uuid.UUID  `json:"id"`
	Identifier   string     `json:"identifier"`
	OwnerKind    string     `json:"ownerKind"`
	Role         string     `json:"role"`
	University   string     `json:"university"`
	Career       string     `json:"career"`
	PhotoURL     string     `json:"photoUrl"`
	DisplayName  string     `json:"displayName"`
	Phone        string     `json:"phone"`
	Bio          string     `json:"bio"`
	Semester     string     `json:"semester"`
	LinkedIn     string     `json:"linkedin"`
	Gender       string     `json:"gender"`
	LastAccessAt *time.Time `json:"lastAccessAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// UpdateProfileRequest partial update; nil fields are left untouched
type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName" validate:"omitempty,min=1,max=100"`
	University  *string `json:"university" validate:"omitempty,max=120"`
	Career      *string `json:"career" validate:"omitempty,max=120"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	Bio         *string `json:"bio" validate:"omitempty,max=500"`
	Semester    *string `json:"semester" validate:"omitempty,max=10"`
	LinkedIn    *string `json:"linkedin" validate:"omitempty,max=255"`
	Gender      *string `json:"gender" validate:"omitempty,max=40"`
}
