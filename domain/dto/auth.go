package dto

// LoginRequest identifier is an email or a phone number
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,max=255"`
	Password   string `json:"password" validate:"required,min=1,max=72"`
	University string `json:"university" validate:"omitempty,max=120"`
	Career     string `json:"career" validate:"omitempty,max=120"`
}

type LoginResponse struct {
	Token   string       `json:"token"`
	Created bool         `json:"created"`
	User    UserResponse `json:"user"`
}

type RecoveryRequest struct {
	Identifier string `json:"identifier" validate:"required,max=255"`
}

type RecoveryConfirmRequest struct {
	Identifier  string `json:"identifier" validate:"required,max=255"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" validate:"required,min=4,max=72"`
}
