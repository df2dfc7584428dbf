package handlers

import (
	"github.com/Fco200/UES-Academic-Helper/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService     services.UserService
	RecoveryService services.RecoveryService
	SubjectService  services.SubjectService
	ReminderService services.ReminderService
	NewsService     services.NewsService
	ChatService     services.ChatService
	MaxUploadSize   int64 // profile photo limit in bytes
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	SubjectHandler  *SubjectHandler
	ReminderHandler *ReminderHandler
	NewsHandler     *NewsHandler
	ChatHandler     *ChatHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:     NewAuthHandler(services.UserService, services.RecoveryService),
		UserHandler:     NewUserHandler(services.UserService, services.MaxUploadSize),
		SubjectHandler:  NewSubjectHandler(services.SubjectService, services.ReminderService),
		ReminderHandler: NewReminderHandler(services.ReminderService),
		NewsHandler:     NewNewsHandler(services.NewsService),
		ChatHandler:     NewChatHandler(services.ChatService),
	}
}
