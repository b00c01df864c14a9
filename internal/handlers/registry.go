package handlers

import (
	"agenthub_backend/internal/services"
	"agenthub_backend/internal/validator"
)

// AppHandlers bundles every route handler for registration.
type AppHandlers struct {
	Auth         *AuthHandler
	Profile      *ProfileHandler
	Agent        *AgentHandler
	Job          *JobHandler
	Application  *ApplicationHandler
	Notification *NotificationHandler
	Payment      *PaymentHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, container.Auth),
		Profile:      NewProfileHandler(base, container.Profile, container.Upload),
		Agent:        NewAgentHandler(base, container.Profile),
		Job:          NewJobHandler(base, container.Job),
		Application:  NewApplicationHandler(base, container.Application),
		Notification: NewNotificationHandler(base, container.Notification),
		Payment:      NewPaymentHandler(base, container.Payment),
	}
}
