package events

import "agenthub_backend/internal/models"

// Event names
const (
	ApplicationReceivedName      = "application.received"
	ApplicationStatusChangedName = "application.status_changed"
)

type Event interface {
	Name() string
}

// ApplicationReceived fires when an agent applies to a job.
type ApplicationReceived struct {
	Application *models.Application
	Job         *models.Job
	AgentName   string
}

func (ApplicationReceived) Name() string { return ApplicationReceivedName }

// ApplicationStatusChanged fires on every persisted status transition.
// ViaPayment distinguishes a hire confirmed by the payment bridge from
// a direct employer action.
type ApplicationStatusChanged struct {
	Application *models.Application
	Job         *models.Job
	OldStatus   models.ApplicationStatus
	NewStatus   models.ApplicationStatus
	ViaPayment  bool
}

func (ApplicationStatusChanged) Name() string { return ApplicationStatusChangedName }
