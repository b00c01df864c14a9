package services

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"agenthub_backend/internal/events"
	"agenthub_backend/internal/logger"
	"agenthub_backend/internal/models"
	"agenthub_backend/internal/repositories"
)

// Pusher delivers an event to a user's live sessions, if any.
type Pusher interface {
	Push(userID string, event string, payload any)
}

// NotificationDispatcher turns workflow events into persisted
// notifications and real-time pushes. The notification row is written
// first; the push is best effort on top of it, so an offline recipient
// still finds the notification later and a push failure never affects
// the workflow write that produced the event.
type NotificationDispatcher struct {
	notificationRepo repositories.NotificationRepository
	pusher           Pusher
}

func NewNotificationDispatcher(notificationRepo repositories.NotificationRepository, pusher Pusher) *NotificationDispatcher {
	return &NotificationDispatcher{
		notificationRepo: notificationRepo,
		pusher:           pusher,
	}
}

// Register subscribes the dispatcher to the workflow events it handles.
func (d *NotificationDispatcher) Register(bus *events.Bus) {
	bus.Subscribe(events.ApplicationReceivedName, func(e events.Event) {
		if ev, ok := e.(events.ApplicationReceived); ok {
			d.onApplicationReceived(ev)
		}
	})
	bus.Subscribe(events.ApplicationStatusChangedName, func(e events.Event) {
		if ev, ok := e.(events.ApplicationStatusChanged); ok {
			d.onStatusChanged(ev)
		}
	})
}

func (d *NotificationDispatcher) onApplicationReceived(ev events.ApplicationReceived) {
	if ev.Job == nil {
		return
	}
	// An employer never applies to their own listing through the API,
	// but a self-notification would be noise either way.
	if ev.Job.EmployerID == ev.Application.AgentID {
		return
	}

	agentName := ev.AgentName
	if agentName == "" {
		agentName = "An agent"
	}

	d.deliver(&models.Notification{
		UserID:  ev.Job.EmployerID,
		Type:    repositories.NotificationTypeApplicationReceived,
		Message: fmt.Sprintf("%s applied to %s", agentName, ev.Job.Title),
		Link:    fmt.Sprintf("/jobs/%s/applicants", ev.Job.ID),
		Data:    notificationData(ev.Job.ID, ev.Application.ID),
	})
}

func (d *NotificationDispatcher) onStatusChanged(ev events.ApplicationStatusChanged) {
	if ev.Job == nil {
		return
	}

	notification := &models.Notification{
		UserID: ev.Application.AgentID,
		Data:   notificationData(ev.Job.ID, ev.Application.ID),
	}

	switch ev.NewStatus {
	case models.ApplicationStatusHired:
		// hire_success is reserved for hires settled through the
		// payment gateway; a direct employer hire is a plain status
		// change.
		if ev.ViaPayment {
			notification.Type = repositories.NotificationTypeHireSuccess
		} else {
			notification.Type = repositories.NotificationTypeStatusChange
		}
		notification.Message = fmt.Sprintf("Congratulations! You have been hired for %s", ev.Job.Title)
		notification.Link = "/dashboard"
	case models.ApplicationStatusRejected:
		notification.Type = repositories.NotificationTypeStatusChange
		notification.Message = fmt.Sprintf("Your application for %s was rejected", ev.Job.Title)
		notification.Link = "/dashboard"
	default:
		// Intermediate statuses are visible on the dashboard without a
		// notification.
		return
	}

	d.deliver(notification)
}

func (d *NotificationDispatcher) deliver(notification *models.Notification) {
	if err := d.notificationRepo.Create(notification); err != nil {
		logger.Error("failed to persist notification",
			"user_id", notification.UserID,
			"type", notification.Type,
			"error", err)
		return
	}

	if d.pusher != nil {
		d.pusher.Push(notification.UserID, "notification", notification)
	}
}

func notificationData(jobID, applicationID string) datatypes.JSON {
	raw, err := json.Marshal(map[string]string{
		"job_id":         jobID,
		"application_id": applicationID,
	})
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
