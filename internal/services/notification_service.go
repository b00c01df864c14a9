package services

import (
	"errors"

	"agenthub_backend/internal/models"
	"agenthub_backend/internal/repositories"
	"agenthub_backend/pkg/apperrors"
)

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// ListMyNotifications returns the caller's notifications, newest first.
func (s *NotificationService) ListMyNotifications(userID string) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notifications, nil
}

// MarkRead marks one notification read. Only the recipient may do it;
// marking an already read notification again is a no-op.
func (s *NotificationService) MarkRead(userID, notificationID string) error {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err, "notification", "Notification not found")
		}
		return apperrors.InternalError(err)
	}

	if notification.UserID != userID {
		return apperrors.NewForbiddenError("You can only manage your own notifications")
	}

	if notification.IsRead {
		return nil
	}

	if err := s.notificationRepo.MarkAsRead(notificationID); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err, "notification", "Notification not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// MarkAllRead marks every unread notification of the caller read.
func (s *NotificationService) MarkAllRead(userID string) error {
	if err := s.notificationRepo.MarkAllAsRead(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// UnreadCount returns the caller's unread notification count.
func (s *NotificationService) UnreadCount(userID string) (int64, error) {
	count, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}
