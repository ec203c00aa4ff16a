package services

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/tomandjerry17/cafeteria-backend/entity"
	"github.com/tomandjerry17/cafeteria-backend/pkg/apperr"
	"github.com/tomandjerry17/cafeteria-backend/pkg/mailer"
	"github.com/tomandjerry17/cafeteria-backend/repository"
)

type NotificationService struct {
	Repo  *repository.NotificationRepository
	Users *repository.UserRepository
	Mail  mailer.Mailer
}

func NewNotificationService(repo *repository.NotificationRepository, users *repository.UserRepository, mail mailer.Mailer) *NotificationService {
	return &NotificationService{Repo: repo, Users: users, Mail: mail}
}

// Push records an in-app notification and mirrors it to email. Both are
// best-effort; a failed push never fails the operation that caused it.
func (s *NotificationService) Push(userID uint, orderID *uint, subject, message string) {
	n := &entity.Notification{
		UserID:  userID,
		OrderID: orderID,
		Message: message,
		Status:  entity.NotificationUnread,
	}
	if err := s.Repo.Create(n); err != nil {
		slog.Warn("notification write failed", "userId", userID, "err", err)
		return
	}

	user, err := s.Users.FindByID(userID)
	if err != nil {
		slog.Warn("notification mail skipped, user lookup failed", "userId", userID, "err", err)
		return
	}
	s.Mail.Send(user.Email, subject, message)
}

func (s *NotificationService) ListForUser(userID uint) ([]entity.Notification, error) {
	return s.Repo.ListForUser(userID)
}

func (s *NotificationService) MarkRead(userID, id uint) error {
	if _, err := s.Repo.Get(userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: notification %d", apperr.ErrNotFound, id)
		}
		return err
	}
	return s.Repo.MarkRead(userID, id)
}

func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.Repo.MarkAllRead(userID)
}

func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return s.Repo.UnreadCount(userID)
}
