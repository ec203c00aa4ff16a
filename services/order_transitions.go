package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tomandjerry17/cafeteria-backend/entity"
	"github.com/tomandjerry17/cafeteria-backend/pkg/apperr"
)

// UpdateStatus is the staff-side transition. Any valid enum value is an
// accepted destination; the strict state machine binds student actions
// only. The owning user, if any, gets a notification.
func (s *OrderService) UpdateStatus(orderID uint, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperr.ErrInvalidInput, status)
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", apperr.ErrNotFound, orderID)
		}
		return nil, err
	}

	if err := s.Repo.UpdateStatus(orderID, status); err != nil {
		return nil, err
	}
	o.Status = status

	if o.UserID != nil {
		s.Notify.Push(*o.UserID, &o.ID, "Order update",
			fmt.Sprintf("Your order #%d is now %s.", o.ID, status))
	}
	return o, nil
}

// Cancel is the student-side escape hatch: own order, pending only.
func (s *OrderService) Cancel(userID, orderID uint) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order %d", apperr.ErrNotFound, orderID)
		}
		return err
	}
	if o.UserID == nil || *o.UserID != userID {
		return fmt.Errorf("%w: not your order", apperr.ErrForbidden)
	}

	affected, err := s.Repo.UpdateStatusGuard(s.DB, orderID, entity.StatusPending, entity.StatusRejected)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: only pending orders can be cancelled", apperr.ErrInvalidState)
	}
	return nil
}

// ConfirmPayment flags a ready order as payment-confirmed by its owner,
// signalling the register that the student is at the counter.
func (s *OrderService) ConfirmPayment(userID, orderID uint) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order %d", apperr.ErrNotFound, orderID)
		}
		return err
	}
	if o.UserID == nil || *o.UserID != userID {
		return fmt.Errorf("%w: not your order", apperr.ErrForbidden)
	}

	affected, err := s.Repo.ConfirmPaymentGuard(s.DB, orderID, entity.StatusReady)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: order is not ready for payment", apperr.ErrInvalidState)
	}
	return nil
}
