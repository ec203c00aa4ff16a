package repository

import (
	"gorm.io/gorm"

	"github.com/tomandjerry17/cafeteria-backend/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderWithItems(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("OrderItems").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListAll(page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}

	var total int64
	if err := r.DB.Model(&entity.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := r.DB.Preload("OrderItems").
		Order("id DESC").Limit(limit).Offset((page - 1) * limit).
		Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) UpdateStatus(orderID uint, status entity.OrderStatus) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status).Error
}

// UpdateStatusGuard transitions only from the expected status; zero
// rows affected means the order moved underneath the caller.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ConfirmPaymentGuard flips the payment-confirmed flag while the order
// is still in the expected status.
func (r *OrderRepository) ConfirmPaymentGuard(tx *gorm.DB, orderID uint, status entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, status).
		Update("payment_confirmed", true)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) MarkPaid(tx *gorm.DB, orderID uint) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Updates(map[string]any{
			"payment_status": entity.PaymentPaid,
			"status":         entity.StatusPickedUp,
		}).Error
}

// DeleteOrder removes the order and its line items. Stock is not
// restored; see the inventory log for what was deducted.
func (r *OrderRepository) DeleteOrder(orderID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Order{}, orderID).Error
	})
}
