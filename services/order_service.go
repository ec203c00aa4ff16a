package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tomandjerry17/cafeteria-backend/entity"
	"github.com/tomandjerry17/cafeteria-backend/pkg/apperr"
	"github.com/tomandjerry17/cafeteria-backend/repository"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	Notify   *NotificationService
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, menuRepo *repository.MenuRepository, notify *NotificationService) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, Notify: notify}
}

// ----- DTOs from Controller -----

type OrderLineIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderReq struct {
	Items      []OrderLineIn `json:"items" binding:"required,min=1,dive"`
	PickupType string        `json:"pickupType" binding:"required"`
	PickupTime *time.Time    `json:"pickupTime"`
}

type WalkInOrderReq struct {
	Items        []OrderLineIn `json:"items" binding:"required,min=1,dive"`
	CustomerName string        `json:"customerName"`
	CustomerType string        `json:"customerType"`
}

// ----- Create -----

// Create places a student order. The menu snapshot is read up front for
// validation and price computation; the stock decrement itself is a
// guarded update inside the transaction, so two orders racing for the
// last units cannot both commit.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	pickup := entity.PickupType(req.PickupType)
	if !pickup.Valid() {
		return nil, fmt.Errorf("%w: pickup type must be dine_in or take_out", apperr.ErrInvalidInput)
	}

	lines, total, err := s.priceLines(req.Items)
	if err != nil {
		return nil, err
	}

	order := entity.Order{
		UserID:        &userID,
		Status:        entity.StatusPending,
		PickupType:    pickup,
		PickupTime:    req.PickupTime,
		TotalPrice:    total,
		PaymentStatus: entity.PaymentPending,
	}
	if err := s.commitOrder(&order, lines); err != nil {
		return nil, err
	}

	s.Notify.Push(userID, &order.ID, "Order received",
		fmt.Sprintf("Your order #%d has been received and is pending confirmation. Total: %s", order.ID, total.StringFixed(2)))
	return &order, nil
}

// CreateWalkIn records a point-of-sale order with no owning user.
func (s *OrderService) CreateWalkIn(req *WalkInOrderReq) (*entity.Order, error) {
	lines, total, err := s.priceLines(req.Items)
	if err != nil {
		return nil, err
	}

	order := entity.Order{
		Status:        entity.StatusPending,
		PickupType:    entity.PickupDineIn,
		TotalPrice:    total,
		PaymentStatus: entity.PaymentPending,
		CustomerName:  req.CustomerName,
		CustomerType:  req.CustomerType,
	}
	if err := s.commitOrder(&order, lines); err != nil {
		return nil, err
	}
	return &order, nil
}

type pricedLine struct {
	item entity.MenuItem
	qty  int
}

// priceLines batch-reads the referenced items and validates each line
// against the snapshot. Totals always come from these server-side
// prices, never from the request.
func (s *OrderService) priceLines(in []OrderLineIn) ([]pricedLine, decimal.Decimal, error) {
	if len(in) == 0 {
		return nil, decimal.Zero, fmt.Errorf("%w: items is required", apperr.ErrInvalidInput)
	}
	ids := make([]uint, 0, len(in))
	for _, l := range in {
		ids = append(ids, l.MenuItemID)
	}
	items, err := s.MenuRepo.FindItemsByIDs(ids)
	if err != nil {
		return nil, decimal.Zero, err
	}
	byID := make(map[uint]entity.MenuItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	total := decimal.Zero
	lines := make([]pricedLine, 0, len(in))
	for _, l := range in {
		if l.Quantity <= 0 {
			return nil, decimal.Zero, fmt.Errorf("%w: quantity must be positive", apperr.ErrInvalidInput)
		}
		it, ok := byID[l.MenuItemID]
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("%w: menu item %d", apperr.ErrNotFound, l.MenuItemID)
		}
		if !it.Available {
			return nil, decimal.Zero, fmt.Errorf("%w: %s is unavailable", apperr.ErrInvalidState, it.Name)
		}
		if it.StockLimit != nil && *it.StockLimit < l.Quantity {
			return nil, decimal.Zero, fmt.Errorf("%w: %s has %d left", apperr.ErrInsufficientStock, it.Name, *it.StockLimit)
		}
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
		lines = append(lines, pricedLine{item: it, qty: l.Quantity})
	}
	return lines, total, nil
}

// commitOrder writes the order, its line items, the guarded stock
// decrements and the audit rows in one transaction. Either everything
// commits or nothing does.
func (s *OrderService) commitOrder(order *entity.Order, lines []pricedLine) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, order); err != nil {
			return err
		}

		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:      order.ID,
				MenuItemID:   l.item.ID,
				Quantity:     l.qty,
				PriceAtOrder: l.item.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}

			if l.item.StockLimit != nil {
				affected, err := s.MenuRepo.DecrementStockGuard(tx, l.item.ID, l.qty)
				if err != nil {
					return err
				}
				if affected == 0 {
					return fmt.Errorf("%w: %s", apperr.ErrInsufficientStock, l.item.Name)
				}
			}

			log := entity.InventoryLog{
				MenuItemID: l.item.ID,
				ChangeType: entity.ChangeDeduct,
				Quantity:   l.qty,
				Note:       fmt.Sprintf("order #%d", order.ID),
			}
			if err := s.MenuRepo.CreateInventoryLog(tx, &log); err != nil {
				return err
			}
		}
		return nil
	})
}

// ----- Read -----

func (s *OrderService) Detail(userID uint, role entity.Role, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderWithItems(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", apperr.ErrNotFound, orderID)
		}
		return nil, err
	}
	if role == entity.RoleStudent && (o.UserID == nil || *o.UserID != userID) {
		return nil, fmt.Errorf("%w: not your order", apperr.ErrForbidden)
	}
	return o, nil
}

type OrderListOut struct {
	Items []entity.Order `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func (s *OrderService) List(userID uint, role entity.Role, page, limit int) (*OrderListOut, error) {
	if role == entity.RoleStudent {
		orders, err := s.Repo.ListForUser(userID)
		if err != nil {
			return nil, err
		}
		return &OrderListOut{Items: orders, Total: int64(len(orders)), Page: 1, Limit: len(orders)}, nil
	}

	orders, total, err := s.Repo.ListAll(page, limit)
	if err != nil {
		return nil, err
	}
	return &OrderListOut{Items: orders, Total: total, Page: page, Limit: limit}, nil
}

// ----- Delete -----

// Delete removes an order and its line items. Stock deducted for it is
// not restored.
func (s *OrderService) Delete(orderID uint) error {
	if _, err := s.Repo.GetOrder(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order %d", apperr.ErrNotFound, orderID)
		}
		return err
	}
	return s.Repo.DeleteOrder(orderID)
}
