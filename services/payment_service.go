package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tomandjerry17/cafeteria-backend/entity"
	"github.com/tomandjerry17/cafeteria-backend/pkg/apperr"
	"github.com/tomandjerry17/cafeteria-backend/repository"
)

type PaymentService struct {
	DB        *gorm.DB
	Repo      *repository.PaymentRepository
	OrderRepo *repository.OrderRepository
}

func NewPaymentService(db *gorm.DB, repo *repository.PaymentRepository, orderRepo *repository.OrderRepository) *PaymentService {
	return &PaymentService{DB: db, Repo: repo, OrderRepo: orderRepo}
}

type CreatePaymentReq struct {
	AmountReceived decimal.Decimal `json:"amountReceived" binding:"required"`
	Method         string          `json:"method"`
	OrderID        *uint           `json:"orderId"`
}

// Create records a register transaction. With a linked order the due
// amount is the order's stored total and the order is settled in the
// same transaction; without one the sale is manual and due equals
// received. Underpayment is recorded as-is with negative change.
func (s *PaymentService) Create(staffID uint, req *CreatePaymentReq) (*entity.Payment, error) {
	method := req.Method
	if method == "" {
		method = "cash"
	}

	p := entity.Payment{
		AmountReceived: req.AmountReceived,
		Method:         method,
		StaffID:        staffID,
		OrderID:        req.OrderID,
	}

	if req.OrderID == nil {
		p.AmountDue = req.AmountReceived
		p.Change = decimal.Zero
		if err := s.Repo.Create(s.DB, &p); err != nil {
			return nil, err
		}
		return &p, nil
	}

	order, err := s.OrderRepo.GetOrder(*req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", apperr.ErrNotFound, *req.OrderID)
		}
		return nil, err
	}
	p.AmountDue = order.TotalPrice
	p.Change = req.AmountReceived.Sub(order.TotalPrice)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &p); err != nil {
			return err
		}
		return s.OrderRepo.MarkPaid(tx, order.ID)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PaymentService) Get(id uint) (*entity.Payment, error) {
	p, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: payment %d", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) List() ([]entity.Payment, error) {
	return s.Repo.List()
}

// Delete drops the ledger row. The linked order, if any, keeps its
// paid status.
func (s *PaymentService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
