package repository

import (
	"gorm.io/gorm"

	"github.com/tomandjerry17/cafeteria-backend/entity"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *PaymentRepository) Get(id uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) List() ([]entity.Payment, error) {
	var ps []entity.Payment
	err := r.DB.Order("id DESC").Find(&ps).Error
	return ps, err
}

// Delete removes the ledger row only; a linked order keeps its payment
// status.
func (r *PaymentRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Payment{}, id).Error
}
