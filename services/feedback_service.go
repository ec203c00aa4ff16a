package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tomandjerry17/cafeteria-backend/entity"
	"github.com/tomandjerry17/cafeteria-backend/pkg/apperr"
	"github.com/tomandjerry17/cafeteria-backend/repository"
)

type FeedbackService struct {
	DB       *gorm.DB
	MenuRepo *repository.MenuRepository
}

func NewFeedbackService(db *gorm.DB, menuRepo *repository.MenuRepository) *FeedbackService {
	return &FeedbackService{DB: db, MenuRepo: menuRepo}
}

func (s *FeedbackService) Create(userID, menuItemID uint, rating int, comment string) (*entity.Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", apperr.ErrInvalidInput)
	}
	if _, err := s.MenuRepo.FindItem(menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item %d", apperr.ErrNotFound, menuItemID)
		}
		return nil, err
	}

	fb := &entity.Feedback{
		UserID:     userID,
		MenuItemID: menuItemID,
		Rating:     rating,
		Comment:    comment,
	}
	if err := s.DB.Create(fb).Error; err != nil {
		return nil, err
	}
	return fb, nil
}

// List returns feedback newest-first, optionally scoped to one item.
func (s *FeedbackService) List(menuItemID uint) ([]entity.Feedback, error) {
	q := s.DB.Order("id DESC")
	if menuItemID > 0 {
		q = q.Where("menu_item_id = ?", menuItemID)
	}

	var items []entity.Feedback
	err := q.Find(&items).Error
	return items, err
}
