package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tomandjerry17/cafeteria-backend/entity"
	"github.com/tomandjerry17/cafeteria-backend/pkg/apperr"
	"github.com/tomandjerry17/cafeteria-backend/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// ---------------- Categories ----------------

func (s *MenuService) ListCategories() ([]entity.MenuCategory, error) {
	return s.Repo.ListCategories()
}

func (s *MenuService) CreateCategory(cat *entity.MenuCategory) error {
	return s.Repo.CreateCategory(cat)
}

func (s *MenuService) UpdateCategory(id uint, name, description string) (*entity.MenuCategory, error) {
	cat, err := s.Repo.FindCategory(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %d", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	cat.Name = name
	cat.Description = description
	if err := s.Repo.UpdateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *MenuService) DeleteCategory(id uint) error {
	if _, err := s.Repo.FindCategory(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category %d", apperr.ErrNotFound, id)
		}
		return err
	}
	return s.Repo.DeleteCategory(id)
}

// ---------------- Items ----------------

func (s *MenuService) ListItems() ([]entity.MenuItem, error) {
	return s.Repo.ListItems()
}

func (s *MenuService) GetItem(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindItem(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item %d", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return item, nil
}

func (s *MenuService) CreateItem(item *entity.MenuItem) error {
	if item.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", apperr.ErrInvalidInput)
	}
	if item.CategoryID != nil {
		if _, err := s.Repo.FindCategory(*item.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: category %d", apperr.ErrNotFound, *item.CategoryID)
			}
			return err
		}
	}
	return s.Repo.CreateItem(item)
}

func (s *MenuService) UpdateItem(item *entity.MenuItem) error {
	if item.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", apperr.ErrInvalidInput)
	}
	return s.Repo.UpdateItem(item)
}

func (s *MenuService) DeleteItem(id uint) error {
	if _, err := s.GetItem(id); err != nil {
		return err
	}
	return s.Repo.DeleteItem(id)
}

// Restock raises an item's stock and leaves an audit row naming the
// acting staff member. Unlimited items have no stock to raise.
func (s *MenuService) Restock(staffID, itemID uint, qty int, note string) (*entity.MenuItem, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperr.ErrInvalidInput)
	}
	item, err := s.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if item.StockLimit == nil {
		return nil, fmt.Errorf("%w: item has unlimited stock", apperr.ErrInvalidState)
	}

	err = s.Repo.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.IncrementStock(tx, itemID, qty); err != nil {
			return err
		}
		log := entity.InventoryLog{
			MenuItemID: itemID,
			ChangeType: entity.ChangeRestock,
			Quantity:   qty,
			Note:       note,
			StaffID:    &staffID,
		}
		return s.Repo.CreateInventoryLog(tx, &log)
	})
	if err != nil {
		return nil, err
	}
	return s.GetItem(itemID)
}

func (s *MenuService) InventoryLogs(itemID uint) ([]entity.InventoryLog, error) {
	if _, err := s.GetItem(itemID); err != nil {
		return nil, err
	}
	return s.Repo.ListInventoryLogs(itemID)
}
