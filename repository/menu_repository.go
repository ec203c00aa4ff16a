package repository

import (
	"gorm.io/gorm"

	"github.com/tomandjerry17/cafeteria-backend/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ---------------- Categories ----------------

func (r *MenuRepository) ListCategories() ([]entity.MenuCategory, error) {
	var cats []entity.MenuCategory
	err := r.DB.Order("id ASC").Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) FindCategory(id uint) (*entity.MenuCategory, error) {
	var cat entity.MenuCategory
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *MenuRepository) CreateCategory(cat *entity.MenuCategory) error {
	return r.DB.Create(cat).Error
}

func (r *MenuRepository) UpdateCategory(cat *entity.MenuCategory) error {
	return r.DB.Save(cat).Error
}

// DeleteCategory detaches items first; the category reference on an
// item is nullable and never cascades.
func (r *MenuRepository) DeleteCategory(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.MenuItem{}).Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.MenuCategory{}, id).Error
	})
}

// ---------------- Items ----------------

func (r *MenuRepository) ListItems() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("id ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindItem(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) FindItemsByIDs(ids []uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *MenuRepository) CreateItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) UpdateItem(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) DeleteItem(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

// ---------------- Stock ----------------

// DecrementStockGuard takes stock only when enough remains. Zero rows
// affected means the guard failed and the surrounding transaction must
// abort. Items with a NULL stock limit are unlimited and never match.
func (r *MenuRepository) DecrementStockGuard(tx *gorm.DB, itemID uint, qty int) (int64, error) {
	res := tx.Model(&entity.MenuItem{}).
		Where("id = ? AND stock_limit IS NOT NULL AND stock_limit >= ?", itemID, qty).
		UpdateColumn("stock_limit", gorm.Expr("stock_limit - ?", qty))
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) IncrementStock(tx *gorm.DB, itemID uint, qty int) error {
	return tx.Model(&entity.MenuItem{}).
		Where("id = ? AND stock_limit IS NOT NULL", itemID).
		UpdateColumn("stock_limit", gorm.Expr("stock_limit + ?", qty)).Error
}

func (r *MenuRepository) CreateInventoryLog(tx *gorm.DB, log *entity.InventoryLog) error {
	return tx.Create(log).Error
}

func (r *MenuRepository) ListInventoryLogs(itemID uint) ([]entity.InventoryLog, error) {
	var logs []entity.InventoryLog
	err := r.DB.Where("menu_item_id = ?", itemID).Order("id DESC").Find(&logs).Error
	return logs, err
}
