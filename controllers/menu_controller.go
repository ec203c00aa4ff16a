package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/tomandjerry17/cafeteria-backend/entity"
	"github.com/tomandjerry17/cafeteria-backend/pkg/resp"
	"github.com/tomandjerry17/cafeteria-backend/services"
	"github.com/tomandjerry17/cafeteria-backend/utils"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type menuItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Available   *bool           `json:"available"`
	StockLimit  *int            `json:"stockLimit"`
	CategoryID  *uint           `json:"categoryId"`
	Description string          `json:"description"`
	PhotoURL    string          `json:"photoUrl"`
}

// ---------------- Categories ----------------

// GET /menu/categories (public)
func (m *MenuController) ListCategories(c *gin.Context) {
	cats, err := m.Menu.ListCategories()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /menu/categories (staff)
func (m *MenuController) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat := entity.MenuCategory{Name: req.Name, Description: req.Description}
	if err := m.Menu.CreateCategory(&cat); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cat)
}

// PUT /menu/categories/:id (staff)
func (m *MenuController) UpdateCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat, err := m.Menu.UpdateCategory(id, req.Name, req.Description)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /menu/categories/:id (staff). Items keep living with a null
// category.
func (m *MenuController) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := m.Menu.DeleteCategory(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// ---------------- Items ----------------

// GET /menu (public)
func (m *MenuController) ListItems(c *gin.Context) {
	items, err := m.Menu.ListItems()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/:id (public)
func (m *MenuController) GetItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	item, err := m.Menu.GetItem(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /menu (staff)
func (m *MenuController) CreateItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.MenuItem{
		Name:        req.Name,
		Price:       req.Price,
		Available:   true,
		StockLimit:  req.StockLimit,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if err := m.Menu.CreateItem(&item); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /menu/:id (staff)
func (m *MenuController) UpdateItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := m.Menu.GetItem(id)
	if err != nil {
		resp.Error(c, err)
		return
	}

	item.Name = req.Name
	item.Price = req.Price
	item.StockLimit = req.StockLimit
	item.CategoryID = req.CategoryID
	item.Description = req.Description
	item.PhotoURL = req.PhotoURL
	if req.Available != nil {
		item.Available = *req.Available
	}
	if err := m.Menu.UpdateItem(item); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu/:id (staff)
func (m *MenuController) DeleteItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := m.Menu.DeleteItem(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// POST /menu/items/:id/restock (staff)
func (m *MenuController) Restock(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthenticated")
		return
	}

	var req struct {
		Quantity int    `json:"quantity" binding:"required,min=1"`
		Note     string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := m.Menu.Restock(ident.ID, id, req.Quantity, req.Note)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// GET /menu/items/:id/inventory (staff)
func (m *MenuController) InventoryLogs(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	logs, err := m.Menu.InventoryLogs(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, logs)
}
