package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/tomandjerry17/cafeteria-backend/entity"
	"github.com/tomandjerry17/cafeteria-backend/pkg/resp"
	"github.com/tomandjerry17/cafeteria-backend/services"
	"github.com/tomandjerry17/cafeteria-backend/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders (student)
func (o *OrderController) Create(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthenticated")
		return
	}

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := o.Orders.Create(ident.ID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// POST /orders/walk-in (staff)
func (o *OrderController) CreateWalkIn(c *gin.Context) {
	var req services.WalkInOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := o.Orders.CreateWalkIn(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders. Students see their own orders, staff see everything.
func (o *OrderController) List(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthenticated")
		return
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)
	out, err := o.Orders.List(ident.ID, ident.Role, page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /orders/:id
func (o *OrderController) Detail(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthenticated")
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}

	order, err := o.Orders.Detail(ident.ID, ident.Role, id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT /orders/:id/status (staff/admin)
func (o *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := o.Orders.UpdateStatus(id, entity.OrderStatus(req.Status))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id/cancel (student, own pending order)
func (o *OrderController) Cancel(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthenticated")
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := o.Orders.Cancel(ident.ID, id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cancelled": id})
}

// PATCH /orders/:id/confirm-payment (student, own ready order)
func (o *OrderController) ConfirmPayment(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthenticated")
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := o.Orders.ConfirmPayment(ident.ID, id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"confirmed": id})
}

// DELETE /orders/:id (staff/admin)
func (o *OrderController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := o.Orders.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
