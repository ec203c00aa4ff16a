package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/tomandjerry17/cafeteria-backend/pkg/resp"
	"github.com/tomandjerry17/cafeteria-backend/services"
	"github.com/tomandjerry17/cafeteria-backend/utils"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

// POST /payments (staff)
func (p *PaymentController) Create(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthenticated")
		return
	}

	var req services.CreatePaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	payment, err := p.Payments.Create(ident.ID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, payment)
}

// GET /payments
func (p *PaymentController) List(c *gin.Context) {
	payments, err := p.Payments.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, payments)
}

// GET /payments/:id
func (p *PaymentController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	payment, err := p.Payments.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, payment)
}

// DELETE /payments/:id (admin)
func (p *PaymentController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := p.Payments.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
