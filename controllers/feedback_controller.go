package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/tomandjerry17/cafeteria-backend/pkg/resp"
	"github.com/tomandjerry17/cafeteria-backend/services"
	"github.com/tomandjerry17/cafeteria-backend/utils"
)

type FeedbackController struct {
	Feedback *services.FeedbackService
}

func NewFeedbackController(feedback *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Feedback: feedback}
}

// POST /feedback
func (f *FeedbackController) Create(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthenticated")
		return
	}

	var req struct {
		MenuItemID uint   `json:"menuItemId" binding:"required"`
		Rating     int    `json:"rating" binding:"required,min=1,max=5"`
		Comment    string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fb, err := f.Feedback.Create(ident.ID, req.MenuItemID, req.Rating, req.Comment)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, fb)
}

// GET /feedback with an optional ?menuItemId= filter
func (f *FeedbackController) List(c *gin.Context) {
	items, err := f.Feedback.List(uint(queryInt(c, "menuItemId", 0)))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}
