package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/tomandjerry17/cafeteria-backend/pkg/resp"
	"github.com/tomandjerry17/cafeteria-backend/services"
	"github.com/tomandjerry17/cafeteria-backend/utils"
)

type NotificationController struct {
	Notifications *services.NotificationService
}

func NewNotificationController(n *services.NotificationService) *NotificationController {
	return &NotificationController{Notifications: n}
}

// GET /notifications
func (n *NotificationController) List(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthenticated")
		return
	}
	items, err := n.Notifications.ListForUser(ident.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// PATCH /notifications/:id/read
func (n *NotificationController) MarkRead(c *gin.Context) {
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
	if err := n.Notifications.MarkRead(ident.ID, id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"read": id})
}

// PATCH /notifications/mark-all
func (n *NotificationController) MarkAllRead(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthenticated")
		return
	}
	if err := n.Notifications.MarkAllRead(ident.ID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "all read"})
}

// GET /notifications/unread-count
func (n *NotificationController) UnreadCount(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthenticated")
		return
	}
	count, err := n.Notifications.UnreadCount(ident.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"unread": count})
}
