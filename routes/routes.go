package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tomandjerry17/cafeteria-backend/configs"
	"github.com/tomandjerry17/cafeteria-backend/controllers"
	"github.com/tomandjerry17/cafeteria-backend/entity"
	"github.com/tomandjerry17/cafeteria-backend/middlewares"
	"github.com/tomandjerry17/cafeteria-backend/pkg/mailer"
	"github.com/tomandjerry17/cafeteria-backend/repository"
	"github.com/tomandjerry17/cafeteria-backend/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, mail mailer.Mailer) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	// Services
	notifSvc := services.NewNotificationService(notifRepo, userRepo, mail)
	authSvc := services.NewAuthService(userRepo, notifSvc, mail, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, notifSvc)
	paymentSvc := services.NewPaymentService(db, paymentRepo, orderRepo)
	statsSvc := services.NewStatsService(db)
	feedbackSvc := services.NewFeedbackService(db, menuRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	notifCtrl := controllers.NewNotificationController(notifSvc)
	statsCtrl := controllers.NewStatsController(statsSvc)
	feedbackCtrl := controllers.NewFeedbackController(feedbackSvc)

	auth := func(roles ...entity.Role) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/register-staff", authCtrl.RegisterStaff)
		a.POST("/login", authCtrl.Login)
		a.POST("/login-staff", authCtrl.LoginStaff)
		a.POST("/send-code", authCtrl.SendCode)
		a.POST("/verify-code", authCtrl.VerifyCode)
		a.POST("/forgot", authCtrl.Forgot)
		a.POST("/reset/:token", authCtrl.Reset)
	}

	// Auth (protected)
	aAuth := a.Group("", auth())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PUT("/update", authCtrl.Update)
		aAuth.PATCH("/change-password", authCtrl.ChangePassword)
	}

	// Auth (admin)
	aAdmin := a.Group("", auth(entity.RoleAdmin))
	{
		aAdmin.GET("/pending-staff", authCtrl.PendingStaff)
		aAdmin.POST("/approve-staff/:id", authCtrl.ApproveStaff)
		aAdmin.GET("/staff-stats", authCtrl.StaffStats)
	}

	// Menu: public read, staff-only write
	r.GET("/menu", menuCtrl.ListItems)
	r.GET("/menu/categories", menuCtrl.ListCategories)
	r.GET("/menu/:id", menuCtrl.GetItem)

	menuStaff := r.Group("/menu", auth(entity.RoleStaff, entity.RoleAdmin))
	{
		menuStaff.POST("", menuCtrl.CreateItem)
		menuStaff.PUT("/:id", menuCtrl.UpdateItem)
		menuStaff.DELETE("/:id", menuCtrl.DeleteItem)
		menuStaff.POST("/categories", menuCtrl.CreateCategory)
		menuStaff.PUT("/categories/:id", menuCtrl.UpdateCategory)
		menuStaff.DELETE("/categories/:id", menuCtrl.DeleteCategory)
		menuStaff.POST("/items/:id/restock", menuCtrl.Restock)
		menuStaff.GET("/items/:id/inventory", menuCtrl.InventoryLogs)
	}

	// Orders
	orders := r.Group("/orders")
	{
		orders.POST("", auth(entity.RoleStudent), orderCtrl.Create)
		orders.POST("/walk-in", auth(entity.RoleStaff, entity.RoleAdmin), orderCtrl.CreateWalkIn)
		orders.GET("", auth(), orderCtrl.List)
		orders.GET("/:id", auth(), orderCtrl.Detail)
		orders.PUT("/:id/status", auth(entity.RoleStaff, entity.RoleAdmin), orderCtrl.UpdateStatus)
		orders.DELETE("/:id", auth(entity.RoleStaff, entity.RoleAdmin), orderCtrl.Delete)
		orders.PATCH("/:id/cancel", auth(entity.RoleStudent), orderCtrl.Cancel)
		orders.PATCH("/:id/confirm-payment", auth(entity.RoleStudent), orderCtrl.ConfirmPayment)
	}

	// Payments
	payments := r.Group("/payments", auth())
	{
		payments.POST("", auth(entity.RoleStaff, entity.RoleAdmin), paymentCtrl.Create)
		payments.GET("", paymentCtrl.List)
		payments.GET("/:id", paymentCtrl.Get)
		payments.DELETE("/:id", auth(entity.RoleAdmin), paymentCtrl.Delete)
	}

	// Notifications
	notifications := r.Group("/notifications", auth())
	{
		notifications.GET("", notifCtrl.List)
		notifications.PATCH("/:id/read", notifCtrl.MarkRead)
		notifications.PATCH("/mark-all", notifCtrl.MarkAllRead)
		notifications.GET("/unread-count", notifCtrl.UnreadCount)
	}

	// Feedback
	feedback := r.Group("/feedback", auth())
	{
		feedback.POST("", feedbackCtrl.Create)
		feedback.GET("", feedbackCtrl.List)
	}

	// Stats
	r.GET("/stats/overview", auth(entity.RoleStaff, entity.RoleAdmin), statsCtrl.Overview)
}
