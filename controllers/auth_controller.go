package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tomandjerry17/cafeteria-backend/pkg/resp"
	"github.com/tomandjerry17/cafeteria-backend/services"
	"github.com/tomandjerry17/cafeteria-backend/utils"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, token, err := a.Auth.Register(services.RegisterIn{
		Email: req.Email, Password: req.Password,
		FirstName: req.FirstName, LastName: req.LastName,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"token": token, "user": user})
}

// POST /auth/register-staff. No token until an admin approves.
func (a *AuthController) RegisterStaff(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Auth.RegisterStaff(services.RegisterIn{
		Email: req.Email, Password: req.Password,
		FirstName: req.FirstName, LastName: req.LastName,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"user": user, "message": "staff account pending admin approval"})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Auth.Login(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": user})
}

// POST /auth/login-staff
func (a *AuthController) LoginStaff(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Auth.LoginStaff(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": user})
}

// POST /auth/send-code
func (a *AuthController) SendCode(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := a.Auth.SendCode(req.Email); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "verification code sent"})
}

// POST /auth/verify-code
func (a *AuthController) VerifyCode(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		Code  string `json:"code" binding:"required,len=4"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := a.Auth.VerifyCode(req.Email, req.Code); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "email verified"})
}

// POST /auth/forgot
func (a *AuthController) Forgot(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := a.Auth.Forgot(req.Email); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "reset token sent"})
}

// POST /auth/reset/:token
func (a *AuthController) Reset(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := a.Auth.Reset(c.Param("token"), req.Password); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "password updated"})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	id, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthenticated")
		return
	}
	user, err := a.Auth.Profile(id.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

// PUT /auth/update
func (a *AuthController) Update(c *gin.Context) {
	id, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthenticated")
		return
	}

	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Auth.UpdateProfile(id.ID, req.FirstName, req.LastName)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

// PATCH /auth/change-password
func (a *AuthController) ChangePassword(c *gin.Context) {
	id, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthenticated")
		return
	}

	var req struct {
		OldPassword string `json:"oldPassword" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := a.Auth.ChangePassword(id.ID, req.OldPassword, req.NewPassword); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "password changed"})
}

// GET /auth/pending-staff (admin)
func (a *AuthController) PendingStaff(c *gin.Context) {
	users, err := a.Auth.PendingStaff()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, users)
}

// POST /auth/approve-staff/:id (admin)
func (a *AuthController) ApproveStaff(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	user, err := a.Auth.ApproveStaff(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

// GET /auth/staff-stats (admin)
func (a *AuthController) StaffStats(c *gin.Context) {
	stats, err := a.Auth.StaffStats()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, stats)
}
