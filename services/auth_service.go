package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tomandjerry17/cafeteria-backend/entity"
	"github.com/tomandjerry17/cafeteria-backend/pkg/apperr"
	"github.com/tomandjerry17/cafeteria-backend/pkg/mailer"
	"github.com/tomandjerry17/cafeteria-backend/repository"
	"github.com/tomandjerry17/cafeteria-backend/utils"
)

const resetTokenTTL = 15 * time.Minute

type AuthService struct {
	Users     *repository.UserRepository
	Notify    *NotificationService
	Mail      mailer.Mailer
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(users *repository.UserRepository, notify *NotificationService, mail mailer.Mailer, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Users: users, Notify: notify, Mail: mail, JWTSecret: secret, JWTTTL: ttl}
}

type RegisterIn struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register creates a student account. The account gets a verification
// code by email and can log in immediately.
func (s *AuthService) Register(in RegisterIn) (*entity.User, string, error) {
	user, err := s.createUser(in, entity.RoleStudent, true)
	if err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// RegisterStaff creates a staff account behind the approval gate: no
// token is issued until an admin approves it.
func (s *AuthService) RegisterStaff(in RegisterIn) (*entity.User, error) {
	return s.createUser(in, entity.RoleStaff, false)
}

func (s *AuthService) createUser(in RegisterIn, role entity.Role, approved bool) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.Users.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	code := utils.VerificationCode()
	user := &entity.User{
		Email:            email,
		Password:         string(hashed),
		FirstName:        strings.TrimSpace(in.FirstName),
		LastName:         strings.TrimSpace(in.LastName),
		Role:             role,
		Approved:         approved,
		VerificationCode: code,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}

	s.Mail.Send(email, "Verify your email",
		fmt.Sprintf("Your cafeteria verification code is %s.", code))
	return user, nil
}

// Login checks credentials and mints a token.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	user, err := s.verifyCredentials(email, password)
	if err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// LoginStaff is the staff counter login: staff accounts must be
// approved, admins pass through, students are turned away.
func (s *AuthService) LoginStaff(email, password string) (string, *entity.User, error) {
	user, err := s.verifyCredentials(email, password)
	if err != nil {
		return "", nil, err
	}
	switch user.Role {
	case entity.RoleAdmin:
		// exempt from the approval gate
	case entity.RoleStaff:
		if !user.Approved {
			return "", nil, fmt.Errorf("%w: account pending approval", apperr.ErrForbidden)
		}
	default:
		return "", nil, fmt.Errorf("%w: staff login only", apperr.ErrForbidden)
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) verifyCredentials(email, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Users.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperr.ErrUnauthenticated)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperr.ErrUnauthenticated)
	}
	return user, nil
}

// ----- Email verification -----

func (s *AuthService) SendCode(email string) error {
	user, err := s.findByEmail(email)
	if err != nil {
		return err
	}

	code := utils.VerificationCode()
	if err := s.Users.Update(user.ID, map[string]any{"verification_code": code}); err != nil {
		return err
	}
	s.Mail.Send(user.Email, "Verify your email",
		fmt.Sprintf("Your cafeteria verification code is %s.", code))
	return nil
}

func (s *AuthService) VerifyCode(email, code string) error {
	user, err := s.findByEmail(email)
	if err != nil {
		return err
	}
	if user.VerificationCode == "" || user.VerificationCode != code {
		return fmt.Errorf("%w: wrong verification code", apperr.ErrInvalidInput)
	}
	return s.Users.Update(user.ID, map[string]any{
		"email_verified":    true,
		"verification_code": "",
	})
}

// ----- Password reset -----

// Forgot issues a single-use opaque reset token valid for 15 minutes.
func (s *AuthService) Forgot(email string) error {
	user, err := s.findByEmail(email)
	if err != nil {
		return err
	}

	token, err := utils.ResetToken()
	if err != nil {
		return err
	}
	if err := s.Users.SetResetToken(user.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		return err
	}
	s.Mail.Send(user.Email, "Password reset",
		fmt.Sprintf("Use this token to reset your password within 15 minutes: %s", token))
	return nil
}

func (s *AuthService) Reset(token, newPassword string) error {
	if token == "" {
		return fmt.Errorf("%w: invalid or expired reset token", apperr.ErrInvalidInput)
	}
	user, err := s.Users.FindByResetToken(token)
	if err != nil || user.ResetToken == "" {
		return fmt.Errorf("%w: invalid or expired reset token", apperr.ErrInvalidInput)
	}
	if user.ResetExpiry == nil || time.Now().After(*user.ResetExpiry) {
		return fmt.Errorf("%w: invalid or expired reset token", apperr.ErrInvalidInput)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Users.Update(user.ID, map[string]any{
		"password":     string(hashed),
		"reset_token":  "",
		"reset_expiry": nil,
	})
}

func (s *AuthService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return fmt.Errorf("%w: wrong password", apperr.ErrInvalidInput)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Users.Update(userID, map[string]any{"password": string(hashed)})
}

// ----- Profile -----

func (s *AuthService) Profile(userID uint) (*entity.User, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", apperr.ErrNotFound, userID)
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) UpdateProfile(userID uint, firstName, lastName string) (*entity.User, error) {
	updates := map[string]any{}
	if firstName != "" {
		updates["first_name"] = strings.TrimSpace(firstName)
	}
	if lastName != "" {
		updates["last_name"] = strings.TrimSpace(lastName)
	}
	if len(updates) > 0 {
		if err := s.Users.Update(userID, updates); err != nil {
			return nil, err
		}
	}
	return s.Users.FindByID(userID)
}

// ----- Admin: staff approval -----

func (s *AuthService) PendingStaff() ([]entity.User, error) {
	return s.Users.ListPendingStaff()
}

// ApproveStaff lifts the approval gate and tells the staff member,
// best-effort, that they can log in now.
func (s *AuthService) ApproveStaff(staffID uint) (*entity.User, error) {
	user, err := s.Users.FindByID(staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", apperr.ErrNotFound, staffID)
		}
		return nil, err
	}
	if user.Role != entity.RoleStaff {
		return nil, fmt.Errorf("%w: user %d is not staff", apperr.ErrInvalidState, staffID)
	}
	if user.Approved {
		return user, nil
	}

	if err := s.Users.Update(staffID, map[string]any{"approved": true}); err != nil {
		return nil, err
	}
	user.Approved = true

	s.Notify.Push(staffID, nil, "Account approved",
		"Your staff account has been approved. You can now log in.")
	return user, nil
}

func (s *AuthService) StaffStats() (*repository.StaffStats, error) {
	return s.Users.CountStaff()
}

func (s *AuthService) findByEmail(email string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no account for %s", apperr.ErrNotFound, email)
		}
		return nil, err
	}
	return user, nil
}
