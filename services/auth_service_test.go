package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tomandjerry17/cafeteria-backend/entity"
	"github.com/tomandjerry17/cafeteria-backend/pkg/apperr"
	"github.com/tomandjerry17/cafeteria-backend/pkg/mailer"
	"github.com/tomandjerry17/cafeteria-backend/repository"
	"github.com/tomandjerry17/cafeteria-backend/utils"
)

const testSecret = "test-secret"

func newAuthService(db *gorm.DB) *AuthService {
	users := repository.NewUserRepository(db)
	notify := NewNotificationService(repository.NewNotificationRepository(db), users, mailer.Noop{})
	return NewAuthService(users, notify, mailer.Noop{}, testSecret, time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, token, err := svc.Register(RegisterIn{
		Email: "Alex@Campus.EDU", Password: "secret123",
		FirstName: "Alex", LastName: "Chen",
	})
	require.NoError(t, err)
	assert.Equal(t, "alex@campus.edu", user.Email, "email normalized")
	assert.Equal(t, entity.RoleStudent, user.Role)
	assert.True(t, user.Approved)
	assert.Len(t, user.VerificationCode, 4)
	assert.NotEqual(t, "secret123", user.Password, "password stored hashed")

	claims, err := utils.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, entity.RoleStudent, claims.Role)

	_, _, err = svc.Register(RegisterIn{Email: "alex@campus.edu", Password: "secret123"})
	assert.ErrorIs(t, err, apperr.ErrDuplicateEmail)

	_, _, err = svc.Login("alex@campus.edu", "wrong")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	gotToken, gotUser, err := svc.Login("alex@campus.edu", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, gotToken)
	assert.Equal(t, user.ID, gotUser.ID)
}

func TestStaffApprovalGate(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	staff, err := svc.RegisterStaff(RegisterIn{
		Email: "cook@campus.edu", Password: "secret123",
		FirstName: "Sam", LastName: "Lee",
	})
	require.NoError(t, err)
	assert.False(t, staff.Approved)

	// the unapproved state must survive the insert, not just the
	// returned struct
	var stored entity.User
	require.NoError(t, db.First(&stored, staff.ID).Error)
	assert.False(t, stored.Approved)

	// unapproved staff cannot use the staff login
	_, _, err = svc.LoginStaff("cook@campus.edu", "secret123")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	pending, err := svc.PendingStaff()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, staff.ID, pending[0].ID)

	approved, err := svc.ApproveStaff(staff.ID)
	require.NoError(t, err)
	assert.True(t, approved.Approved)

	// approval notified the staff member
	var notifs int64
	require.NoError(t, db.Model(&entity.Notification{}).Where("user_id = ?", staff.ID).Count(&notifs).Error)
	assert.Equal(t, int64(1), notifs)

	// re-approval is a no-op
	_, err = svc.ApproveStaff(staff.ID)
	require.NoError(t, err)
	require.NoError(t, db.Model(&entity.Notification{}).Where("user_id = ?", staff.ID).Count(&notifs).Error)
	assert.Equal(t, int64(1), notifs)

	_, _, err = svc.LoginStaff("cook@campus.edu", "secret123")
	assert.NoError(t, err)

	stats, err := svc.StaffStats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)
	assert.Equal(t, int64(1), stats.Approved)
	assert.Zero(t, stats.Pending)
}

func TestStaffLoginRoleRules(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	// admins are exempt from the approval gate
	admin := createUser(t, db, "admin@campus.edu", entity.RoleAdmin)
	require.NoError(t, db.Model(admin).Update("approved", false).Error)
	_, _, err := svc.LoginStaff("admin@campus.edu", "secret123")
	assert.NoError(t, err)

	// students cannot use the staff login at all
	_, _, err = svc.Register(RegisterIn{Email: "kid@campus.edu", Password: "secret123"})
	require.NoError(t, err)
	_, _, err = svc.LoginStaff("kid@campus.edu", "secret123")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	// approving a non-staff account is refused
	student, err := svc.Users.FindByEmail("kid@campus.edu")
	require.NoError(t, err)
	_, err = svc.ApproveStaff(student.ID)
	assert.ErrorIs(t, err, apperr.ErrInvalidState)
}

func TestVerifyCode(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, _, err := svc.Register(RegisterIn{Email: "alex@campus.edu", Password: "secret123"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.VerifyCode("alex@campus.edu", "XXXX"), apperr.ErrInvalidInput)

	require.NoError(t, svc.VerifyCode("alex@campus.edu", user.VerificationCode))
	got, err := svc.Users.FindByID(user.ID)
	require.NoError(t, err)
	assert.True(t, got.EmailVerified)
	assert.Empty(t, got.VerificationCode)

	// the code is cleared, so replaying it fails
	assert.ErrorIs(t, svc.VerifyCode("alex@campus.edu", user.VerificationCode), apperr.ErrInvalidInput)

	assert.ErrorIs(t, svc.SendCode("ghost@campus.edu"), apperr.ErrNotFound)
}

func TestPasswordReset(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, _, err := svc.Register(RegisterIn{Email: "alex@campus.edu", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, svc.Forgot("alex@campus.edu"))
	got, err := svc.Users.FindByID(user.ID)
	require.NoError(t, err)
	require.Len(t, got.ResetToken, 64, "256-bit token, hex encoded")
	require.NotNil(t, got.ResetExpiry)

	require.NoError(t, svc.Reset(got.ResetToken, "newpass456"))

	_, _, err = svc.Login("alex@campus.edu", "secret123")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	_, _, err = svc.Login("alex@campus.edu", "newpass456")
	assert.NoError(t, err)

	// single-use
	assert.ErrorIs(t, svc.Reset(got.ResetToken, "again789"), apperr.ErrInvalidInput)
}

func TestPasswordResetExpiry(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, _, err := svc.Register(RegisterIn{Email: "alex@campus.edu", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, svc.Forgot("alex@campus.edu"))
	got, err := svc.Users.FindByID(user.ID)
	require.NoError(t, err)

	expired := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(&entity.User{}).Where("id = ?", user.ID).
		Update("reset_expiry", expired).Error)

	assert.ErrorIs(t, svc.Reset(got.ResetToken, "newpass456"), apperr.ErrInvalidInput)
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, _, err := svc.Register(RegisterIn{Email: "alex@campus.edu", Password: "secret123"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword(user.ID, "wrong", "newpass456"), apperr.ErrInvalidInput)

	require.NoError(t, svc.ChangePassword(user.ID, "secret123", "newpass456"))
	_, _, err = svc.Login("alex@campus.edu", "newpass456")
	assert.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, _, err := svc.Register(RegisterIn{
		Email: "alex@campus.edu", Password: "secret123",
		FirstName: "Alex", LastName: "Chen",
	})
	require.NoError(t, err)

	got, err := svc.UpdateProfile(user.ID, "Alexandra", "")
	require.NoError(t, err)
	assert.Equal(t, "Alexandra", got.FirstName)
	assert.Equal(t, "Chen", got.LastName, "blank fields untouched")
}
