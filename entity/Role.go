package entity

// Role is the closed set of account roles. Authorization decisions
// compare against these values only.
type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleStaff, RoleAdmin:
		return true
	}
	return false
}
