package entity

// OrderStatus is the order lifecycle enum. Staff move orders along
// pending → confirmed → preparing → ready → picked_up; rejected is the
// terminal branch out of pending (staff rejection or student cancel).
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusPickedUp  OrderStatus = "picked_up"
	StatusRejected  OrderStatus = "rejected"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusPickedUp, StatusRejected:
		return true
	}
	return false
}

type PickupType string

const (
	PickupDineIn  PickupType = "dine_in"
	PickupTakeOut PickupType = "take_out"
)

func (p PickupType) Valid() bool {
	return p == PickupDineIn || p == PickupTakeOut
}

type PaymentState string

const (
	PaymentPending      PaymentState = "pending"
	PaymentCashOnPickup PaymentState = "cash_on_pickup"
	PaymentPaid         PaymentState = "paid"
)

func (p PaymentState) Valid() bool {
	switch p {
	case PaymentPending, PaymentCashOnPickup, PaymentPaid:
		return true
	}
	return false
}
