package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomandjerry17/cafeteria-backend/entity"
)

func TestStatsOverview(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	orders := newOrderService(db)
	payments := newPaymentService(db)

	staff := createUser(t, db, "staff@campus.edu", entity.RoleStaff)
	student := createUser(t, db, "s1@campus.edu", entity.RoleStudent)
	createUser(t, db, "s2@campus.edu", entity.RoleStudent)
	item := createItem(t, db, "Bento", "35.00", nil)
	createItem(t, db, "Iced Tea", "20.00", nil)

	o1, err := orders.Create(student.ID, &CreateOrderReq{
		Items:      []OrderLineIn{{MenuItemID: item.ID, Quantity: 1}},
		PickupType: "dine_in",
	})
	require.NoError(t, err)
	_, err = orders.Create(student.ID, &CreateOrderReq{
		Items:      []OrderLineIn{{MenuItemID: item.ID, Quantity: 2}},
		PickupType: "take_out",
	})
	require.NoError(t, err)

	// settle the first order at the register
	_, err = payments.Create(staff.ID, &CreatePaymentReq{
		AmountReceived: decimal.RequireFromString("35.00"),
		OrderID:        &o1.ID,
	})
	require.NoError(t, err)

	out, err := svc.Overview()
	require.NoError(t, err)

	assert.Equal(t, int64(2), out.Students)
	assert.Equal(t, int64(1), out.Staff)
	assert.Equal(t, int64(2), out.MenuItems)
	assert.Equal(t, int64(1), out.Payments)
	assert.Equal(t, int64(1), out.OrdersByStatus[string(entity.StatusPending)])
	assert.Equal(t, int64(1), out.OrdersByStatus[string(entity.StatusPickedUp)])
	assert.True(t, out.Revenue.Equal(decimal.RequireFromString("35.00")),
		"revenue = %s", out.Revenue)
	// two order-created notifications, none read yet
	assert.Equal(t, int64(2), out.UnreadNotifications)
}

func TestStatsOverviewEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	out, err := svc.Overview()
	require.NoError(t, err)
	assert.Zero(t, out.Students)
	assert.Zero(t, out.Payments)
	assert.Empty(t, out.OrdersByStatus)
	assert.True(t, out.Revenue.Equal(decimal.Zero))
	assert.Zero(t, out.UnreadNotifications)
}
