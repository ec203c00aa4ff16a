package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomandjerry17/cafeteria-backend/entity"
	"github.com/tomandjerry17/cafeteria-backend/pkg/apperr"
	"github.com/tomandjerry17/cafeteria-backend/repository"
)

func TestFeedback(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeedbackService(db, repository.NewMenuRepository(db))

	student := createUser(t, db, "student@campus.edu", entity.RoleStudent)
	bento := createItem(t, db, "Bento", "35.00", nil)
	tea := createItem(t, db, "Iced Tea", "20.00", nil)

	_, err := svc.Create(student.ID, bento.ID, 0, "")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	_, err = svc.Create(student.ID, bento.ID, 6, "")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	_, err = svc.Create(student.ID, 9999, 4, "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	fb, err := svc.Create(student.ID, bento.ID, 5, "great")
	require.NoError(t, err)
	assert.Equal(t, student.ID, fb.UserID)

	_, err = svc.Create(student.ID, tea.ID, 3, "too sweet")
	require.NoError(t, err)

	all, err := svc.List(0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "too sweet", all[0].Comment, "newest first")

	scoped, err := svc.List(bento.ID)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, 5, scoped[0].Rating)
}
