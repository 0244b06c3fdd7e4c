package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTodoSkipsEmptyText(t *testing.T) {
	db := testDB(t)
	svc := NewJourneyService(db)

	todo, err := svc.AddTodo(1, "   ")
	require.NoError(t, err)
	assert.Nil(t, todo)

	todos, err := svc.ListTodos(1)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestToggleTodo(t *testing.T) {
	db := testDB(t)
	svc := NewJourneyService(db)

	todo, err := svc.AddTodo(1, "pack hospital bag")
	require.NoError(t, err)
	require.NotNil(t, todo)
	assert.False(t, todo.Done)

	toggled, err := svc.ToggleTodo(1, todo.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Done)

	toggled, err = svc.ToggleTodo(1, todo.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Done)
}

func TestToggleTodoWrongUser(t *testing.T) {
	db := testDB(t)
	svc := NewJourneyService(db)

	todo, err := svc.AddTodo(1, "install car seat")
	require.NoError(t, err)

	_, err = svc.ToggleTodo(2, todo.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTodoIsHardDelete(t *testing.T) {
	db := testDB(t)
	svc := NewJourneyService(db)

	todo, err := svc.AddTodo(1, "wash baby clothes")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteTodo(1, todo.ID))

	var count int64
	require.NoError(t, db.Unscoped().Model(&models.TodoItem{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestWishlistRoundTrip(t *testing.T) {
	db := testDB(t)
	svc := NewJourneyService(db)

	wish, err := svc.AddWish(1, "baby monitor", "gear")
	require.NoError(t, err)
	require.NotNil(t, wish)

	wishes, err := svc.ListWishes(1)
	require.NoError(t, err)
	require.Len(t, wishes, 1)
	assert.Equal(t, "gear", wishes[0].Category)

	require.NoError(t, svc.DeleteWish(1, wish.ID))
	wishes, err = svc.ListWishes(1)
	require.NoError(t, err)
	assert.Empty(t, wishes)
}

func TestAddReflectionRequiresBody(t *testing.T) {
	db := testDB(t)
	svc := NewJourneyService(db)

	note, err := svc.AddReflection(1, "week 20", "  ", "")
	require.NoError(t, err)
	assert.Nil(t, note)

	note, err = svc.AddReflection(1, "week 20", "felt the first kicks today", "https://cdn.example/photo.jpg")
	require.NoError(t, err)
	require.NotNil(t, note)
	assert.Equal(t, "https://cdn.example/photo.jpg", note.PhotoURL)
}

func TestListReflectionsScopedToUser(t *testing.T) {
	db := testDB(t)
	svc := NewJourneyService(db)

	_, err := svc.AddReflection(1, "", "mine", "")
	require.NoError(t, err)
	_, err = svc.AddReflection(2, "", "theirs", "")
	require.NoError(t, err)

	notes, err := svc.ListReflections(1)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "mine", notes[0].Body)
}
