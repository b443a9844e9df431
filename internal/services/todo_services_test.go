package services

import (
	"context"
	"sync"
	"testing"

	"TaskTrackerAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTodoRepo struct {
	mu     sync.Mutex
	todos  []model.Todo
	nextID int64
}

func (f *fakeTodoRepo) ListByUser(_ context.Context, userID int64, descending bool) ([]model.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	owned := []model.Todo{}
	for _, t := range f.todos {
		if t.UserID == userID {
			owned = append(owned, t)
		}
	}
	if descending {
		for i, j := 0, len(owned)-1; i < j; i, j = i+1, j-1 {
			owned[i], owned[j] = owned[j], owned[i]
		}
	}
	return owned, nil
}

func (f *fakeTodoRepo) GetByID(_ context.Context, todoID, userID int64) (*model.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.todos {
		if t.ID == todoID && t.UserID == userID {
			return &t, nil
		}
	}
	return nil, ErrTodoNotFound
}

func (f *fakeTodoRepo) Create(_ context.Context, todo *model.Todo) (*model.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	todo.ID = f.nextID
	f.todos = append(f.todos, *todo)
	return todo, nil
}

func (f *fakeTodoRepo) SetDone(_ context.Context, todoID, userID int64, isDone bool) (*model.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.todos {
		if t.ID == todoID && t.UserID == userID {
			f.todos[i].IsDone = isDone
			t = f.todos[i]
			return &t, nil
		}
	}
	return nil, ErrTodoNotFound
}

func (f *fakeTodoRepo) Delete(_ context.Context, todoID, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.todos {
		if t.ID == todoID && t.UserID == userID {
			f.todos = append(f.todos[:i], f.todos[i+1:]...)
			return nil
		}
	}
	return ErrTodoNotFound
}

func seedTodoService(t *testing.T) (*TodoService, *model.User, *model.User, []model.Todo) {
	t.Helper()

	repo := &fakeTodoRepo{}
	svc := NewTodoService(repo)
	u1 := &model.User{ID: 1, Username: "alice"}
	u2 := &model.User{ID: 2, Username: "bob"}

	t1, err := svc.Create(context.Background(), u1, "first", false)
	require.NoError(t, err)
	t2, err := svc.Create(context.Background(), u1, "second", false)
	require.NoError(t, err)
	t3, err := svc.Create(context.Background(), u2, "other", false)
	require.NoError(t, err)

	return svc, u1, u2, []model.Todo{*t1, *t2, *t3}
}

func TestListOwned_ScopedToOwner(t *testing.T) {
	t.Parallel()

	svc, u1, u2, seeded := seedTodoService(t)

	got, err := svc.ListOwned(context.Background(), u1, "")
	require.NoError(t, err)
	assert.Equal(t, []model.Todo{seeded[0], seeded[1]}, got)

	got, err = svc.ListOwned(context.Background(), u2, "")
	require.NoError(t, err)
	assert.Equal(t, []model.Todo{seeded[2]}, got)
}

func TestListOwned_DescendingOrder(t *testing.T) {
	t.Parallel()

	svc, u1, _, seeded := seedTodoService(t)

	got, err := svc.ListOwned(context.Background(), u1, "DESC")
	require.NoError(t, err)
	assert.Equal(t, []model.Todo{seeded[1], seeded[0]}, got)

	// anything other than DESC keeps insertion order
	got, err = svc.ListOwned(context.Background(), u1, "desc")
	require.NoError(t, err)
	assert.Equal(t, []model.Todo{seeded[0], seeded[1]}, got)
}

func TestGetOwned_OtherUsersTodoIsNotFound(t *testing.T) {
	t.Parallel()

	svc, u1, u2, seeded := seedTodoService(t)

	got, err := svc.GetOwned(context.Background(), u1, seeded[0].ID)
	require.NoError(t, err)
	assert.Equal(t, seeded[0], *got)

	_, err = svc.GetOwned(context.Background(), u2, seeded[0].ID)
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestSetDone(t *testing.T) {
	t.Parallel()

	svc, u1, u2, seeded := seedTodoService(t)

	got, err := svc.SetDone(context.Background(), u1, seeded[0].ID, true)
	require.NoError(t, err)
	assert.True(t, got.IsDone)

	_, err = svc.SetDone(context.Background(), u2, seeded[0].ID, true)
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	svc, u1, u2, seeded := seedTodoService(t)

	err := svc.Delete(context.Background(), u2, seeded[0].ID)
	assert.ErrorIs(t, err, ErrTodoNotFound)

	err = svc.Delete(context.Background(), u1, seeded[0].ID)
	require.NoError(t, err)

	_, err = svc.GetOwned(context.Background(), u1, seeded[0].ID)
	assert.ErrorIs(t, err, ErrTodoNotFound)
}
