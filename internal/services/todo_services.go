package services

import (
	"context"

	"TaskTrackerAPI/internal/model"
)

// TodoRepository persists to-do records. Every operation that targets a
// single record takes the owner's id and reports records that are absent or
// owned by somebody else as ErrTodoNotFound.
type TodoRepository interface {
	ListByUser(ctx context.Context, userID int64, descending bool) ([]model.Todo, error)
	GetByID(ctx context.Context, todoID, userID int64) (*model.Todo, error)
	Create(ctx context.Context, todo *model.Todo) (*model.Todo, error)
	SetDone(ctx context.Context, todoID, userID int64, isDone bool) (*model.Todo, error)
	Delete(ctx context.Context, todoID, userID int64) error
}

type TodoService struct {
	todos TodoRepository
}

func NewTodoService(todos TodoRepository) *TodoService {
	return &TodoService{todos: todos}
}

// ListOwned returns the user's todos in insertion order, reversed when
// order is "DESC". Any other order value is ignored.
func (s *TodoService) ListOwned(ctx context.Context, user *model.User, order string) ([]model.Todo, error) {
	return s.todos.ListByUser(ctx, user.ID, order == "DESC")
}

func (s *TodoService) GetOwned(ctx context.Context, user *model.User, todoID int64) (*model.Todo, error) {
	return s.todos.GetByID(ctx, todoID, user.ID)
}

func (s *TodoService) Create(ctx context.Context, user *model.User, contents string, isDone bool) (*model.Todo, error) {
	todo := &model.Todo{Contents: contents, IsDone: isDone, UserID: user.ID}
	return s.todos.Create(ctx, todo)
}

func (s *TodoService) SetDone(ctx context.Context, user *model.User, todoID int64, isDone bool) (*model.Todo, error) {
	return s.todos.SetDone(ctx, todoID, user.ID, isDone)
}

func (s *TodoService) Delete(ctx context.Context, user *model.User, todoID int64) error {
	return s.todos.Delete(ctx, todoID, user.ID)
}
