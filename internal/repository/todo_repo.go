package repository

import (
	"context"
	"errors"

	"TaskTrackerAPI/internal/model"
	"TaskTrackerAPI/internal/services"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TodoRepository struct {
	db *pgxpool.Pool
}

func NewTodoRepository(db *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{db: db}
}

// ListByUser returns the user's todos in insertion order, or newest first
// when descending is set. Ordering happens in SQL so the observed order does
// not depend on pagination later on.
func (r *TodoRepository) ListByUser(ctx context.Context, userID int64, descending bool) ([]model.Todo, error) {
	query := `SELECT id, contents, is_done, user_id FROM todos WHERE user_id = $1 ORDER BY id`
	if descending {
		query += ` DESC`
	}
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []model.Todo{}
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(&t.ID, &t.Contents, &t.IsDone, &t.UserID); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *TodoRepository) GetByID(ctx context.Context, todoID, userID int64) (*model.Todo, error) {
	var t model.Todo
	query := `SELECT id, contents, is_done, user_id FROM todos WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRow(ctx, query, todoID, userID).Scan(&t.ID, &t.Contents, &t.IsDone, &t.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, services.ErrTodoNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TodoRepository) Create(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	query := `INSERT INTO todos (contents, is_done, user_id) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRow(ctx, query, todo.Contents, todo.IsDone, todo.UserID).Scan(&todo.ID); err != nil {
		return nil, err
	}
	return todo, nil
}

func (r *TodoRepository) SetDone(ctx context.Context, todoID, userID int64, isDone bool) (*model.Todo, error) {
	var t model.Todo
	query := `UPDATE todos SET is_done = $1 WHERE id = $2 AND user_id = $3 RETURNING id, contents, is_done, user_id`
	err := r.db.QueryRow(ctx, query, isDone, todoID, userID).Scan(&t.ID, &t.Contents, &t.IsDone, &t.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, services.ErrTodoNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TodoRepository) Delete(ctx context.Context, todoID, userID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1 AND user_id = $2`, todoID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return services.ErrTodoNotFound
	}
	return nil
}
