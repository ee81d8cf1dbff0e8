package lists

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/todo-go/apperror"
)

// Service exposes ownership-scoped operations on lists. Every read and
// write filters by the requesting user's id; a list that exists but belongs
// to someone else is reported exactly like a list that does not exist.
type Service interface {
	Create(ctx context.Context, userID int64, req CreateListRequest) (*List, error)
	List(ctx context.Context, userID int64) ([]List, error)
	Get(ctx context.Context, userID, listID int64) (*List, error)
	Update(ctx context.Context, userID, listID int64, req UpdateListRequest) (*List, error)
	Delete(ctx context.Context, userID, listID int64) error
}

// querier is the subset of pgxpool.Pool the service uses. Tests substitute
// a fake to exercise the transactional paths without a live database.
type querier interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type listService struct {
	db querier
}

// NewService creates the list service backed by the given pool.
func NewService(db *pgxpool.Pool) Service {
	return &listService{db: db}
}

const listColumns = "id, title, user_id, created_at, updated_at"

// Create inserts a new list owned by userID. The owner is always the
// creating identity; callers cannot attach a list to another user.
func (s *listService) Create(ctx context.Context, userID int64, req CreateListRequest) (*List, error) {
	var list List
	query := `INSERT INTO todo_lists (title, user_id)
	          VALUES ($1, $2)
	          RETURNING ` + listColumns
	err := s.db.QueryRow(ctx, query, req.Title, userID).Scan(
		&list.ID, &list.Title, &list.UserID, &list.CreatedAt, &list.UpdatedAt,
	)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create list", err)
	}
	return &list, nil
}

// List returns all of the user's lists in creation (insertion) order.
func (s *listService) List(ctx context.Context, userID int64) ([]List, error) {
	query := `SELECT ` + listColumns + ` FROM todo_lists WHERE user_id = $1 ORDER BY id`
	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list lists", err)
	}
	defer rows.Close()

	result := make([]List, 0)
	for rows.Next() {
		var list List
		if err := rows.Scan(&list.ID, &list.Title, &list.UserID, &list.CreatedAt, &list.UpdatedAt); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan list", err)
		}
		result = append(result, list)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read lists", err)
	}
	return result, nil
}

// Get returns the list only when it is owned by userID.
func (s *listService) Get(ctx context.Context, userID, listID int64) (*List, error) {
	var list List
	query := `SELECT ` + listColumns + ` FROM todo_lists WHERE id = $1 AND user_id = $2`
	err := s.db.QueryRow(ctx, query, listID, userID).Scan(
		&list.ID, &list.Title, &list.UserID, &list.CreatedAt, &list.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("list not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get list", err)
	}
	return &list, nil
}

// Update applies the supplied fields and re-stamps updated_at. Omitted
// fields retain their prior values. The WHERE clause carries the ownership
// check, so updating someone else's list is indistinguishable from updating
// a missing one.
func (s *listService) Update(ctx context.Context, userID, listID int64, req UpdateListRequest) (*List, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	if req.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", argID))
		args = append(args, *req.Title)
		argID++
	}

	if len(setClauses) == 0 {
		return s.Get(ctx, userID, listID)
	}

	setClauses = append(setClauses, "updated_at = now()")
	args = append(args, listID, userID)

	query := fmt.Sprintf(`UPDATE todo_lists SET %s WHERE id = $%d AND user_id = $%d RETURNING %s`,
		strings.Join(setClauses, ", "), argID, argID+1, listColumns)

	var list List
	err := s.db.QueryRow(ctx, query, args...).Scan(
		&list.ID, &list.Title, &list.UserID, &list.CreatedAt, &list.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("list not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to update list", err)
	}
	return &list, nil
}

// Delete removes the list and all of its items in one transaction. Either
// everything is deleted or nothing is; a client disconnect mid-request
// cannot leave orphaned items or a half-applied cascade.
func (s *listService) Delete(ctx context.Context, userID, listID int64) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return apperror.NewDatabaseError("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		DELETE FROM todo_items
		WHERE list_id IN (SELECT id FROM todo_lists WHERE id = $1 AND user_id = $2)`,
		listID, userID)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete list items", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM todo_lists WHERE id = $1 AND user_id = $2`, listID, userID)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete list", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("list not found", nil)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewDatabaseError("failed to commit delete", err)
	}
	return nil
}
