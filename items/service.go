package items

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/todo-go/apperror"
)

// pgForeignKeyViolation is the PostgreSQL error code for foreign key
// violations. It surfaces when the parent list disappears between the
// ownership check and the insert in a concurrent delete.
const pgForeignKeyViolation = "23503"

// Service exposes ownership-scoped operations on items. Ownership is the
// owning list's ownership: every check joins Item -> List -> user, and an
// item in another user's list is reported exactly like a missing item.
type Service interface {
	Create(ctx context.Context, userID, listID int64, req CreateItemRequest) (*Item, error)
	List(ctx context.Context, userID, listID int64) ([]Item, error)
	Update(ctx context.Context, userID, itemID int64, req UpdateItemRequest) (*Item, error)
	Delete(ctx context.Context, userID, itemID int64) error
}

type itemService struct {
	db *pgxpool.Pool
}

// NewService creates the item service backed by the given pool.
func NewService(db *pgxpool.Pool) Service {
	return &itemService{db: db}
}

// Create inserts a new item under listID after verifying the list belongs
// to userID. The check and the insert run in one transaction, so a
// concurrent deletion of the list fails the insert at the store instead of
// leaving an orphan row.
func (s *itemService) Create(ctx context.Context, userID, listID int64, req CreateItemRequest) (*Item, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var ownedListID int64
	err = tx.QueryRow(ctx, `SELECT id FROM todo_lists WHERE id = $1 AND user_id = $2`, listID, userID).Scan(&ownedListID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("list not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to check list ownership", err)
	}

	var item Item
	err = tx.QueryRow(ctx, `
		INSERT INTO todo_items (title, completed, list_id)
		VALUES ($1, FALSE, $2)
		RETURNING id, title, completed, list_id, created_at, updated_at`,
		req.Title, ownedListID).Scan(
		&item.ID, &item.Title, &item.Completed, &item.ListID, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, apperror.NewNotFoundError("list not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to create item", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.NewDatabaseError("failed to commit item create", err)
	}
	return &item, nil
}

// List returns all items of an owned list in creation (insertion) order.
// An unowned or missing parent list yields not-found, never an empty array.
func (s *itemService) List(ctx context.Context, userID, listID int64) ([]Item, error) {
	var ownedListID int64
	err := s.db.QueryRow(ctx, `SELECT id FROM todo_lists WHERE id = $1 AND user_id = $2`, listID, userID).Scan(&ownedListID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("list not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to check list ownership", err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, title, completed, list_id, created_at, updated_at
		FROM todo_items
		WHERE list_id = $1
		ORDER BY id`, ownedListID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list items", err)
	}
	defer rows.Close()

	result := make([]Item, 0)
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Title, &item.Completed, &item.ListID, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan item", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read items", err)
	}
	return result, nil
}

// Update applies the supplied fields and re-stamps updated_at. Ownership is
// enforced in the UPDATE itself by joining the owning list, so the check
// and the mutation are one statement.
func (s *itemService) Update(ctx context.Context, userID, itemID int64, req UpdateItemRequest) (*Item, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	if req.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", argID))
		args = append(args, *req.Title)
		argID++
	}
	if req.Completed != nil {
		setClauses = append(setClauses, fmt.Sprintf("completed = $%d", argID))
		args = append(args, *req.Completed)
		argID++
	}

	if len(setClauses) == 0 {
		return s.get(ctx, userID, itemID)
	}

	setClauses = append(setClauses, "updated_at = now()")
	args = append(args, itemID, userID)

	query := fmt.Sprintf(`
		UPDATE todo_items AS i SET %s
		FROM todo_lists AS l
		WHERE i.id = $%d AND i.list_id = l.id AND l.user_id = $%d
		RETURNING i.id, i.title, i.completed, i.list_id, i.created_at, i.updated_at`,
		strings.Join(setClauses, ", "), argID, argID+1)

	var item Item
	err := s.db.QueryRow(ctx, query, args...).Scan(
		&item.ID, &item.Title, &item.Completed, &item.ListID, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("item not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to update item", err)
	}
	return &item, nil
}

// Delete removes exactly one item; no cascade. Ownership is enforced in
// the DELETE via the owning list.
func (s *itemService) Delete(ctx context.Context, userID, itemID int64) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM todo_items AS i
		USING todo_lists AS l
		WHERE i.id = $1 AND i.list_id = l.id AND l.user_id = $2`,
		itemID, userID)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("item not found", nil)
	}
	return nil
}

// get fetches one item with the same join-scoped ownership rule as Update.
func (s *itemService) get(ctx context.Context, userID, itemID int64) (*Item, error) {
	var item Item
	err := s.db.QueryRow(ctx, `
		SELECT i.id, i.title, i.completed, i.list_id, i.created_at, i.updated_at
		FROM todo_items AS i
		JOIN todo_lists AS l ON l.id = i.list_id
		WHERE i.id = $1 AND l.user_id = $2`,
		itemID, userID).Scan(
		&item.ID, &item.Title, &item.Completed, &item.ListID, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("item not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get item", err)
	}
	return &item, nil
}
