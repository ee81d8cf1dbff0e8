package lists

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/todo-go/apperror"
)

// fakeTx records Exec calls in order. Embedding pgx.Tx satisfies the rest of
// the interface; methods the code under test never reaches stay nil.
type fakeTx struct {
	pgx.Tx
	execSQL    []string
	execTags   []pgconn.CommandTag
	execErrs   []error
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	i := len(f.execSQL)
	f.execSQL = append(f.execSQL, sql)
	var tag pgconn.CommandTag
	if i < len(f.execTags) {
		tag = f.execTags[i]
	}
	var err error
	if i < len(f.execErrs) {
		err = f.execErrs[i]
	}
	return tag, err
}

func (f *fakeTx) Commit(_ context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(_ context.Context) error {
	f.rolledBack = true
	return nil
}

type fakeDB struct {
	tx       *fakeTx
	beginErr error
}

func (f *fakeDB) Begin(_ context.Context) (pgx.Tx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return f.tx, nil
}

func (f *fakeDB) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	panic("unexpected Query outside a transaction")
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	panic("unexpected QueryRow outside a transaction")
}

func TestDelete_CascadeRemovesItemsBeforeList(t *testing.T) {
	t.Parallel()

	tx := &fakeTx{execTags: []pgconn.CommandTag{
		pgconn.NewCommandTag("DELETE 3"),
		pgconn.NewCommandTag("DELETE 1"),
	}}
	svc := &listService{db: &fakeDB{tx: tx}}

	err := svc.Delete(context.Background(), 1, 5)
	require.NoError(t, err)

	// Children go first, then the parent, all inside the committed
	// transaction.
	require.Len(t, tx.execSQL, 2)
	assert.Contains(t, tx.execSQL[0], "DELETE FROM todo_items")
	assert.Contains(t, tx.execSQL[0], "user_id")
	assert.Contains(t, tx.execSQL[1], "DELETE FROM todo_lists")
	assert.True(t, tx.committed)
}

func TestDelete_MissingListRollsBackItemDelete(t *testing.T) {
	t.Parallel()

	// Both deletes touch zero rows: absent or unowned list. The already
	// executed item delete must be rolled back, never committed.
	tx := &fakeTx{execTags: []pgconn.CommandTag{
		pgconn.NewCommandTag("DELETE 0"),
		pgconn.NewCommandTag("DELETE 0"),
	}}
	svc := &listService{db: &fakeDB{tx: tx}}

	err := svc.Delete(context.Background(), 1, 5)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestDelete_ItemDeleteFailureAborts(t *testing.T) {
	t.Parallel()

	tx := &fakeTx{execErrs: []error{errors.New("connection reset")}}
	svc := &listService{db: &fakeDB{tx: tx}}

	err := svc.Delete(context.Background(), 1, 5)
	require.Error(t, err)
	assert.False(t, apperror.IsNotFound(err))

	// The parent delete never runs once the child delete fails.
	assert.Len(t, tx.execSQL, 1)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestDelete_BeginFailure(t *testing.T) {
	t.Parallel()

	svc := &listService{db: &fakeDB{beginErr: errors.New("pool exhausted")}}

	err := svc.Delete(context.Background(), 1, 5)
	require.Error(t, err)
	assert.False(t, apperror.IsNotFound(err))
}
