package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerpos/ledgerpos/internal/domain/auditlog"
	"github.com/ledgerpos/ledgerpos/internal/domain/category"
	"github.com/ledgerpos/ledgerpos/internal/domain/syncqueue"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/testdb"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/repository"
	"github.com/ledgerpos/ledgerpos/internal/shared/db"
	apperrors "github.com/ledgerpos/ledgerpos/internal/shared/errors"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

type countingRefresher struct {
	calls int
}

func (r *countingRefresher) RefreshQueueCount(context.Context) error {
	r.calls++
	return nil
}

type fixture struct {
	categories category.Repository
	audit      auditlog.Repository
	queue      syncqueue.Repository
	refresher  *countingRefresher
	create     *CreateCategoryUseCase
	update     *UpdateCategoryUseCase
	list       *ListCategoriesUseCase
}

func newFixture(t *testing.T) *fixture {
	gdb := testdb.New(t)
	log := logger.NewNopLogger()
	f := &fixture{
		categories: repository.NewCategoryRepository(gdb, log),
		audit:      repository.NewAuditLogRepository(gdb, log),
		queue:      repository.NewSyncOperationRepository(gdb, log),
		refresher:  &countingRefresher{},
	}
	txMgr := db.NewTransactionManager(gdb)
	f.create = NewCreateCategoryUseCase(f.categories, f.audit, f.queue, txMgr, f.refresher, log)
	f.update = NewUpdateCategoryUseCase(f.categories, f.audit, f.queue, txMgr, f.refresher, log)
	f.list = NewListCategoriesUseCase(f.categories, log)
	return f
}

func (f *fixture) queued(t *testing.T) int64 {
	n, err := f.queue.Count(context.Background())
	require.NoError(t, err)
	return n
}

func (f *fixture) auditEntries(t *testing.T) []*auditlog.Entry {
	entries, _, err := f.audit.List(context.Background(), auditlog.Filter{BusinessID: "biz_1"})
	require.NoError(t, err)
	return entries
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.create.Execute(ctx, CreateCategoryCommand{
		BusinessID: "biz_1",
		ActorID:    "usr_1",
		Name:       "  Drinks ",
		SortOrder:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Drinks", created.Name)
	assert.Equal(t, 2, created.SortOrder)

	assert.Equal(t, int64(1), f.queued(t))
	assert.Equal(t, 1, f.refresher.calls)

	entries := f.auditEntries(t)
	require.Len(t, entries, 1)
	assert.Equal(t, auditlog.ActionCreate, entries[0].Action())
	assert.Equal(t, created.ID, entries[0].EntityID())

	listed, err := f.list.Execute(ctx, "biz_1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestCreateCategory_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.create.Execute(context.Background(), CreateCategoryCommand{BusinessID: "biz_1", Name: "   "})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Zero(t, f.queued(t))
}

func TestCreateCategory_DuplicateRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.create.Execute(ctx, CreateCategoryCommand{BusinessID: "biz_1", ActorID: "usr_1", Name: "Drinks"})
	require.NoError(t, err)

	_, err = f.create.Execute(ctx, CreateCategoryCommand{BusinessID: "biz_1", ActorID: "usr_1", Name: "Drinks"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))

	assert.Equal(t, int64(1), f.queued(t))
	assert.Len(t, f.auditEntries(t), 1)
	assert.Equal(t, 1, f.refresher.calls)
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.create.Execute(ctx, CreateCategoryCommand{BusinessID: "biz_1", ActorID: "usr_1", Name: "Drinks"})
	require.NoError(t, err)

	name := "Hot drinks"
	updated, err := f.update.Execute(ctx, UpdateCategoryCommand{
		BusinessID: "biz_1",
		ActorID:    "usr_1",
		CategoryID: created.ID,
		Name:       &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hot drinks", updated.Name)
	assert.Equal(t, int64(2), f.queued(t))
	assert.Len(t, f.auditEntries(t), 2)
	assert.Equal(t, 2, f.refresher.calls)

	unchanged, err := f.update.Execute(ctx, UpdateCategoryCommand{
		BusinessID: "biz_1",
		CategoryID: created.ID,
		Name:       &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hot drinks", unchanged.Name)
	assert.Equal(t, int64(2), f.queued(t))
	assert.Equal(t, 2, f.refresher.calls)
}

func TestUpdateCategory_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	drinks, err := f.create.Execute(ctx, CreateCategoryCommand{BusinessID: "biz_1", Name: "Drinks"})
	require.NoError(t, err)
	_, err = f.create.Execute(ctx, CreateCategoryCommand{BusinessID: "biz_1", Name: "Snacks"})
	require.NoError(t, err)

	name := "Snacks"
	_, err = f.update.Execute(ctx, UpdateCategoryCommand{BusinessID: "biz_1", CategoryID: drinks.ID, Name: &name})
	assert.True(t, apperrors.IsConflictError(err))

	_, err = f.update.Execute(ctx, UpdateCategoryCommand{BusinessID: "biz_2", CategoryID: drinks.ID, Name: &name})
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = f.update.Execute(ctx, UpdateCategoryCommand{BusinessID: "biz_1", CategoryID: "cat_missing", Name: &name})
	assert.True(t, apperrors.IsNotFoundError(err))

	empty := ""
	_, err = f.update.Execute(ctx, UpdateCategoryCommand{BusinessID: "biz_1", CategoryID: drinks.ID, Name: &empty})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestListCategories_Empty(t *testing.T) {
	f := newFixture(t)

	listed, err := f.list.Execute(context.Background(), "biz_1")
	require.NoError(t, err)
	assert.NotNil(t, listed)
	assert.Empty(t, listed)
}
