package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerpos/ledgerpos/internal/domain/auditlog"
	"github.com/ledgerpos/ledgerpos/internal/domain/category"
	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
	"github.com/ledgerpos/ledgerpos/internal/domain/profile"
	"github.com/ledgerpos/ledgerpos/internal/domain/session"
	"github.com/ledgerpos/ledgerpos/internal/domain/setting"
	"github.com/ledgerpos/ledgerpos/internal/domain/syncqueue"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/models"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/testdb"
	"github.com/ledgerpos/ledgerpos/internal/shared/db"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
	"github.com/ledgerpos/ledgerpos/internal/shared/query"
)

func TestLocalSettingRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewLocalSettingRepository(testdb.New(t), logger.NewNopLogger())

	_, err := repo.Get(ctx, "connectivity_mode")
	assert.ErrorIs(t, err, setting.ErrSettingNotFound)

	s, err := setting.NewLocalSetting("connectivity_mode", "offline")
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, s))

	s2, err := setting.NewLocalSetting("connectivity_mode", "online")
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, s2))

	got, err := repo.Get(ctx, "connectivity_mode")
	require.NoError(t, err)
	assert.Equal(t, "online", got.Value())
}

func TestProfileRepository(t *testing.T) {
	ctx := context.Background()
	gdb := testdb.New(t)
	require.NoError(t, gdb.Create(&models.ProfileModel{
		UserID:        "user_1",
		BusinessID:    "biz_1",
		Username:      "Alice",
		UsernameLower: "alice",
		Email:         "alice@example.com",
		Role:          "owner",
		CreatedAt:     time.Now().UTC(),
	}).Error)
	repo := NewProfileRepository(gdb, logger.NewNopLogger())

	p, err := repo.GetByUsernameLower(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", p.Email())
	assert.Equal(t, "owner", p.Role().String())

	_, err = repo.GetByUsernameLower(ctx, "Alice")
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)

	p, err = repo.GetByUserID(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.Username())
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(testdb.New(t), logger.NewNopLogger())

	a := session.NewSession("user_1", "Till 1", "10.0.0.1", "ua")
	b := session.NewSession("user_1", "Till 2", "10.0.0.2", "ua")
	c := session.NewSession("user_1", "Phone", "10.0.0.3", "ua")
	other := session.NewSession("user_2", "Till 9", "10.0.0.9", "ua")
	for _, s := range []*session.Session{a, b, c, other} {
		require.NoError(t, repo.Create(ctx, s))
	}

	active, err := repo.ListActiveByUserID(ctx, "user_1")
	require.NoError(t, err)
	assert.Len(t, active, 3)

	b.Revoke()
	require.NoError(t, repo.Update(ctx, b))

	n, err := repo.RevokeAllByUserID(ctx, "user_1", a.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	active, err = repo.ListActiveByUserID(ctx, "user_1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, a.ID(), active[0].ID())

	got, err := repo.GetByID(ctx, other.ID())
	require.NoError(t, err)
	assert.True(t, got.IsActive())

	_, err = repo.GetByID(ctx, "ses_missing")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(testdb.New(t), logger.NewNopLogger())

	drinks, err := category.NewCategory("biz_1", "Drinks", "", 2)
	require.NoError(t, err)
	snacks, err := category.NewCategory("biz_1", "Snacks", "", 1)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, drinks))
	require.NoError(t, repo.Create(ctx, snacks))

	list, err := repo.ListByBusinessID(ctx, "biz_1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Snacks", list[0].Name())

	exists, err := repo.ExistsByName(ctx, "biz_1", "drinks", "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "biz_1", "drinks", drinks.ID())
	require.NoError(t, err)
	assert.False(t, exists)

	name := "Beverages"
	_, err = drinks.Update(&name, nil, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, drinks))

	got, err := repo.GetByID(ctx, drinks.ID())
	require.NoError(t, err)
	assert.Equal(t, "Beverages", got.Name())

	_, err = repo.GetByID(ctx, "cat_missing")
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestAuditLogRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAuditLogRepository(testdb.New(t), logger.NewNopLogger())

	for i := 0; i < 3; i++ {
		e := auditlog.NewEntry("biz_1", "user_1", auditlog.ActionCreate, "category", "cat_x", map[string]any{"n": i})
		require.NoError(t, repo.Create(ctx, e))
	}
	require.NoError(t, repo.Create(ctx, auditlog.NewEntry("biz_2", "user_9", auditlog.ActionDelete, "category", "cat_y", nil)))

	list, total, err := repo.List(ctx, auditlog.Filter{
		PageFilter: query.PageFilter{Page: 1, PageSize: 2},
		BusinessID: "biz_1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, list, 2)
	assert.Equal(t, "category", list[0].EntityType())
	assert.Contains(t, list[0].Details(), "n")

	_, total, err = repo.List(ctx, auditlog.Filter{
		BusinessID: "biz_1",
		From:       time.Now().UTC().Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestSyncOperationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSyncOperationRepository(testdb.New(t), logger.NewNopLogger())

	var ids []string
	for i := 0; i < 3; i++ {
		op, err := syncqueue.NewOperation("category", "cat_x", syncqueue.ActionUpsert, map[string]any{"i": i})
		require.NoError(t, err)
		require.NoError(t, repo.Enqueue(ctx, op))
		ids = append(ids, op.ID())
	}

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	pending, err := repo.ListPending(ctx, 2)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.JSONEq(t, `{"i":0}`, string(pending[0].Payload()))

	require.NoError(t, repo.DeleteByIDs(ctx, ids[2:]))
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestSyncOperationRepository_MarkFailedLeavesPendingSet(t *testing.T) {
	ctx := context.Background()
	gdb := testdb.New(t)
	repo := NewSyncOperationRepository(gdb, logger.NewNopLogger())

	var ids []string
	for i := 0; i < 3; i++ {
		op, err := syncqueue.NewOperation("category", "cat_x", syncqueue.ActionUpsert, map[string]any{"i": i})
		require.NoError(t, err)
		require.NoError(t, repo.Enqueue(ctx, op))
		ids = append(ids, op.ID())
	}

	require.NoError(t, repo.MarkFailed(ctx, ids[:2], "invalid payload"))

	pending, err := repo.ListPending(ctx, 2)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, ids[2], pending[0].ID())

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	failed, err := repo.CountFailed(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), failed)

	var row models.SyncOperationModel
	require.NoError(t, gdb.First(&row, "id = ?", ids[0]).Error)
	assert.Equal(t, 1, row.Attempts)
	assert.Equal(t, "invalid payload", row.LastError)
	assert.NotNil(t, row.FailedAt)
}

func TestSubscriptionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSubscriptionRepository(testdb.New(t), logger.NewNopLogger())

	_, err := repo.GetByBusinessID(ctx, "biz_1")
	assert.ErrorIs(t, err, plan.ErrNotFound)

	users := 5
	require.NoError(t, repo.Save(ctx, &plan.Subscription{
		BusinessID: "biz_1",
		PlanName:   "pro",
		Limits:     plan.Limits{MaxUsers: &users},
		UpdatedAt:  time.Now().UTC(),
	}))
	require.NoError(t, repo.Save(ctx, &plan.Subscription{
		BusinessID: "biz_1",
		PlanName:   "enterprise",
		Features:   []string{"pos", "api_access"},
		UpdatedAt:  time.Now().UTC(),
	}))

	got, err := repo.GetByBusinessID(ctx, "biz_1")
	require.NoError(t, err)
	assert.Equal(t, "enterprise", got.PlanName)
	assert.Equal(t, []string{"pos", "api_access"}, got.Features)
	assert.Nil(t, got.Limits.MaxUsers)
}

func TestTransactionRollback(t *testing.T) {
	ctx := context.Background()
	gdb := testdb.New(t)
	tm := db.NewTransactionManager(gdb)
	cats := NewCategoryRepository(gdb, logger.NewNopLogger())
	ops := NewSyncOperationRepository(gdb, logger.NewNopLogger())

	c, err := category.NewCategory("biz_1", "Drinks", "", 0)
	require.NoError(t, err)

	err = tm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := cats.Create(ctx, c); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	_, err = cats.GetByID(ctx, c.ID())
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)

	n, err := ops.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
