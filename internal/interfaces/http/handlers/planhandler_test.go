package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerpos/ledgerpos/internal/application/featuregate"
	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
	"github.com/ledgerpos/ledgerpos/internal/domain/upgrade"
	"github.com/ledgerpos/ledgerpos/internal/interfaces/http/handlers/testutil"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

type stubPlanAccess struct {
	access     *plan.Access
	refreshErr error
}

func (s *stubPlanAccess) Access(ctx context.Context) *plan.Access { return s.access }

func (s *stubPlanAccess) Refresh(ctx context.Context) (*plan.Access, error) {
	return s.access, s.refreshErr
}

func TestPlanHandler_GetAccess(t *testing.T) {
	h := NewPlanHandler(&stubPlanAccess{access: plan.Resolve(&plan.Subscription{PlanName: "Pro"})}, logger.NewNopLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/plan/access", nil)

	h.GetAccess(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got AccessResponse
	decodeData(t, w.Body.Bytes(), &got)
	assert.Equal(t, plan.NamePro, got.Plan)
	assert.Contains(t, got.Features, plan.FeatureAuditLogsFull)
	assert.False(t, got.ComplianceMode)
}

func TestPlanHandler_RefreshFailureKeepsPrevious(t *testing.T) {
	h := NewPlanHandler(&stubPlanAccess{access: plan.Resolve(nil), refreshErr: errors.New("timeout")}, logger.NewNopLogger())
	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/plan/refresh", nil)

	h.RefreshAccess(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPlanHandler_GetGate(t *testing.T) {
	h := NewPlanHandler(&stubPlanAccess{access: plan.Resolve(nil)}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/plan/gates/categories", nil)
	testutil.SetURLParam(c, "feature", "categories")
	h.GetGate(c)
	require.Equal(t, http.StatusOK, w.Code)
	var allowed featuregate.Decision
	decodeData(t, w.Body.Bytes(), &allowed)
	assert.True(t, allowed.Allowed)
	assert.Nil(t, allowed.Locked)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/v1/plan/gates/compliance_mode", nil)
	testutil.SetURLParam(c, "feature", "compliance_mode")
	h.GetGate(c)
	require.Equal(t, http.StatusOK, w.Code)
	var locked featuregate.Decision
	decodeData(t, w.Body.Bytes(), &locked)
	assert.False(t, locked.Allowed)
	require.NotNil(t, locked.Locked)
	assert.Equal(t, plan.NameEnterprise, locked.Locked.RequiredPlan)
	assert.Equal(t, plan.NameBasic, locked.Locked.CurrentPlan)
}

func TestPlanHandler_GetGate_UnknownFeature(t *testing.T) {
	h := NewPlanHandler(&stubPlanAccess{access: plan.Resolve(nil)}, logger.NewNopLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/plan/gates/teleport", nil)
	testutil.SetURLParam(c, "feature", "teleport")

	h.GetGate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlanHandler_CheckLimit(t *testing.T) {
	two := 2
	access := plan.Resolve(&plan.Subscription{PlanName: "basic", Limits: plan.Limits{MaxUsers: &two}})
	h := NewPlanHandler(&stubPlanAccess{access: access}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/plan/limits/max_devices?current=2", nil)
	testutil.SetURLParam(c, "key", "max_devices")
	testutil.SetQueryParams(c, map[string]string{"current": "2"})
	h.CheckLimit(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got LimitCheckResponse
	decodeData(t, w.Body.Bytes(), &got)
	assert.False(t, got.Allowed)
	require.NotNil(t, got.Limit)
	assert.Equal(t, 2, *got.Limit)
	assert.Equal(t, upgrade.ReasonDevices, got.Reason)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/v1/plan/limits/max_products?current=500", nil)
	testutil.SetURLParam(c, "key", "max_products")
	testutil.SetQueryParams(c, map[string]string{"current": "500"})
	h.CheckLimit(c)

	require.Equal(t, http.StatusOK, w.Code)
	got = LimitCheckResponse{}
	decodeData(t, w.Body.Bytes(), &got)
	assert.True(t, got.Allowed)
	assert.Nil(t, got.Limit)
	assert.Empty(t, got.Reason)
}

func TestPlanHandler_CheckLimit_InvalidInput(t *testing.T) {
	h := NewPlanHandler(&stubPlanAccess{access: plan.Resolve(nil)}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/plan/limits/max_cats", nil)
	testutil.SetURLParam(c, "key", "max_cats")
	h.CheckLimit(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/v1/plan/limits/max_users?current=-1", nil)
	testutil.SetURLParam(c, "key", "max_users")
	testutil.SetQueryParams(c, map[string]string{"current": "-1"})
	h.CheckLimit(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
