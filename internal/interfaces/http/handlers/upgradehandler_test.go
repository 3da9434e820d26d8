package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
	"github.com/ledgerpos/ledgerpos/internal/domain/upgrade"
	"github.com/ledgerpos/ledgerpos/internal/interfaces/http/handlers/testutil"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

type recordingNavigator struct {
	destinations []string
	err          error
}

func (n *recordingNavigator) Navigate(ctx context.Context, destination string) error {
	n.destinations = append(n.destinations, destination)
	return n.err
}

func newUpgradeHandler(nav upgrade.Navigator) (*UpgradeHandler, *upgrade.Coordinator) {
	coordinator := upgrade.NewCoordinator(nav, "/settings/subscription", logger.NewNopLogger())
	return NewUpgradeHandler(coordinator, logger.NewNopLogger()), coordinator
}

func TestUpgradeHandler_OpenDerivesDefaults(t *testing.T) {
	h, coordinator := newUpgradeHandler(&recordingNavigator{})
	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/upgrade/open", OpenUpgradeRequest{
		Reason:     "feature",
		FeatureKey: "audit_logs_full",
	})

	h.Open(c)

	require.Equal(t, http.StatusOK, w.Code)
	state := coordinator.State()
	assert.True(t, state.Open)
	assert.Equal(t, plan.NamePro, state.RequiredPlan)
	assert.NotEmpty(t, state.Title)
	assert.NotEmpty(t, state.Highlights)
}

func TestUpgradeHandler_OpenRejectsUnknownValues(t *testing.T) {
	h, coordinator := newUpgradeHandler(&recordingNavigator{})

	for _, req := range []OpenUpgradeRequest{
		{Reason: "boredom"},
		{FeatureKey: "teleport"},
		{RequiredPlan: "platinum"},
	} {
		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/upgrade/open", req)
		h.Open(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
	assert.False(t, coordinator.State().Open)
}

func TestUpgradeHandler_ConfirmNavigatesAndCloses(t *testing.T) {
	nav := &recordingNavigator{}
	h, coordinator := newUpgradeHandler(nav)
	coordinator.Open(upgrade.OpenArgs{Reason: upgrade.ReasonLimit, RequiredPlan: plan.NameEnterprise})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/upgrade/confirm", nil)
	h.Confirm(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got ConfirmUpgradeResponse
	decodeData(t, w.Body.Bytes(), &got)
	assert.True(t, got.Navigated)
	assert.Equal(t, "/settings/subscription", got.Destination)
	assert.Equal(t, []string{"/settings/subscription"}, nav.destinations)
	assert.False(t, coordinator.State().Open)
}

func TestUpgradeHandler_ConfirmWithoutListenerStillCloses(t *testing.T) {
	h, coordinator := newUpgradeHandler(&recordingNavigator{err: errors.New("no UI stream is connected")})
	coordinator.Open(upgrade.OpenArgs{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/upgrade/confirm", nil)
	h.Confirm(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got ConfirmUpgradeResponse
	decodeData(t, w.Body.Bytes(), &got)
	assert.False(t, got.Navigated)
	assert.False(t, coordinator.State().Open)
}

func TestUpgradeHandler_DismissKeepsContent(t *testing.T) {
	h, coordinator := newUpgradeHandler(nil)
	coordinator.Open(upgrade.OpenArgs{Title: "Unlock reports"})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/upgrade/dismiss", nil)
	h.Dismiss(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got upgrade.State
	decodeData(t, w.Body.Bytes(), &got)
	assert.False(t, got.Open)
	assert.Equal(t, "Unlock reports", got.Title)
}
