package upgrade

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

type recordingNavigator struct {
	destinations []string
	err          error
}

func (n *recordingNavigator) Navigate(_ context.Context, destination string) error {
	n.destinations = append(n.destinations, destination)
	return n.err
}

type paragraphRenderer struct{}

func (paragraphRenderer) RenderHTML(source string) (string, error) {
	return "<p>" + source + "</p>", nil
}

const destination = "/settings/subscription"

func newTestCoordinator(nav Navigator, opts ...Option) *Coordinator {
	return NewCoordinator(nav, destination, logger.NewNopLogger(), opts...)
}

func TestCoordinator_StartsClosed(t *testing.T) {
	c := newTestCoordinator(nil)
	assert.False(t, c.State().Open)
}

func TestCoordinator_InitialStateEncodesEmptyHighlights(t *testing.T) {
	c := newTestCoordinator(nil)

	var seen State
	c.Subscribe(func(s State) { seen = s })

	body, err := json.Marshal(c.State())
	require.NoError(t, err)
	assert.Contains(t, string(body), `"highlights":[]`)
	assert.NotNil(t, seen.Highlights)
}

func TestCoordinator_UnsubscribeTwiceKeepsOthers(t *testing.T) {
	c := newTestCoordinator(nil)

	var first, second int
	unsub := c.Subscribe(func(State) { first++ })
	c.Subscribe(func(State) { second++ })

	unsub()
	unsub()
	c.Open(OpenArgs{FeatureKey: plan.FeatureExpenses})

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestCoordinator_OpenDerivesRequiredPlanFromFeature(t *testing.T) {
	c := newTestCoordinator(nil)

	s := c.Open(OpenArgs{Reason: ReasonFeature, FeatureKey: plan.FeatureAPIAccess})

	assert.True(t, s.Open)
	assert.Equal(t, plan.NameEnterprise, s.RequiredPlan)
	assert.Equal(t, DefaultHighlights(plan.NameEnterprise), s.Highlights)
	assert.Equal(t, "Upgrade to Enterprise", s.Title)
	assert.Contains(t, s.Message, "API Access")
	assert.Contains(t, s.Message, "Enterprise")
}

func TestCoordinator_ExplicitRequiredPlanWins(t *testing.T) {
	c := newTestCoordinator(nil)

	s := c.Open(OpenArgs{FeatureKey: plan.FeatureAPIAccess, RequiredPlan: plan.NamePro})

	assert.Equal(t, ReasonFeature, s.Reason)
	assert.Equal(t, plan.NamePro, s.RequiredPlan)
	assert.Equal(t, DefaultHighlights(plan.NamePro), s.Highlights)
}

func TestCoordinator_NoRequiredPlan(t *testing.T) {
	c := newTestCoordinator(nil)

	s := c.Open(OpenArgs{Reason: ReasonLimit})

	assert.Empty(t, s.RequiredPlan)
	assert.Equal(t, "Upgrade to add more", s.Title)
	assert.Contains(t, s.Message, "a higher plan")
	assert.Equal(t, DefaultHighlights(plan.NamePro), s.Highlights)
}

func TestCoordinator_DevicesReason(t *testing.T) {
	c := newTestCoordinator(nil)

	s := c.Open(OpenArgs{Reason: ReasonDevices, RequiredPlan: plan.NameEnterprise})
	assert.Equal(t, "Device limit reached", s.Title)
	assert.Contains(t, s.Message, "devices")
}

func TestCoordinator_CallerCopyWins(t *testing.T) {
	c := newTestCoordinator(nil)

	s := c.Open(OpenArgs{
		FeatureKey: plan.FeatureExpenses,
		Title:      "Track expenses",
		Message:    "Expenses need Pro.",
		Highlights: []string{"one"},
	})
	assert.Equal(t, "Track expenses", s.Title)
	assert.Equal(t, "Expenses need Pro.", s.Message)
	assert.Equal(t, []string{"one"}, s.Highlights)
}

func TestCoordinator_CloseKeepsContent(t *testing.T) {
	c := newTestCoordinator(nil)
	opened := c.Open(OpenArgs{FeatureKey: plan.FeatureExpenses, Message: "custom"})

	c.Close()

	s := c.State()
	assert.False(t, s.Open)
	opened.Open = false
	assert.Equal(t, opened, s)
}

func TestCoordinator_ReopenDoesNotMixContent(t *testing.T) {
	c := newTestCoordinator(nil)
	c.Open(OpenArgs{
		FeatureKey: plan.FeatureAPIAccess,
		Title:      "Old title",
		Message:    "Old message",
		Highlights: []string{"old"},
	})
	c.Close()

	s := c.Open(OpenArgs{FeatureKey: plan.FeatureExpenses})

	fresh := newTestCoordinator(nil).Open(OpenArgs{FeatureKey: plan.FeatureExpenses})
	assert.Equal(t, fresh, s)
	assert.Equal(t, plan.NamePro, s.RequiredPlan)
	assert.NotContains(t, s.Highlights, "old")
}

func TestCoordinator_UpgradeNowNavigatesAndCloses(t *testing.T) {
	nav := &recordingNavigator{}
	c := newTestCoordinator(nav)
	c.Open(OpenArgs{FeatureKey: plan.FeatureExpenses})

	require.NoError(t, c.UpgradeNow(context.Background()))

	assert.Equal(t, []string{destination}, nav.destinations)
	assert.False(t, c.State().Open)
}

func TestCoordinator_UpgradeNowClosesOnNavigationError(t *testing.T) {
	nav := &recordingNavigator{err: errors.New("no ui attached")}
	c := newTestCoordinator(nav)
	c.Open(OpenArgs{FeatureKey: plan.FeatureExpenses})

	err := c.UpgradeNow(context.Background())
	assert.Error(t, err)
	assert.False(t, c.State().Open)
}

func TestCoordinator_NotNowOnlyCloses(t *testing.T) {
	nav := &recordingNavigator{}
	c := newTestCoordinator(nav)
	c.Open(OpenArgs{FeatureKey: plan.FeatureExpenses})

	c.NotNow()

	assert.Empty(t, nav.destinations)
	assert.False(t, c.State().Open)
}

func TestCoordinator_Subscribe(t *testing.T) {
	c := newTestCoordinator(nil)

	var seen []bool
	unsub := c.Subscribe(func(s State) { seen = append(seen, s.Open) })

	c.Open(OpenArgs{FeatureKey: plan.FeatureExpenses})
	c.Close()
	c.Close()
	unsub()
	c.Open(OpenArgs{FeatureKey: plan.FeatureExpenses})

	assert.Equal(t, []bool{false, true, false}, seen)
}

func TestCoordinator_RendersMessage(t *testing.T) {
	c := newTestCoordinator(nil, WithRenderer(paragraphRenderer{}))

	s := c.Open(OpenArgs{Message: "hello"})
	assert.Equal(t, "<p>hello</p>", s.MessageHTML)
}

func TestParseReason(t *testing.T) {
	r, err := ParseReason("")
	require.NoError(t, err)
	assert.Equal(t, ReasonFeature, r)

	_, err = ParseReason("price")
	assert.Error(t, err)
}
