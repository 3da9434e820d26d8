package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestResolve_DefaultFeatureSets(t *testing.T) {
	basic := Resolve(&Subscription{PlanName: "basic"})
	assert.True(t, basic.CanUse(FeaturePOS))
	assert.False(t, basic.CanUse(FeatureExpenses))

	pro := Resolve(&Subscription{PlanName: "pro"})
	assert.True(t, pro.CanUse(FeatureExpenses))
	assert.False(t, pro.CanUse(FeatureAPIAccess))

	enterprise := Resolve(&Subscription{PlanName: "enterprise"})
	assert.True(t, enterprise.CanUse(FeatureAPIAccess))
	assert.True(t, enterprise.IsComplianceMode())
	assert.False(t, pro.IsComplianceMode())
}

func TestResolve_UnknownPlanIsBasic(t *testing.T) {
	basic := Resolve(&Subscription{PlanName: "basic"})

	for _, raw := range []string{"", "platinum", "trial", "PRO-legacy"} {
		a := Resolve(&Subscription{PlanName: raw})
		assert.Equal(t, NameBasic, a.PlanName(), raw)
		assert.Equal(t, "Basic", a.DisplayName(), raw)
		assert.ElementsMatch(t, basic.Features(), a.Features(), raw)
	}

	assert.Equal(t, NameBasic, Resolve(nil).PlanName())
}

func TestResolve_NormalizesCase(t *testing.T) {
	a := Resolve(&Subscription{PlanName: " Enterprise "})
	assert.Equal(t, NameEnterprise, a.PlanName())
	assert.Equal(t, "Enterprise", a.DisplayName())
}

func TestResolve_ExplicitFeatureList(t *testing.T) {
	a := Resolve(&Subscription{
		PlanName: "basic",
		Features: []string{"pos", "api_access", "teleport", "pos"},
	})

	assert.Equal(t, []FeatureKey{FeaturePOS, FeatureAPIAccess}, a.Features())
	assert.True(t, a.CanUse(FeatureAPIAccess))
	assert.False(t, a.CanUse(FeatureProducts))
}

func TestResolve_EmptyExplicitListUsesDefaults(t *testing.T) {
	a := Resolve(&Subscription{PlanName: "pro", Features: []string{}})
	assert.ElementsMatch(t, DefaultFeatures(NamePro), a.Features())

	b := Resolve(&Subscription{PlanName: "pro", Features: []string{"nope"}})
	assert.ElementsMatch(t, DefaultFeatures(NamePro), b.Features())
}

func TestResolve_Limits(t *testing.T) {
	a := Resolve(&Subscription{
		PlanName: "pro",
		Limits:   Limits{MaxUsers: intPtr(5), MaxProducts: intPtr(500)},
	})

	limits := a.Limits()
	require.NotNil(t, limits.MaxDevices)
	assert.Equal(t, 5, *limits.MaxDevices)
	assert.Nil(t, limits.MaxBranches)

	b := Resolve(&Subscription{
		PlanName: "pro",
		Limits:   Limits{MaxUsers: intPtr(5), MaxDevices: intPtr(2)},
	})
	n, ok := b.Limit(LimitDevices)
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	_, ok = Resolve(&Subscription{}).Limit(LimitDevices)
	assert.False(t, ok)
}

func TestResolve_DoesNotAliasInput(t *testing.T) {
	sub := &Subscription{PlanName: "pro", Limits: Limits{MaxUsers: intPtr(3)}}
	a := Resolve(sub)
	*sub.Limits.MaxUsers = 100

	n, _ := a.Limit(LimitUsers)
	assert.Equal(t, 3, n)
}

func TestAccess_WithinLimit(t *testing.T) {
	a := Resolve(&Subscription{PlanName: "basic", Limits: Limits{MaxProducts: intPtr(2)}})

	assert.True(t, a.WithinLimit(LimitProducts, 0))
	assert.True(t, a.WithinLimit(LimitProducts, 1))
	assert.False(t, a.WithinLimit(LimitProducts, 2))
	assert.True(t, a.WithinLimit(LimitBranches, 1000))
}

func TestMeetsPlan(t *testing.T) {
	assert.False(t, MeetsPlan(NamePro, NameBasic))
	assert.True(t, MeetsPlan(NamePro, NamePro))
	assert.True(t, MeetsPlan(NamePro, NameEnterprise))
	assert.True(t, MeetsPlan(NameBasic, NameBasic))
	assert.False(t, MeetsPlan(NameEnterprise, NamePro))
}

func TestFeatureKey_Label(t *testing.T) {
	assert.Equal(t, "Purchase Orders", FeaturePurchaseOrders.Label())
	assert.Equal(t, "API Access", FeatureAPIAccess.Label())
	assert.Equal(t, "Pos", FeaturePOS.Label())
}

func TestParseName(t *testing.T) {
	n, err := ParseName("pro")
	require.NoError(t, err)
	assert.Equal(t, NamePro, n)

	_, err = ParseName("gold")
	assert.ErrorIs(t, err, ErrUnknownPlan)
}
