// Package featuregate decides whether plan-gated content may be shown and, if
// not, how the cashier is offered an upgrade.
package featuregate

import (
	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
	"github.com/ledgerpos/ledgerpos/internal/domain/upgrade"
)

// Gate protects one feature. RequiredPlan and Message are optional; an empty
// RequiredPlan is derived from the feature when the prompt opens.
type Gate struct {
	Feature      plan.FeatureKey
	RequiredPlan plan.Name
	Message      string
}

// Opener is the part of the upgrade coordinator a gate needs.
type Opener interface {
	Open(args upgrade.OpenArgs) upgrade.State
}

// Decision is the result of one evaluation. A locked decision carries the
// placeholder the UI shows instead of the content.
type Decision struct {
	Allowed bool    `json:"allowed"`
	Locked  *Locked `json:"locked,omitempty"`

	gate Gate
}

// Locked describes the placeholder for gated content.
type Locked struct {
	Feature      plan.FeatureKey `json:"feature"`
	FeatureLabel string          `json:"feature_label"`
	RequiredPlan plan.Name       `json:"required_plan,omitempty"`
	CurrentPlan  plan.Name       `json:"current_plan"`
	Message      string          `json:"message,omitempty"`
}

// Evaluate checks the gate against access. It holds no state, so a freshly
// fetched plan takes effect on the next call.
func (g Gate) Evaluate(access *plan.Access) Decision {
	if access == nil {
		access = plan.Resolve(nil)
	}
	if access.CanUse(g.Feature) {
		return Decision{Allowed: true, gate: g}
	}

	required := g.RequiredPlan
	if required == "" {
		if n, ok := plan.RequiredPlanFor(g.Feature); ok {
			required = n
		}
	}

	return Decision{
		Allowed: false,
		Locked: &Locked{
			Feature:      g.Feature,
			FeatureLabel: g.Feature.Label(),
			RequiredPlan: required,
			CurrentPlan:  access.PlanName(),
			Message:      g.Message,
		},
		gate: g,
	}
}

// Upgrade is the locked placeholder's action. It does nothing for an allowed
// decision.
func (d Decision) Upgrade(opener Opener) (upgrade.State, bool) {
	if d.Allowed || d.Locked == nil {
		return upgrade.State{}, false
	}
	return opener.Open(upgrade.OpenArgs{
		Reason:       upgrade.ReasonFeature,
		FeatureKey:   d.gate.Feature,
		RequiredPlan: d.gate.RequiredPlan,
		Message:      d.gate.Message,
	}), true
}
