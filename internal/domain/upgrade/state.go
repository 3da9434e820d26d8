// Package upgrade holds the single upgrade prompt shown when the business hits
// a plan boundary.
package upgrade

import (
	"fmt"

	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
)

// Reason is why the prompt was opened.
type Reason string

const (
	ReasonFeature Reason = "feature"
	ReasonLimit   Reason = "limit"
	ReasonDevices Reason = "devices"
)

func (r Reason) IsValid() bool {
	return r == ReasonFeature || r == ReasonLimit || r == ReasonDevices
}

func ParseReason(s string) (Reason, error) {
	if s == "" {
		return ReasonFeature, nil
	}
	r := Reason(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid upgrade reason: %s, must be 'feature', 'limit', or 'devices'", s)
	}
	return r, nil
}

// OpenArgs are the caller-supplied parts of a prompt. Empty fields are filled
// with defaults derived from Reason and the required plan.
type OpenArgs struct {
	Reason       Reason
	FeatureKey   plan.FeatureKey
	RequiredPlan plan.Name
	Title        string
	Message      string
	Highlights   []string
}

// State is what the prompt surface renders. Content fields survive Close so
// the closing transition keeps showing the last prompt.
type State struct {
	Open         bool            `json:"open"`
	Reason       Reason          `json:"reason"`
	FeatureKey   plan.FeatureKey `json:"feature_key,omitempty"`
	RequiredPlan plan.Name       `json:"required_plan,omitempty"`
	Title        string          `json:"title"`
	Message      string          `json:"message"`
	MessageHTML  string          `json:"message_html,omitempty"`
	Highlights   []string        `json:"highlights"`
}

func (s State) clone() State {
	out := s
	if s.Highlights != nil {
		out.Highlights = append(make([]string, 0, len(s.Highlights)), s.Highlights...)
	}
	return out
}
