package upgrade

import (
	"fmt"

	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
)

var proHighlights = []string{
	"Advanced sales and inventory reports",
	"Staff accounts with roles and permissions",
	"Expense tracking and purchase orders",
	"Full audit log history",
}

var enterpriseHighlights = []string{
	"Everything in Pro",
	"Multiple warehouses and branches",
	"API access for integrations",
	"Custom branding on receipts",
	"Compliance mode for regulated markets",
}

// DefaultHighlights returns the selling points for the tier being pitched.
func DefaultHighlights(required plan.Name) []string {
	if required == plan.NameEnterprise {
		return append([]string(nil), enterpriseHighlights...)
	}
	return append([]string(nil), proHighlights...)
}

func planLabel(required plan.Name) string {
	if required == "" {
		return "a higher plan"
	}
	return "the " + required.DisplayName() + " plan"
}

func defaultTitle(reason Reason, required plan.Name) string {
	switch reason {
	case ReasonLimit:
		return "Upgrade to add more"
	case ReasonDevices:
		return "Device limit reached"
	}
	if required == "" {
		return "Upgrade your plan"
	}
	return "Upgrade to " + required.DisplayName()
}

func defaultMessage(reason Reason, feature plan.FeatureKey, required plan.Name) string {
	switch reason {
	case ReasonLimit:
		return fmt.Sprintf("You have reached the limit of your current plan. Upgrade to %s to add more.", planLabel(required))
	case ReasonDevices:
		return fmt.Sprintf("All device slots on your current plan are in use. Upgrade to %s to connect more devices.", planLabel(required))
	}
	if feature == "" {
		return fmt.Sprintf("This feature is not included in your current plan. Upgrade to %s to unlock it.", planLabel(required))
	}
	if required == "" {
		return fmt.Sprintf("%s is not included in your current plan.", feature.Label())
	}
	return fmt.Sprintf("%s is available on %s and above.", feature.Label(), planLabel(required))
}
