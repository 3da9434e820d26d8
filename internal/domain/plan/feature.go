// Package plan resolves a business's subscription record into the feature set
// and limits the rest of the agent checks against.
package plan

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FeatureKey names a gated capability of the POS.
type FeatureKey string

const (
	FeaturePOS             FeatureKey = "pos"
	FeatureProducts        FeatureKey = "products"
	FeatureCategories      FeatureKey = "categories"
	FeatureInventory       FeatureKey = "inventory"
	FeatureTransactions    FeatureKey = "transactions"
	FeatureReportsBasic    FeatureKey = "reports_basic"
	FeatureReportsAdvanced FeatureKey = "reports_advanced"
	FeatureUsersRoles      FeatureKey = "users_roles"
	FeatureActivity        FeatureKey = "activity"
	FeatureAuditLogsFull   FeatureKey = "audit_logs_full"
	FeatureExpenses        FeatureKey = "expenses"
	FeaturePurchaseOrders  FeatureKey = "purchase_orders"
	FeatureMultiWarehouse  FeatureKey = "multi_warehouse"
	FeatureAPIAccess       FeatureKey = "api_access"
	FeatureCustomBranding  FeatureKey = "custom_branding"
	FeatureComplianceMode  FeatureKey = "compliance_mode"
)

// AllFeatures lists every known key in catalog order.
var AllFeatures = []FeatureKey{
	FeaturePOS,
	FeatureProducts,
	FeatureCategories,
	FeatureInventory,
	FeatureTransactions,
	FeatureReportsBasic,
	FeatureReportsAdvanced,
	FeatureUsersRoles,
	FeatureActivity,
	FeatureAuditLogsFull,
	FeatureExpenses,
	FeaturePurchaseOrders,
	FeatureMultiWarehouse,
	FeatureAPIAccess,
	FeatureCustomBranding,
	FeatureComplianceMode,
}

var knownFeatures = func() map[FeatureKey]struct{} {
	m := make(map[FeatureKey]struct{}, len(AllFeatures))
	for _, f := range AllFeatures {
		m[f] = struct{}{}
	}
	return m
}()

func (f FeatureKey) IsValid() bool {
	_, ok := knownFeatures[f]
	return ok
}

func (f FeatureKey) String() string {
	return string(f)
}

var labelCaser = cases.Title(language.English)

// Label is a human readable name such as "Purchase Orders".
func (f FeatureKey) Label() string {
	if f == FeatureAPIAccess {
		return "API Access"
	}
	return labelCaser.String(strings.ReplaceAll(string(f), "_", " "))
}

func ParseFeatureKey(s string) (FeatureKey, error) {
	f := FeatureKey(s)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownFeature, s)
	}
	return f, nil
}
