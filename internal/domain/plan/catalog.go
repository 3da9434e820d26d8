package plan

var basicFeatures = []FeatureKey{
	FeaturePOS,
	FeatureProducts,
	FeatureCategories,
	FeatureInventory,
	FeatureTransactions,
	FeatureReportsBasic,
	FeatureActivity,
}

var proAdditions = []FeatureKey{
	FeatureReportsAdvanced,
	FeatureUsersRoles,
	FeatureExpenses,
	FeaturePurchaseOrders,
	FeatureAuditLogsFull,
}

var enterpriseAdditions = []FeatureKey{
	FeatureMultiWarehouse,
	FeatureAPIAccess,
	FeatureCustomBranding,
	FeatureComplianceMode,
}

// requiredPlan is the minimum tier for features that are not in basic.
var requiredPlan = func() map[FeatureKey]Name {
	m := make(map[FeatureKey]Name, len(proAdditions)+len(enterpriseAdditions))
	for _, f := range proAdditions {
		m[f] = NamePro
	}
	for _, f := range enterpriseAdditions {
		m[f] = NameEnterprise
	}
	return m
}()

// DefaultFeatures returns the built-in feature list of a tier. Each tier
// includes every feature of the tiers below it.
func DefaultFeatures(n Name) []FeatureKey {
	out := append([]FeatureKey{}, basicFeatures...)
	switch NormalizeName(string(n)) {
	case NameEnterprise:
		out = append(out, proAdditions...)
		out = append(out, enterpriseAdditions...)
	case NamePro:
		out = append(out, proAdditions...)
	}
	return out
}

// RequiredPlanFor returns the minimum tier of a feature, or false when the
// feature is available on every tier.
func RequiredPlanFor(f FeatureKey) (Name, bool) {
	n, ok := requiredPlan[f]
	return n, ok
}

// CatalogEntry describes one built-in tier.
type CatalogEntry struct {
	Name        Name         `json:"name" yaml:"name"`
	DisplayName string       `json:"display_name" yaml:"display_name"`
	Rank        int          `json:"rank" yaml:"rank"`
	Features    []FeatureKey `json:"features" yaml:"features"`
}

// Catalog lists the built-in tiers from lowest to highest.
func Catalog() []CatalogEntry {
	names := []Name{NameBasic, NamePro, NameEnterprise}
	out := make([]CatalogEntry, 0, len(names))
	for _, n := range names {
		out = append(out, CatalogEntry{
			Name:        n,
			DisplayName: n.DisplayName(),
			Rank:        n.Rank(),
			Features:    DefaultFeatures(n),
		})
	}
	return out
}
