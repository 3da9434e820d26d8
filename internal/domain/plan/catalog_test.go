package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_IsMonotonic(t *testing.T) {
	entries := Catalog()
	for i := 1; i < len(entries); i++ {
		lower, higher := entries[i-1], entries[i]
		assert.Less(t, lower.Rank, higher.Rank)
		assert.Subset(t, higher.Features, lower.Features, "%s must include %s", higher.Name, lower.Name)
		assert.Greater(t, len(higher.Features), len(lower.Features))
	}
}

func TestRequiredPlanFor(t *testing.T) {
	for _, f := range AllFeatures {
		required, gated := RequiredPlanFor(f)
		if !gated {
			assert.Contains(t, DefaultFeatures(NameBasic), f)
			continue
		}

		assert.Contains(t, DefaultFeatures(required), f, "%s must be in its required tier", f)
		for _, entry := range Catalog() {
			if entry.Rank < required.Rank() {
				assert.NotContains(t, entry.Features, f, "%s must not be in %s", f, entry.Name)
			}
		}
	}

	n, ok := RequiredPlanFor(FeatureAPIAccess)
	assert.True(t, ok)
	assert.Equal(t, NameEnterprise, n)

	n, ok = RequiredPlanFor(FeatureExpenses)
	assert.True(t, ok)
	assert.Equal(t, NamePro, n)
}

func TestAllFeaturesCovered(t *testing.T) {
	assert.ElementsMatch(t, AllFeatures, DefaultFeatures(NameEnterprise))
}
