package plan

// Access is the resolved entitlement of a business. It is immutable once
// built.
type Access struct {
	planName    Name
	displayName string
	features    map[FeatureKey]struct{}
	ordered     []FeatureKey
	limits      Limits
}

// Resolve turns a subscription record into an Access. A nil record, an empty
// or unknown plan name all resolve to basic. An explicit feature list wins over
// the tier defaults when it names at least one known feature; unknown keys in
// it are dropped.
func Resolve(sub *Subscription) *Access {
	if sub == nil {
		sub = &Subscription{}
	}

	name := NormalizeName(sub.PlanName)
	features := explicitFeatures(sub.Features)
	if len(features) == 0 {
		features = DefaultFeatures(name)
	}

	a := &Access{
		planName:    name,
		displayName: name.DisplayName(),
		features:    make(map[FeatureKey]struct{}, len(features)),
		limits:      resolveLimits(sub.Limits),
	}
	for _, f := range features {
		if _, dup := a.features[f]; dup {
			continue
		}
		a.features[f] = struct{}{}
		a.ordered = append(a.ordered, f)
	}
	return a
}

func explicitFeatures(raw []string) []FeatureKey {
	if len(raw) == 0 {
		return nil
	}
	out := make([]FeatureKey, 0, len(raw))
	for _, s := range raw {
		if f := FeatureKey(s); f.IsValid() {
			out = append(out, f)
		}
	}
	return out
}

func (a *Access) PlanName() Name {
	return a.planName
}

func (a *Access) DisplayName() string {
	return a.displayName
}

// Features returns the resolved keys in the order they were granted.
func (a *Access) Features() []FeatureKey {
	return append([]FeatureKey(nil), a.ordered...)
}

func (a *Access) Limits() Limits {
	return resolveLimits(a.limits)
}

func (a *Access) CanUse(f FeatureKey) bool {
	_, ok := a.features[f]
	return ok
}

func (a *Access) IsComplianceMode() bool {
	return a.CanUse(FeatureComplianceMode)
}

// WithinLimit reports whether one more item can be added when current items
// already exist.
func (a *Access) WithinLimit(key LimitKey, current int) bool {
	limit := a.limits.get(key)
	if limit == nil {
		return true
	}
	return current < *limit
}

// Limit returns the cap for key, or false when unlimited.
func (a *Access) Limit(key LimitKey) (int, bool) {
	limit := a.limits.get(key)
	if limit == nil {
		return 0, false
	}
	return *limit, true
}
