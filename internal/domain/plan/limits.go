package plan

// LimitKey names a countable resource capped by the plan.
type LimitKey string

const (
	LimitUsers    LimitKey = "max_users"
	LimitProducts LimitKey = "max_products"
	LimitBranches LimitKey = "max_branches"
	LimitDevices  LimitKey = "max_devices"
)

func (k LimitKey) IsValid() bool {
	switch k {
	case LimitUsers, LimitProducts, LimitBranches, LimitDevices:
		return true
	}
	return false
}

// Limits holds the numeric caps of a plan. A nil field means unlimited.
type Limits struct {
	MaxUsers    *int `json:"max_users"`
	MaxProducts *int `json:"max_products"`
	MaxBranches *int `json:"max_branches"`
	MaxDevices  *int `json:"max_devices"`
}

func (l Limits) get(key LimitKey) *int {
	switch key {
	case LimitUsers:
		return l.MaxUsers
	case LimitProducts:
		return l.MaxProducts
	case LimitBranches:
		return l.MaxBranches
	case LimitDevices:
		return l.MaxDevices
	}
	return nil
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// resolveLimits copies the record's limits. Devices default to the user cap
// when no separate device cap is set.
func resolveLimits(in Limits) Limits {
	out := Limits{
		MaxUsers:    copyInt(in.MaxUsers),
		MaxProducts: copyInt(in.MaxProducts),
		MaxBranches: copyInt(in.MaxBranches),
		MaxDevices:  copyInt(in.MaxDevices),
	}
	if out.MaxDevices == nil {
		out.MaxDevices = copyInt(in.MaxUsers)
	}
	return out
}
