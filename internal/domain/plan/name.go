package plan

import (
	"fmt"
	"strings"
)

// Name is a plan tier. Tiers are totally ordered by Rank.
type Name string

const (
	NameBasic      Name = "basic"
	NamePro        Name = "pro"
	NameEnterprise Name = "enterprise"
)

var ranks = map[Name]int{
	NameBasic:      0,
	NamePro:        1,
	NameEnterprise: 2,
}

var displayNames = map[Name]string{
	NameBasic:      "Basic",
	NamePro:        "Pro",
	NameEnterprise: "Enterprise",
}

func (n Name) IsValid() bool {
	_, ok := ranks[n]
	return ok
}

func (n Name) String() string {
	return string(n)
}

// Rank returns the tier's position. Unknown names rank as basic.
func (n Name) Rank() int {
	return ranks[n]
}

func (n Name) DisplayName() string {
	if d, ok := displayNames[n]; ok {
		return d
	}
	return displayNames[NameBasic]
}

// NormalizeName maps a stored plan label to a tier. Unknown or empty labels
// resolve to basic so a bad record never grants more than the lowest tier.
func NormalizeName(raw string) Name {
	n := Name(strings.ToLower(strings.TrimSpace(raw)))
	if n.IsValid() {
		return n
	}
	return NameBasic
}

// ParseName is the strict variant used for user input.
func ParseName(s string) (Name, error) {
	n := Name(s)
	if !n.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownPlan, s)
	}
	return n, nil
}

// MeetsPlan reports whether actual is at least as high a tier as required.
func MeetsPlan(required, actual Name) bool {
	return actual.Rank() >= required.Rank()
}
