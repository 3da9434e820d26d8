// Package authorization defines the staff roles carried in access tokens.
package authorization

// Role is a staff role within a business. super_admin is a platform role
// held by support staff and is not tied to a business.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleOwner      Role = "owner"
	RoleManager    Role = "manager"
	RoleCashier    Role = "cashier"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleOwner, RoleManager, RoleCashier:
		return true
	}
	return false
}

func (r Role) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

// ParseRole maps a token claim to a role. Anything unrecognised becomes the
// least privileged role.
func ParseRole(s string) Role {
	if r := Role(s); r.IsValid() {
		return r
	}
	return RoleCashier
}

// HasAny reports whether roles contains any of targets.
func HasAny(roles []Role, targets ...Role) bool {
	for _, r := range roles {
		for _, t := range targets {
			if r == t {
				return true
			}
		}
	}
	return false
}
