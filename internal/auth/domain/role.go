package domain

// Role tier codes. The numeric values are part of the wire contract: they are
// embedded in access-token claims and stored per account.
const (
	RoleTierUser   = 2001
	RoleTierEditor = 1984
	RoleTierAdmin  = 5150
)

// RoleSet is the fixed enum-keyed role assignment for an account. A zero
// field means the role is not granted, so claims embedding stays exhaustive
// and type-checked instead of an open-ended dictionary.
type RoleSet struct {
	User   int `json:"User,omitempty"`
	Editor int `json:"Editor,omitempty"`
	Admin  int `json:"Admin,omitempty"`
}

// DefaultRoles is what every freshly registered account gets.
func DefaultRoles() RoleSet {
	return RoleSet{User: RoleTierUser}
}

// Tiers returns the granted tier codes in declaration order. This is the
// snapshot copied into access-token claims at issuance.
func (r RoleSet) Tiers() []int {
	tiers := make([]int, 0, 3)
	for _, tier := range []int{r.User, r.Editor, r.Admin} {
		if tier != 0 {
			tiers = append(tiers, tier)
		}
	}
	return tiers
}

// Map returns the name-to-tier view used in API responses.
func (r RoleSet) Map() map[string]int {
	m := make(map[string]int, 3)
	if r.User != 0 {
		m["User"] = r.User
	}
	if r.Editor != 0 {
		m["Editor"] = r.Editor
	}
	if r.Admin != 0 {
		m["Admin"] = r.Admin
	}
	return m
}

// HasTier reports whether the set grants the given tier code.
func (r RoleSet) HasTier(tier int) bool {
	return tier != 0 && (r.User == tier || r.Editor == tier || r.Admin == tier)
}
