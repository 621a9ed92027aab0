package entity

// Role represents the tier of an authenticated principal.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superAdmin"
)

// Roles lists every role the system recognises, in the order the
// authorization gate inspects their credential cookies.
var Roles = []Role{RoleUser, RoleAdmin, RoleSuperAdmin}

// IsKnown reports whether r is one of the recognised roles.
func (r Role) IsKnown() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// CookieName is the name of the cookie carrying this family's credential.
func (r Role) CookieName() string {
	return string(r)
}

// Collection is the document collection holding principals of this family.
func (r Role) Collection() string {
	switch r {
	case RoleAdmin:
		return "admins"
	case RoleSuperAdmin:
		return "superAdmins"
	default:
		return "users"
	}
}

// Label is the human readable family name used in response messages.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleSuperAdmin:
		return "superAdmin"
	default:
		return "User"
	}
}
