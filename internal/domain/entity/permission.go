package entity

// Resource names a protected area of the API.
type Resource string

const (
	ResourceUser       Resource = "user"
	ResourceAdmin      Resource = "admin"
	ResourceSuperAdmin Resource = "superAdmin"
	ResourcePost       Resource = "post"
	ResourceComment    Resource = "comment"
	ResourceCategory   Resource = "category"
)

// FamilyResource maps a principal family to the resource guarding its routes.
func FamilyResource(r Role) Resource {
	return Resource(r)
}

// Action is an operation on a Resource.
type Action string

const (
	ActionList           Action = "list"
	ActionCount          Action = "count"
	ActionGet            Action = "get"
	ActionCreate         Action = "create"
	ActionRegister       Action = "register"
	ActionUpdate         Action = "update"
	ActionDelete         Action = "delete"
	ActionReact          Action = "react"
	ActionLogin          Action = "login"
	ActionForgotPassword Action = "forgotPassword"
	ActionResetPassword  Action = "resetPassword"
	// ActionSelf covers everything a principal does to its own account.
	ActionSelf Action = "self"
)

// Permission identifies one guarded endpoint.
type Permission struct {
	Resource Resource
	Action   Action
}

// Rule says who may perform a Permission. A Public rule needs no credential.
type Rule struct {
	Public bool
	Roles  []Role
}

// Admits reports whether role satisfies the rule.
func (r Rule) Admits(role Role) bool {
	if r.Public {
		return true
	}
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// PermissionTable is the declarative per-endpoint authorization table.
// Permissions missing from the table are denied.
type PermissionTable map[Permission]Rule

// Rule returns the rule for perm and whether one is defined.
func (t PermissionTable) Rule(perm Permission) (Rule, bool) {
	rule, ok := t[perm]
	return rule, ok
}

// Allows reports whether role may perform perm.
func (t PermissionTable) Allows(perm Permission, role Role) bool {
	rule, ok := t[perm]
	if !ok {
		return false
	}
	return rule.Admits(role)
}

// IsPublic reports whether perm can be reached without a credential.
func (t PermissionTable) IsPublic(perm Permission) bool {
	rule, ok := t[perm]
	return ok && rule.Public
}

func public() Rule { return Rule{Public: true} }

func roles(r ...Role) Rule { return Rule{Roles: r} }

// DefaultPermissionTable returns the stock rules for the three principal families,
// posts, comments and categories.
func DefaultPermissionTable() PermissionTable {
	staff := roles(RoleAdmin, RoleSuperAdmin)
	everyone := roles(RoleUser, RoleAdmin, RoleSuperAdmin)

	t := PermissionTable{
		{ResourceUser, ActionList}:     roles(RoleAdmin),
		{ResourceUser, ActionCount}:    roles(RoleAdmin),
		{ResourceUser, ActionGet}:      roles(RoleAdmin),
		{ResourceUser, ActionRegister}: public(),
		{ResourceUser, ActionUpdate}:   staff,
		{ResourceUser, ActionDelete}:   staff,
		{ResourceUser, ActionSelf}:     roles(RoleUser),

		{ResourceAdmin, ActionList}:     staff,
		{ResourceAdmin, ActionCount}:    staff,
		{ResourceAdmin, ActionGet}:      staff,
		{ResourceAdmin, ActionRegister}: roles(RoleSuperAdmin),
		{ResourceAdmin, ActionUpdate}:   roles(RoleSuperAdmin),
		{ResourceAdmin, ActionDelete}:   roles(RoleSuperAdmin),
		{ResourceAdmin, ActionSelf}:     roles(RoleAdmin),

		{ResourceSuperAdmin, ActionList}:     roles(RoleSuperAdmin),
		{ResourceSuperAdmin, ActionCount}:    roles(RoleSuperAdmin),
		{ResourceSuperAdmin, ActionGet}:      roles(RoleSuperAdmin),
		{ResourceSuperAdmin, ActionRegister}: roles(RoleSuperAdmin),
		{ResourceSuperAdmin, ActionUpdate}:   roles(RoleSuperAdmin),
		{ResourceSuperAdmin, ActionDelete}:   roles(RoleSuperAdmin),
		{ResourceSuperAdmin, ActionSelf}:     roles(RoleSuperAdmin),

		{ResourcePost, ActionList}:   everyone,
		{ResourcePost, ActionGet}:    everyone,
		{ResourcePost, ActionReact}:  everyone,
		{ResourcePost, ActionCreate}: staff,
		{ResourcePost, ActionUpdate}: staff,
		{ResourcePost, ActionDelete}: staff,

		{ResourceComment, ActionList}:   staff,
		{ResourceComment, ActionCreate}: everyone,
		{ResourceComment, ActionUpdate}: everyone,
		{ResourceComment, ActionDelete}: everyone,

		{ResourceCategory, ActionList}:   public(),
		{ResourceCategory, ActionCount}:  everyone,
		{ResourceCategory, ActionGet}:    everyone,
		{ResourceCategory, ActionCreate}: staff,
		{ResourceCategory, ActionUpdate}: staff,
		{ResourceCategory, ActionDelete}: staff,
	}

	for _, family := range []Resource{ResourceUser, ResourceAdmin, ResourceSuperAdmin} {
		t[Permission{family, ActionLogin}] = public()
		t[Permission{family, ActionForgotPassword}] = public()
		t[Permission{family, ActionResetPassword}] = public()
	}
	return t
}

// WithElevatedReaders returns a copy of t in which readers may perform every
// action open to admins, except acting on an admin's own account.
func (t PermissionTable) WithElevatedReaders() PermissionTable {
	out := make(PermissionTable, len(t))
	for perm, rule := range t {
		if perm.Action != ActionSelf && !rule.Public && rule.Admits(RoleAdmin) && !rule.Admits(RoleUser) {
			elevated := make([]Role, 0, len(rule.Roles)+1)
			elevated = append(elevated, RoleUser)
			elevated = append(elevated, rule.Roles...)
			rule = Rule{Roles: elevated}
		}
		out[perm] = rule
	}
	return out
}
