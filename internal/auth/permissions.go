package auth

import (
	"crm_backend/internal/models"
)

// Action is an operation class used by the permission table.
type Action string

// Resource is a record type guarded by the permission table.
type Resource string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionLink   Action = "link"
	ActionVerify Action = "verify"

	ResourceProfile Resource = "profile"
	ResourceBrand   Resource = "brand"
	ResourceBilling Resource = "billing"
	ResourceUser    Resource = "user"
)

type roleSet map[models.UserRole]bool

func roles(rs ...models.UserRole) roleSet {
	set := make(roleSet, len(rs))
	for _, r := range rs {
		set[r] = true
	}
	return set
}

var allRoles = roles(
	models.UserRoleAdmin,
	models.UserRoleManager,
	models.UserRoleFinance,
	models.UserRoleOperationsManager,
	models.UserRoleIntern,
	models.UserRoleDataOperator,
)

// permissions is the static role-to-operation table. Ownership does not
// participate here; Can layers the one ownership rule on top.
var permissions = map[Resource]map[Action]roleSet{
	ResourceProfile: {
		ActionCreate: roles(models.UserRoleAdmin, models.UserRoleManager,
			models.UserRoleOperationsManager, models.UserRoleIntern, models.UserRoleDataOperator),
		ActionRead:   allRoles,
		ActionUpdate: roles(models.UserRoleAdmin, models.UserRoleManager),
		ActionDelete: roles(models.UserRoleAdmin),
		ActionLink:   roles(models.UserRoleAdmin, models.UserRoleManager),
	},
	ResourceBrand: {
		ActionCreate: roles(models.UserRoleAdmin, models.UserRoleManager),
		ActionRead:   allRoles,
		ActionUpdate: roles(models.UserRoleAdmin, models.UserRoleManager),
		ActionDelete: roles(models.UserRoleAdmin),
		ActionLink:   roles(models.UserRoleAdmin, models.UserRoleManager),
	},
	ResourceBilling: {
		ActionCreate: roles(models.UserRoleAdmin, models.UserRoleFinance, models.UserRoleManager),
		ActionRead:   roles(models.UserRoleAdmin, models.UserRoleFinance, models.UserRoleManager),
		ActionUpdate: roles(models.UserRoleAdmin, models.UserRoleFinance),
		ActionDelete: roles(models.UserRoleAdmin, models.UserRoleFinance),
		ActionVerify: roles(models.UserRoleAdmin, models.UserRoleFinance),
		ActionLink:   roles(models.UserRoleAdmin, models.UserRoleManager),
	},
	ResourceUser: {
		ActionCreate: roles(models.UserRoleAdmin),
		ActionRead:   roles(models.UserRoleAdmin),
		ActionUpdate: roles(models.UserRoleAdmin),
		ActionDelete: roles(models.UserRoleAdmin),
	},
}

// Can reports whether the role may perform the action on the resource
// type. isOwner widens update rights for data operators on their own
// profiles and brands; it has no effect for any other combination.
func Can(role models.UserRole, action Action, resource Resource, isOwner bool) bool {
	actions, ok := permissions[resource]
	if !ok {
		return false
	}
	allowed, ok := actions[action]
	if !ok {
		return false
	}
	if allowed[role] {
		return true
	}

	if role == models.UserRoleDataOperator && isOwner && action == ActionUpdate &&
		(resource == ResourceProfile || resource == ResourceBrand) {
		return true
	}
	return false
}

// CanReadEntityBilling reports whether the role may resolve the billing
// record linked to a profile or brand. Data operators may only do so for
// records they created.
func CanReadEntityBilling(role models.UserRole, isOwner bool) bool {
	switch role {
	case models.UserRoleAdmin, models.UserRoleManager, models.UserRoleIntern:
		return true
	case models.UserRoleDataOperator:
		return isOwner
	}
	return false
}

// IsAdmin reports whether the claims belong to an administrator.
func IsAdmin(claims *Claims) bool {
	return claims.Role == models.UserRoleAdmin
}
