package usecase

import (
	"corral-store/internal/domain/user"
)

// Action names an operation that needs a permission check before any write
// is attempted.
type Action string

const (
	ActionConfirmSale Action = "confirm_sale"
	ActionCreateItem  Action = "create_item"
	ActionEditItem    Action = "edit_item"
	ActionDeleteItem  Action = "delete_item"
)

type Authorizer interface {
	Can(role user.Role, action Action) bool
}

var roleHierarchy = map[user.Role]int{
	user.RoleViewer: 1,
	user.RoleSeller: 2,
	user.RoleAdmin:  3,
}

var minRoleForAction = map[Action]user.Role{
	ActionConfirmSale: user.RoleAdmin,
	ActionCreateItem:  user.RoleSeller,
	ActionEditItem:    user.RoleSeller,
	ActionDeleteItem:  user.RoleAdmin,
}

type roleAuthorizer struct{}

func NewRoleAuthorizer() Authorizer {
	return &roleAuthorizer{}
}

func (a *roleAuthorizer) Can(role user.Role, action Action) bool {
	minRole, known := minRoleForAction[action]
	if !known {
		return false
	}
	userLevel, userKnown := roleHierarchy[role]
	minLevel := roleHierarchy[minRole]
	return userKnown && userLevel >= minLevel
}
