//go:build unit

package usecase_test

import (
	"testing"

	"corral-store/internal/domain/user"
	"corral-store/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestRoleAuthorizer(t *testing.T) {
	authz := usecase.NewRoleAuthorizer()

	tests := []struct {
		name   string
		role   user.Role
		action usecase.Action
		want   bool
	}{
		{"viewer cannot confirm sales", user.RoleViewer, usecase.ActionConfirmSale, false},
		{"seller cannot confirm sales", user.RoleSeller, usecase.ActionConfirmSale, false},
		{"admin confirms sales", user.RoleAdmin, usecase.ActionConfirmSale, true},
		{"seller creates items", user.RoleSeller, usecase.ActionCreateItem, true},
		{"seller edits items", user.RoleSeller, usecase.ActionEditItem, true},
		{"seller cannot delete items", user.RoleSeller, usecase.ActionDeleteItem, false},
		{"admin deletes items", user.RoleAdmin, usecase.ActionDeleteItem, true},
		{"viewer cannot create items", user.RoleViewer, usecase.ActionCreateItem, false},
		{"unknown role is denied", user.Role("ghost"), usecase.ActionCreateItem, false},
		{"unknown action is denied", user.RoleAdmin, usecase.Action("reboot"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authz.Can(tt.role, tt.action))
		})
	}
}
