// Package authz holds the closed role-to-action permission table. Every
// privileged operation funnels through Authorize instead of comparing role
// strings at the call site.
package authz

import (
	"pressroom/models"
	"pressroom/utils"
)

// Action names the privileged operations the permission table covers.
type Action string

const (
	ActionReviewArticle      Action = "article:review"
	ActionToggleStatus       Action = "article:toggle_status"
	ActionDeleteAnyArticle   Action = "article:delete_any"
	ActionReviewVerification Action = "verification:review"
	ActionManageGrievance    Action = "grievance:manage"
	ActionManageRoles        Action = "account:manage_roles"
	ActionDeleteAccount      Action = "account:delete"
	ActionListAccounts       Action = "account:list"
)

// permissions is the closed table. Roles absent from the table hold no
// privileged actions at all.
var permissions = map[string]map[Action]bool{
	models.RoleEditor: {
		ActionReviewArticle: true,
	},
	models.RoleAdmin: {
		ActionReviewArticle:      true,
		ActionToggleStatus:       true,
		ActionDeleteAnyArticle:   true,
		ActionReviewVerification: true,
		ActionManageGrievance:    true,
		ActionManageRoles:        true,
		ActionDeleteAccount:      true,
		ActionListAccounts:       true,
	},
	models.RoleSuperAdmin: {
		ActionReviewArticle:      true,
		ActionToggleStatus:       true,
		ActionDeleteAnyArticle:   true,
		ActionReviewVerification: true,
		ActionManageGrievance:    true,
		ActionManageRoles:        true,
		ActionDeleteAccount:      true,
		ActionListAccounts:       true,
	},
}

// Can reports whether the actor's role allows the action.
func Can(actor *models.Account, action Action) bool {
	if actor == nil {
		return false
	}
	return permissions[actor.Role][action]
}

// Authorize returns a PermissionError unless the actor's role allows the
// action.
func Authorize(actor *models.Account, action Action) error {
	if Can(actor, action) {
		return nil
	}
	return &utils.PermissionError{Action: string(action)}
}
