// Package policy holds the per-action authorization decisions. Every
// function here is pure: it looks only at the identity and the target entity
// handed to it, never at the database or the session, and it can only allow
// or deny. Anything unresolved denies.
package policy

import (
	"github.com/vaiicko/cafe-web/database/model"
)

// Action names checked before controller actions run.
const (
	ActionAdd    = "add"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

func isMutation(action string) bool {
	switch action {
	case ActionAdd, ActionEdit, ActionDelete:
		return true
	}
	return false
}

// AllowCatalog decides menu and drink actions. Mutations require an
// administrator; everything else is public.
func AllowCatalog(user *model.User, action string) bool {
	if !isMutation(action) {
		return true
	}
	return user != nil && user.IsAdmin()
}

// AllowReview decides review actions. Adding requires any logged-in user.
// Editing and deleting require the administrator or the review's author; a
// missing target denies.
func AllowReview(user *model.User, action string, target *model.Review) bool {
	switch action {
	case ActionAdd:
		return user != nil
	case ActionEdit, ActionDelete:
		if user == nil {
			return false
		}
		if user.IsAdmin() {
			return true
		}
		return target != nil && target.UserId == user.Id
	}
	return true
}
