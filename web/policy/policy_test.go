package policy

import (
	"testing"

	"github.com/vaiicko/cafe-web/database/model"

	"github.com/stretchr/testify/assert"
)

var (
	admin = &model.User{Id: 1, Username: "admin", Role: model.RoleAdmin}
	owner = &model.User{Id: 2, Username: "bob", Role: model.RoleUser}
	other = &model.User{Id: 3, Username: "eve", Role: model.RoleUser}
)

func TestAllowCatalog(t *testing.T) {
	for _, action := range []string{ActionAdd, ActionEdit, ActionDelete} {
		assert.True(t, AllowCatalog(admin, action), action)
		assert.False(t, AllowCatalog(owner, action), action)
		assert.False(t, AllowCatalog(nil, action), action)
	}

	// non-mutating actions are public
	assert.True(t, AllowCatalog(nil, "index"))
	assert.True(t, AllowCatalog(other, "index"))
}

func TestAllowReviewAdd(t *testing.T) {
	assert.True(t, AllowReview(owner, ActionAdd, nil))
	assert.True(t, AllowReview(admin, ActionAdd, nil))
	assert.False(t, AllowReview(nil, ActionAdd, nil))
}

func TestAllowReviewEditDelete(t *testing.T) {
	review := &model.Review{Id: 10, UserId: owner.Id}

	for _, action := range []string{ActionEdit, ActionDelete} {
		assert.True(t, AllowReview(admin, action, review), action)
		assert.True(t, AllowReview(owner, action, review), action)
		assert.False(t, AllowReview(other, action, review), action)
		assert.False(t, AllowReview(nil, action, review), action)
	}
}

func TestAllowReviewMissingTargetDenies(t *testing.T) {
	assert.False(t, AllowReview(owner, ActionEdit, nil))
	assert.False(t, AllowReview(other, ActionDelete, nil))
	assert.False(t, AllowReview(nil, ActionEdit, nil))
	// the admin passes policy; the controller then 404s on the missing entity
	assert.True(t, AllowReview(admin, ActionEdit, nil))
}

func TestAllowReviewOtherActionsPublic(t *testing.T) {
	assert.True(t, AllowReview(nil, "index", nil))
	assert.True(t, AllowReview(other, "index", nil))
}
