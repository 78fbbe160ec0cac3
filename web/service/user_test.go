package service

import (
	"testing"

	"github.com/vaiicko/cafe-web/database"
	"github.com/vaiicko/cafe-web/database/model"
	"github.com/vaiicko/cafe-web/util/crypto"

	"github.com/stretchr/testify/assert"
)

func TestFindByUsernameOrEmailCaseInsensitive(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	_, err := userService.Register("alice", "alice@example.com", "password1", "password1")
	assert.NoError(t, err)

	for _, identifier := range []string{"alice", "Alice", "aLICE", "ALICE@EXAMPLE.COM", "alice@example.com"} {
		user, err := userService.FindByUsernameOrEmail(identifier)
		assert.NoError(t, err)
		if assert.NotNil(t, user, identifier) {
			assert.Equal(t, "alice", user.Username)
		}
	}
}

func TestFindByUsernameOrEmailBlankIdentifier(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	for _, identifier := range []string{"", "   ", "\t"} {
		user, err := userService.FindByUsernameOrEmail(identifier)
		assert.NoError(t, err)
		assert.Nil(t, user)
	}
}

func TestFindByUsernameOrEmailUnknown(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	user, err := userService.FindByUsernameOrEmail("nobody")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	user, err := userService.Register("carol", "carol@x.com", "password1", "password1")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEqual(t, "password1", user.Password)
	assert.True(t, crypto.LooksLikeHash(user.Password))
	assert.True(t, crypto.VerifyPassword("password1", user.Password))
}

func TestRegisterDuplicateRejected(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	_, err := userService.Register("carol", "carol@x.com", "password1", "password1")
	assert.NoError(t, err)

	_, err = userService.Register("carol", "other@x.com", "password1", "password1")
	assert.ErrorIs(t, err, ErrAlreadyTaken)
	_, err = userService.Register("CAROL", "other@x.com", "password1", "password1")
	assert.ErrorIs(t, err, ErrAlreadyTaken)
	_, err = userService.Register("other", "carol@x.com", "password1", "password1")
	assert.ErrorIs(t, err, ErrAlreadyTaken)

	var count int64
	database.GetDB().Model(model.User{}).Where("email = ?", "carol@x.com").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRegisterValidation(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}

	_, err := userService.Register("", "a@b.c", "password1", "password1")
	assert.ErrorIs(t, err, ErrFieldsRequired)
	_, err = userService.Register("dave", "not-an-email", "password1", "password1")
	assert.ErrorIs(t, err, ErrInvalidEmail)
	_, err = userService.Register("dave", "dave@x.com", "short", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
	_, err = userService.Register("dave", "dave@x.com", "password1", "password2")
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	var count int64
	database.GetDB().Model(model.User{}).Where("username = ?", "dave").Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestResetAdminPassword(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	assert.NoError(t, userService.ResetAdminPassword("newpassword"))

	admin, err := userService.FindByUsernameOrEmail("admin")
	assert.NoError(t, err)
	if assert.NotNil(t, admin) {
		assert.True(t, crypto.VerifyPassword("newpassword", admin.Password))
		assert.False(t, crypto.VerifyPassword("admin", admin.Password))
	}
}
