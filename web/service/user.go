package service

import (
	"net/mail"
	"strings"

	"github.com/vaiicko/cafe-web/database"
	"github.com/vaiicko/cafe-web/database/model"
	"github.com/vaiicko/cafe-web/logger"
	"github.com/vaiicko/cafe-web/util/common"
	"github.com/vaiicko/cafe-web/util/crypto"

	"gorm.io/gorm"
)

const minPasswordLength = 6

// Registration failure causes surfaced to the form.
var (
	ErrFieldsRequired   = common.NewError("all fields are required")
	ErrInvalidEmail     = common.NewError("invalid email address")
	ErrPasswordTooShort = common.NewErrorf("password must be at least %d characters", minPasswordLength)
	ErrPasswordMismatch = common.NewError("passwords do not match")
	ErrAlreadyTaken     = common.NewError("username or email already in use")
)

// UserService is the credential store: lookup and persistence for users.
type UserService struct{}

// FindByUsernameOrEmail resolves a login identifier to a user. The lookup is
// case-insensitive over both the username and email columns. A blank
// identifier resolves to nil without touching the database.
func (s *UserService) FindByUsernameOrEmail(identifier string) (*model.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, nil
	}
	lowered := strings.ToLower(identifier)

	db := database.GetDB()
	user := &model.User{}
	err := db.Model(model.User{}).
		Where("LOWER(username) = ? OR LOWER(email) = ?", lowered, lowered).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

// GetOne fetches a user by id, nil when absent.
func (s *UserService) GetOne(id int) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.Model(model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

// Register validates and creates a new account with the user role. The
// password is stored hashed, never plaintext. Validation failures come back
// as the Err* values above so the form can show them inline.
func (s *UserService) Register(username, email, password, passwordConfirm string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return nil, ErrFieldsRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if password != passwordConfirm {
		return nil, ErrPasswordMismatch
	}

	for _, identifier := range []string{username, email} {
		existing, err := s.FindByUsernameOrEmail(identifier)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrAlreadyTaken
		}
	}

	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: hash,
		Role:     model.RoleUser,
	}
	db := database.GetDB()
	if err := db.Create(user).Error; err != nil {
		logger.Warning("create user failed:", err)
		return nil, err
	}
	return user, nil
}

// UpdatePassword rewrites the stored credential as a fresh hash.
func (s *UserService) UpdatePassword(id int, password string) error {
	if password == "" {
		return common.NewError("password can not be empty")
	}
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}
	db := database.GetDB()
	return db.Model(model.User{}).
		Where("id = ?", id).
		Update("password", hash).
		Error
}

// ResetAdminPassword rewrites the seeded administrator's credential. Used by
// the CLI when the password is lost.
func (s *UserService) ResetAdminPassword(password string) error {
	db := database.GetDB()
	admin := &model.User{}
	err := db.Model(model.User{}).
		Where("role = ?", model.RoleAdmin).
		First(admin).
		Error
	if err == gorm.ErrRecordNotFound {
		return common.NewError("no administrator account exists")
	} else if err != nil {
		return err
	}
	return s.UpdatePassword(admin.Id, password)
}
