// Package model defines the GORM models for the café site.
package model

// User roles. Role is decided at account creation; the seeded administrator
// is the only account created with RoleAdmin.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	// Password holds the stored credential: a bcrypt hash, or on rows carried
	// over from the old site, a legacy value compared in constant time.
	Password string `json:"-"`
	Role     string `json:"role" gorm:"not null;default:user"`
}

// DisplayName is the name shown next to content the user authored.
func (u *User) DisplayName() string {
	return u.Username
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// MenuItem is a dish on the café menu. Picture is a relative path under the
// public assets folder, nil when no image was uploaded.
type MenuItem struct {
	Id      int     `json:"id" gorm:"primaryKey;autoIncrement" form:"id"`
	Title   string  `json:"title" form:"title"`
	Text    string  `json:"text" form:"text"`
	Picture *string `json:"picture"`
}

// Drink mirrors MenuItem for the drinks card.
type Drink struct {
	Id      int     `json:"id" gorm:"primaryKey;autoIncrement" form:"id"`
	Title   string  `json:"title" form:"title"`
	Text    string  `json:"text" form:"text"`
	Picture *string `json:"picture"`
}

// Review is a comment left by a registered user. The author is referenced by
// user id; the acting user is recorded at creation and never taken from the
// client.
type Review struct {
	Id     int     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId int     `json:"userId" gorm:"index;not null"`
	Text   *string `json:"text"`
	// Rating is 1..5 inclusive, nil when no rating was supplied.
	Rating *int `json:"rating"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserId"`
}

// SetRating normalizes and stores the rating. Values are clamped into the
// 1..5 range; nil clears the rating.
func (r *Review) SetRating(rating *int) {
	if rating == nil {
		r.Rating = nil
		return
	}
	v := *rating
	if v < 1 {
		v = 1
	}
	if v > 5 {
		v = 5
	}
	r.Rating = &v
}

// GetRating returns the normalized rating, clamping values written before
// normalization existed.
func (r *Review) GetRating() *int {
	if r.Rating == nil {
		return nil
	}
	v := *r.Rating
	if v < 1 {
		v = 1
	}
	if v > 5 {
		v = 5
	}
	return &v
}

// AuthorName returns the display name of the review author, empty when the
// author has not been loaded or no longer exists.
func (r *Review) AuthorName() string {
	if r.User == nil {
		return ""
	}
	return r.User.DisplayName()
}
