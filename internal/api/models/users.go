package models

import (
	"regexp"
	"strings"
	"time"
)

// Role is an ordered permission tier. Higher level wins.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
	RoleSuperuser Role = "superuser"
)

var roleLevels = map[Role]int{
	RoleUser:      0,
	RoleModerator: 1,
	RoleAdmin:     2,
	RoleSuperuser: 3,
}

// Level returns the position of the role in the hierarchy, -1 for unknown roles.
func (r Role) Level() int {
	level, ok := roleLevels[r]
	if !ok {
		return -1
	}
	return level
}

func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

// IsModerator reports whether the role is moderator or higher.
func (r Role) IsModerator() bool {
	return r.Level() >= roleLevels[RoleModerator]
}

// IsAdmin reports whether the role is admin or higher.
func (r Role) IsAdmin() bool {
	return r.Level() >= roleLevels[RoleAdmin]
}

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// ValidUsername checks the allowed charset and length for usernames.
func ValidUsername(username string) bool {
	return username != "" && len(username) <= 150 && usernamePattern.MatchString(username)
}

// ReservedUsername reports whether the username collides with the
// self-profile endpoint. Case-insensitive.
func ReservedUsername(username string) bool {
	return strings.EqualFold(username, "me")
}

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:254;not null" json:"email"`
	FirstName string    `gorm:"size:150" json:"first_name"`
	LastName  string    `gorm:"size:150" json:"last_name"`
	Bio       string    `gorm:"type:text" json:"bio"`
	Role      Role      `gorm:"size:20;default:'user';not null" json:"role"`
	IsActive  bool      `gorm:"default:true;not null" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
