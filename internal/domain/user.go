package domain

import "time"

// User represents a registered account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Image        *string   `json:"image,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Author is the public identity attached to content and comments.
type Author struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

// AuthorOf returns the public part of a user.
func AuthorOf(u User) Author {
	return Author{ID: u.ID, Name: u.Name, Image: u.Image}
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRoles contains all valid user roles.
var ValidRoles = []string{RoleAdmin, RoleUser}

// IsValidRole checks if a role is valid.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Identity is the authenticated caller of a write operation.
// A nil *Identity means the request is anonymous.
type Identity struct {
	UserID    string
	Email     string
	Name      string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// CanModify reports whether the identity may change a resource owned by ownerID.
func (i *Identity) CanModify(ownerID string) bool {
	if i == nil {
		return false
	}
	return i.UserID == ownerID || i.IsAdmin()
}

// Profile is the public view of a user.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     *string   `json:"image,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileOf returns the public profile of u.
func ProfileOf(u User) Profile {
	return Profile{ID: u.ID, Name: u.Name, Image: u.Image, Bio: u.Bio, CreatedAt: u.CreatedAt}
}
