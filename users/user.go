package users

import "strings"

type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleExtendedUser Role = "EXTENDED_USER"
	RoleBasicUser    Role = "BASIC_USER"
)

type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
}

func (u User) FullName() string {
	return strings.TrimSpace(strings.Join([]string{u.FirstName, u.LastName}, " "))
}

// DisplayName is the full name, or the username when no name was given.
func (u User) DisplayName() string {
	if name := u.FullName(); name != "" {
		return name
	}
	return u.Username
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanManageLoans reports whether the user may issue loans.
func (u User) CanManageLoans() bool {
	return u.Role == RoleAdmin || u.Role == RoleExtendedUser
}
