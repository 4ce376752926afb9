package domain

import "strings"

// Role is the coarse access tier of a caller. It selects both the routes a
// caller may reach and the database credential set its requests run under.
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// ParseRole maps a stored role value onto a known Role. Anything that is not
// recognisably Admin resolves to RoleUser so an unexpected value can never
// select the privileged credential set.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleUser
}

// User is a row of the Users table as echoed back by login.
type User struct {
	UserID int64  `json:"UserID"`
	FName  string `json:"FName"`
	LName  string `json:"LName"`
	Role   Role   `json:"Role"`
}
