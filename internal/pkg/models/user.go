package models

import (
	"github.com/lib/pq"
)

// User represents a registered identity resolved through its linked agent profile.
// The user and agent tables are owned by the upstream CRM; this service only reads them.
type User struct {
	ID          string         `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Contact     string         `json:"contact" db:"contact"`
	AccessLevel pq.StringArray `json:"access_level" db:"access_level"`
}

// IsAdmin reports whether the user carries an elevated access level
func (u *User) IsAdmin() bool {
	for _, level := range u.AccessLevel {
		if level == "admin" || level == "superadmin" {
			return true
		}
	}
	return false
}

// SessionUser is the user summary returned after successful verification
type SessionUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	IsAdmin bool   `json:"isAdmin"`
}
