package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Role is stored as an integer and travels over JSON by name.
type Role int

const (
	RoleUnspecified Role = iota
	RolePhotographer
	RoleClient
)

var roleNames = map[Role]string{
	RoleUnspecified:  "Unspecified",
	RolePhotographer: "Photographer",
	RoleClient:       "Client",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unspecified"
}

func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// ParseRole accepts either the role name or its integer value.
func ParseRole(s string) (Role, error) {
	for role, name := range roleNames {
		if name == s {
			return role, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && Role(n).Valid() {
		return Role(n), nil
	}
	return RoleUnspecified, fmt.Errorf("unknown role %q", s)
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if !Role(n).Valid() {
			return fmt.Errorf("unknown role %d", n)
		}
		*r = Role(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("role must be a string or integer")
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// User is the single account record. Role-specific data lives in optional
// columns: Bio is only meaningful when Role is RolePhotographer.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FirstName    string    `json:"firstName" gorm:"size:100;not null"`
	LastName     string    `json:"lastName" gorm:"size:100;not null"`
	Role         Role      `json:"role" gorm:"not null;index"`
	Bio          *string   `json:"bio,omitempty" gorm:"size:1000"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) IsPhotographer() bool {
	return u.Role == RolePhotographer
}
