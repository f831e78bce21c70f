// Package entity defines the GORM models shared across features.
package entity

import "time"

// User represents a registered account. PasswordHash is never serialized
// outward and must always come from the hash package.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	FirstName    *string   `gorm:"size:100" json:"firstName,omitempty"`
	LastName     *string   `gorm:"size:100" json:"lastName,omitempty"`
	RoleID       uint      `gorm:"not null;default:3" json:"roleId"`
	Role         *Role     `json:"role,omitempty"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
