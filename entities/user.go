package entities

import "time"

// User is the account record. None of its credential or contact columns
// may ever be copied into another entity or an export.
type User struct {
	ID           uint    `gorm:"primaryKey" json:"-"`
	UID          string  `gorm:"uniqueIndex" json:"uid"`
	Email        string  `gorm:"uniqueIndex" json:"email"`
	DisplayName  string  `json:"display_name"`
	PasswordHash string  `json:"-"`
	ResetToken   *string `json:"-"`
	SessionToken *string `json:"-"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
