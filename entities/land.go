package entities

import (
	"strings"
	"time"
)

// Land is a bounded planar area measured in metres.
type Land struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index" json:"user_id"`
	Name      string    `json:"name"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *Land) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return invalid("name", "is required")
	}
	if l.Width <= 0 || l.Height <= 0 {
		return invalid("width", "dimensions must be > 0, got %gx%g", l.Width, l.Height)
	}
	return nil
}
