package entities

import (
	"strings"
	"time"
)

type Tree struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        string    `gorm:"index" json:"user_id"`
	LandID        uint      `gorm:"index" json:"land_id"`
	Species       string    `json:"species"`
	X             float64   `json:"x"`
	Y             float64   `json:"y"`
	HeightM       *float64  `json:"height_m"`
	CanopyRadiusM *float64  `json:"canopy_radius_m"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (t *Tree) Validate() error {
	if t.LandID == 0 {
		return invalid("land_id", "is required")
	}
	if strings.TrimSpace(t.Species) == "" {
		return invalid("species", "is required")
	}
	return firstErr(
		nonNegative("x", &t.X),
		nonNegative("y", &t.Y),
		nonNegative("height_m", t.HeightM),
		nonNegative("canopy_radius_m", t.CanopyRadiusM),
	)
}
