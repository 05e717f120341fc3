package entities

import (
	"strings"
	"time"
)

// Garden is a growing area, optionally placed on a Land as an axis-aligned
// rectangle and optionally watered by an IrrigationZone.
type Garden struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           string     `gorm:"index" json:"user_id"`
	Name             string     `json:"name"`
	GardenType       GardenType `json:"garden_type"`
	LandID           *uint      `gorm:"index" json:"land_id"`
	X                *float64   `json:"x"`
	Y                *float64   `json:"y"`
	Width            *float64   `json:"width"`
	Height           *float64   `json:"height"`
	IrrigationZoneID *uint      `gorm:"index" json:"irrigation_zone_id"`
	Notes            string     `json:"notes"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Placed reports whether all four placement coordinates are set.
func (g *Garden) Placed() bool {
	return g.X != nil && g.Y != nil && g.Width != nil && g.Height != nil
}

// FitsOn checks that a placed garden stays inside land. Unplaced gardens
// always fit.
func (g *Garden) FitsOn(land *Land) error {
	if !g.Placed() || land == nil {
		return nil
	}
	if *g.X+*g.Width > land.Width || *g.Y+*g.Height > land.Height {
		return invalid("x", "placement %gx%g at (%g,%g) extends past the %gx%g land",
			*g.Width, *g.Height, *g.X, *g.Y, land.Width, land.Height)
	}
	return nil
}

func (g *Garden) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return invalid("name", "is required")
	}
	if !g.GardenType.Valid() {
		return invalid("garden_type", "unknown value %d", g.GardenType)
	}
	set := 0
	for _, v := range []*float64{g.X, g.Y, g.Width, g.Height} {
		if v != nil {
			set++
		}
	}
	if set != 0 && set != 4 {
		return invalid("x", "placement needs x, y, width and height together")
	}
	if g.Placed() {
		if *g.Width <= 0 || *g.Height <= 0 {
			return invalid("width", "placement size must be > 0")
		}
	}
	return firstErr(nonNegative("x", g.X), nonNegative("y", g.Y))
}
