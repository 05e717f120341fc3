package entities

import "time"

// PlantingEvent records a catalog plant going into a garden. PlantID points
// at the shared catalog, not at user-owned data.
type PlantingEvent struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      string         `gorm:"index" json:"user_id"`
	GardenID    uint           `gorm:"index" json:"garden_id"`
	PlantID     uint           `gorm:"index" json:"plant_id"`
	PlantedAt   time.Time      `json:"planted_at"`
	Quantity    int            `json:"quantity"`
	Status      PlantingStatus `json:"status"`
	HarvestedAt *time.Time     `json:"harvested_at"`
	YieldKg     *float64       `json:"yield_kg"`
	Notes       string         `json:"notes"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (p *PlantingEvent) Validate() error {
	switch {
	case p.GardenID == 0:
		return invalid("garden_id", "is required")
	case p.PlantID == 0:
		return invalid("plant_id", "is required")
	case p.PlantedAt.IsZero():
		return invalid("planted_at", "is required")
	case p.Quantity < 0:
		return invalid("quantity", "must be >= 0, got %d", p.Quantity)
	case !p.Status.Valid():
		return invalid("status", "unknown value %d", p.Status)
	case p.HarvestedAt != nil && p.HarvestedAt.Before(p.PlantedAt):
		return invalid("harvested_at", "is before planted_at")
	}
	return nonNegative("yield_kg", p.YieldKg)
}
