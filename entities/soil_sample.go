package entities

import "time"

type SoilSample struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           string    `gorm:"index" json:"user_id"`
	GardenID         *uint     `gorm:"index" json:"garden_id"`
	PlantingEventID  *uint     `gorm:"index" json:"planting_event_id"`
	SampledAt        time.Time `json:"sampled_at"`
	PH               *float64  `json:"ph"`
	NitrogenPPM      *float64  `json:"nitrogen_ppm"`
	PhosphorusPPM    *float64  `json:"phosphorus_ppm"`
	PotassiumPPM     *float64  `json:"potassium_ppm"`
	OrganicMatterPct *float64  `json:"organic_matter_pct"`
	MoisturePct      *float64  `json:"moisture_pct"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (s *SoilSample) Validate() error {
	if s.SampledAt.IsZero() {
		return invalid("sampled_at", "is required")
	}
	return firstErr(
		between("ph", s.PH, 0, 14),
		nonNegative("nitrogen_ppm", s.NitrogenPPM),
		nonNegative("phosphorus_ppm", s.PhosphorusPPM),
		nonNegative("potassium_ppm", s.PotassiumPPM),
		between("organic_matter_pct", s.OrganicMatterPct, 0, 100),
		between("moisture_pct", s.MoisturePct, 0, 100),
	)
}
