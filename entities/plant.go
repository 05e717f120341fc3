package entities

import "time"

// Plant is a shared catalog entry. Catalog rows are reference data and are
// never owned by, exported with, or deleted alongside a user's records.
type Plant struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	CommonName     string   `gorm:"index" json:"common_name"`
	ScientificName string   `json:"scientific_name"`
	Family         string   `json:"family"`
	DaysToMaturity *int     `json:"days_to_maturity"`
	SpacingCM      *float64 `json:"spacing_cm"`
	CreatedAt      time.Time
}
