package entities

import (
	"strings"
	"time"
)

// IrrigationSource is where water comes from.
type IrrigationSource struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      string     `gorm:"index" json:"user_id"`
	Name        string     `json:"name"`
	SourceType  SourceType `json:"source_type"`
	FlowRateLPM *float64   `json:"flow_rate_lpm"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (s *IrrigationSource) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return invalid("name", "is required")
	}
	if !s.SourceType.Valid() {
		return invalid("source_type", "unknown value %d", s.SourceType)
	}
	return nonNegative("flow_rate_lpm", s.FlowRateLPM)
}

// IrrigationZone groups gardens that are watered together.
type IrrigationZone struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`
	UserID             string           `gorm:"index" json:"user_id"`
	Name               string           `json:"name"`
	IrrigationSourceID *uint            `gorm:"index" json:"irrigation_source_id"`
	Method             IrrigationMethod `json:"method"`
	Notes              string           `json:"notes"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

func (z *IrrigationZone) Validate() error {
	if strings.TrimSpace(z.Name) == "" {
		return invalid("name", "is required")
	}
	if !z.Method.Valid() {
		return invalid("method", "unknown value %d", z.Method)
	}
	return nil
}

type WateringEvent struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           string    `gorm:"index" json:"user_id"`
	IrrigationZoneID uint      `gorm:"index" json:"irrigation_zone_id"`
	WateredAt        time.Time `json:"watered_at"`
	DurationMin      *float64  `json:"duration_min"`
	VolumeL          *float64  `json:"volume_l"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (w *WateringEvent) Validate() error {
	if w.IrrigationZoneID == 0 {
		return invalid("irrigation_zone_id", "is required")
	}
	if w.WateredAt.IsZero() {
		return invalid("watered_at", "is required")
	}
	return firstErr(nonNegative("duration_min", w.DurationMin), nonNegative("volume_l", w.VolumeL))
}
