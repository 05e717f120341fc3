package entities

import "time"

type SensorReading struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     string     `gorm:"index" json:"user_id"`
	GardenID   uint       `gorm:"index" json:"garden_id"`
	SensorType SensorType `json:"sensor_type"`
	Value      float64    `json:"value"`
	Unit       string     `json:"unit"`
	RecordedAt time.Time  `gorm:"index" json:"recorded_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (r *SensorReading) Validate() error {
	if r.GardenID == 0 {
		return invalid("garden_id", "is required")
	}
	if !r.SensorType.Valid() {
		return invalid("sensor_type", "unknown value %d", r.SensorType)
	}
	if r.RecordedAt.IsZero() {
		return invalid("recorded_at", "is required")
	}
	switch r.SensorType {
	case SensorHumidity, SensorSoilMoisture:
		return between("value", &r.Value, 0, 100)
	case SensorPH:
		return between("value", &r.Value, 0, 14)
	case SensorLight:
		return nonNegative("value", &r.Value)
	}
	return nil
}
