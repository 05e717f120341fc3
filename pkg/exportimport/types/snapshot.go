package types

// SchemaVersion is the snapshot format produced by this build. Only the
// major component decides compatibility.
const SchemaVersion = "1.0.0"

type Metadata struct {
	SchemaVersion          string `json:"schema_version"`
	AppVersion             string `json:"app_version"`
	ExportedAt             string `json:"exported_at"`
	UserID                 string `json:"user_id"`
	IncludesSensorReadings bool   `json:"includes_sensor_readings"`
}

// Snapshot is a self-contained export of one account's records. Record ids
// are local to the snapshot. Collections are declared in dependency order.
type Snapshot struct {
	Metadata          Metadata                 `json:"metadata"`
	Lands             []LandRecord             `json:"lands"`
	IrrigationSources []IrrigationSourceRecord `json:"irrigation_sources"`
	IrrigationZones   []IrrigationZoneRecord   `json:"irrigation_zones"`
	Gardens           []GardenRecord           `json:"gardens"`
	Trees             []TreeRecord             `json:"trees"`
	PlantingEvents    []PlantingEventRecord    `json:"planting_events"`
	SoilSamples       []SoilSampleRecord       `json:"soil_samples"`
	WateringEvents    []WateringEventRecord    `json:"watering_events"`
	SensorReadings    []SensorReadingRecord    `json:"sensor_readings"`
}

// NewSnapshot returns a snapshot whose collections are empty rather than nil
// so they serialize as [].
func NewSnapshot(meta Metadata) *Snapshot {
	return &Snapshot{
		Metadata:          meta,
		Lands:             []LandRecord{},
		IrrigationSources: []IrrigationSourceRecord{},
		IrrigationZones:   []IrrigationZoneRecord{},
		Gardens:           []GardenRecord{},
		Trees:             []TreeRecord{},
		PlantingEvents:    []PlantingEventRecord{},
		SoilSamples:       []SoilSampleRecord{},
		WateringEvents:    []WateringEventRecord{},
		SensorReadings:    []SensorReadingRecord{},
	}
}

// Record is implemented by every snapshot entity.
type Record interface {
	LocalID() uint
	// References lists the edges this record actually uses. Absent optional
	// references are omitted.
	References() []Reference
}

type Reference struct {
	Edge
	ID uint
}

// Collection returns the records of one entity type in snapshot order.
func (s *Snapshot) Collection(t EntityType) []Record {
	switch t {
	case Lands:
		return records(s.Lands)
	case IrrigationSources:
		return records(s.IrrigationSources)
	case IrrigationZones:
		return records(s.IrrigationZones)
	case Gardens:
		return records(s.Gardens)
	case Trees:
		return records(s.Trees)
	case PlantingEvents:
		return records(s.PlantingEvents)
	case SoilSamples:
		return records(s.SoilSamples)
	case WateringEvents:
		return records(s.WateringEvents)
	case SensorReadings:
		return records(s.SensorReadings)
	}
	return nil
}

// Counts returns the number of records per entity type.
func (s *Snapshot) Counts() Counts {
	out := Counts{}
	for _, t := range DependencyOrder {
		out[t] = len(s.Collection(t))
	}
	return out
}

func records[T Record](xs []T) []Record {
	out := make([]Record, len(xs))
	for i := range xs {
		out[i] = xs[i]
	}
	return out
}

func optional(e Edge, id *uint) []Reference {
	if id == nil || *id == 0 {
		return nil
	}
	return []Reference{{Edge: e, ID: *id}}
}

func required(e Edge, id uint) []Reference {
	if id == 0 {
		return nil
	}
	return []Reference{{Edge: e, ID: id}}
}

type LandRecord struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Notes     string  `json:"notes"`
	CreatedAt string  `json:"created_at"`
}

func (r LandRecord) LocalID() uint           { return r.ID }
func (r LandRecord) References() []Reference { return nil }

type IrrigationSourceRecord struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	SourceType  string   `json:"source_type"`
	FlowRateLPM *float64 `json:"flow_rate_lpm"`
	Notes       string   `json:"notes"`
	CreatedAt   string   `json:"created_at"`
}

func (r IrrigationSourceRecord) LocalID() uint           { return r.ID }
func (r IrrigationSourceRecord) References() []Reference { return nil }

type IrrigationZoneRecord struct {
	ID                 uint   `json:"id"`
	Name               string `json:"name"`
	IrrigationSourceID *uint  `json:"irrigation_source_id"`
	Method             string `json:"method"`
	Notes              string `json:"notes"`
	CreatedAt          string `json:"created_at"`
}

func (r IrrigationZoneRecord) LocalID() uint { return r.ID }
func (r IrrigationZoneRecord) References() []Reference {
	return optional(ZoneSource, r.IrrigationSourceID)
}

type GardenRecord struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	GardenType       string   `json:"garden_type"`
	LandID           *uint    `json:"land_id"`
	X                *float64 `json:"x"`
	Y                *float64 `json:"y"`
	Width            *float64 `json:"width"`
	Height           *float64 `json:"height"`
	IrrigationZoneID *uint    `json:"irrigation_zone_id"`
	Notes            string   `json:"notes"`
	CreatedAt        string   `json:"created_at"`
}

func (r GardenRecord) LocalID() uint { return r.ID }
func (r GardenRecord) References() []Reference {
	return append(optional(GardenLand, r.LandID), optional(GardenZone, r.IrrigationZoneID)...)
}

type TreeRecord struct {
	ID            uint     `json:"id"`
	LandID        uint     `json:"land_id"`
	Species       string   `json:"species"`
	X             float64  `json:"x"`
	Y             float64  `json:"y"`
	HeightM       *float64 `json:"height_m"`
	CanopyRadiusM *float64 `json:"canopy_radius_m"`
	Notes         string   `json:"notes"`
	CreatedAt     string   `json:"created_at"`
}

func (r TreeRecord) LocalID() uint           { return r.ID }
func (r TreeRecord) References() []Reference { return required(TreeLand, r.LandID) }

// PlantingEventRecord.PlantID is a catalog id. It is carried verbatim and
// never translated.
type PlantingEventRecord struct {
	ID          uint     `json:"id"`
	GardenID    uint     `json:"garden_id"`
	PlantID     uint     `json:"plant_id"`
	PlantedAt   string   `json:"planted_at"`
	Quantity    int      `json:"quantity"`
	Status      string   `json:"status"`
	HarvestedAt *string  `json:"harvested_at"`
	YieldKg     *float64 `json:"yield_kg"`
	Notes       string   `json:"notes"`
	CreatedAt   string   `json:"created_at"`
}

func (r PlantingEventRecord) LocalID() uint           { return r.ID }
func (r PlantingEventRecord) References() []Reference { return required(PlantingGarden, r.GardenID) }

type SoilSampleRecord struct {
	ID               uint     `json:"id"`
	GardenID         *uint    `json:"garden_id"`
	PlantingEventID  *uint    `json:"planting_event_id"`
	SampledAt        string   `json:"sampled_at"`
	PH               *float64 `json:"ph"`
	NitrogenPPM      *float64 `json:"nitrogen_ppm"`
	PhosphorusPPM    *float64 `json:"phosphorus_ppm"`
	PotassiumPPM     *float64 `json:"potassium_ppm"`
	OrganicMatterPct *float64 `json:"organic_matter_pct"`
	MoisturePct      *float64 `json:"moisture_pct"`
	Notes            string   `json:"notes"`
	CreatedAt        string   `json:"created_at"`
}

func (r SoilSampleRecord) LocalID() uint { return r.ID }
func (r SoilSampleRecord) References() []Reference {
	return append(optional(SoilGarden, r.GardenID), optional(SoilPlanting, r.PlantingEventID)...)
}

type WateringEventRecord struct {
	ID               uint     `json:"id"`
	IrrigationZoneID uint     `json:"irrigation_zone_id"`
	WateredAt        string   `json:"watered_at"`
	DurationMin      *float64 `json:"duration_min"`
	VolumeL          *float64 `json:"volume_l"`
	Notes            string   `json:"notes"`
	CreatedAt        string   `json:"created_at"`
}

func (r WateringEventRecord) LocalID() uint { return r.ID }
func (r WateringEventRecord) References() []Reference {
	return required(WateringZone, r.IrrigationZoneID)
}

type SensorReadingRecord struct {
	ID         uint    `json:"id"`
	GardenID   uint    `json:"garden_id"`
	SensorType string  `json:"sensor_type"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	RecordedAt string  `json:"recorded_at"`
	CreatedAt  string  `json:"created_at"`
}

func (r SensorReadingRecord) LocalID() uint { return r.ID }
func (r SensorReadingRecord) References() []Reference {
	return required(SensorReadingGarden, r.GardenID)
}

// ExportOptions controls what an export includes.
type ExportOptions struct {
	IncludeSensorReadings bool
}
