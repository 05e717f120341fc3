package serviceImp

import (
	"time"

	"gardenbook/entities"
	"gardenbook/pkg/exportimport/types"
)

// Entity <-> record conversions are spelled out field by field. A column
// added to a model does not reach a snapshot until it is added here.
//
// Record -> entity conversions keep snapshot-local reference ids; the
// importer rewrites them. UserID and ID are never taken from a snapshot.

func fieldErr(field string, err error) error {
	return &entities.FieldError{Field: field, Message: err.Error()}
}

func parseTime(field, s string) (time.Time, error) {
	t, err := types.ParseTime(s)
	if err != nil {
		return t, fieldErr(field, err)
	}
	return t, nil
}

func parseTimePtr(field string, s *string) (*time.Time, error) {
	t, err := types.ParseTimePtr(s)
	if err != nil {
		return nil, fieldErr(field, err)
	}
	return t, nil
}

func landRecord(e entities.Land) types.LandRecord {
	return types.LandRecord{
		ID:        e.ID,
		Name:      e.Name,
		Width:     e.Width,
		Height:    e.Height,
		Notes:     e.Notes,
		CreatedAt: types.FormatTime(e.CreatedAt),
	}
}

func landEntity(r types.LandRecord) (*entities.Land, error) {
	created, err := parseTime("created_at", r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &entities.Land{
		Name:      r.Name,
		Width:     r.Width,
		Height:    r.Height,
		Notes:     r.Notes,
		CreatedAt: created,
	}, nil
}

func irrigationSourceRecord(e entities.IrrigationSource) types.IrrigationSourceRecord {
	return types.IrrigationSourceRecord{
		ID:          e.ID,
		Name:        e.Name,
		SourceType:  e.SourceType.String(),
		FlowRateLPM: e.FlowRateLPM,
		Notes:       e.Notes,
		CreatedAt:   types.FormatTime(e.CreatedAt),
	}
}

func irrigationSourceEntity(r types.IrrigationSourceRecord) (*entities.IrrigationSource, error) {
	st, err := entities.ParseSourceType(r.SourceType)
	if err != nil {
		return nil, fieldErr("source_type", err)
	}
	created, err := parseTime("created_at", r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &entities.IrrigationSource{
		Name:        r.Name,
		SourceType:  st,
		FlowRateLPM: r.FlowRateLPM,
		Notes:       r.Notes,
		CreatedAt:   created,
	}, nil
}

func irrigationZoneRecord(e entities.IrrigationZone) types.IrrigationZoneRecord {
	return types.IrrigationZoneRecord{
		ID:                 e.ID,
		Name:               e.Name,
		IrrigationSourceID: e.IrrigationSourceID,
		Method:             e.Method.String(),
		Notes:              e.Notes,
		CreatedAt:          types.FormatTime(e.CreatedAt),
	}
}

func irrigationZoneEntity(r types.IrrigationZoneRecord) (*entities.IrrigationZone, error) {
	m, err := entities.ParseIrrigationMethod(r.Method)
	if err != nil {
		return nil, fieldErr("method", err)
	}
	created, err := parseTime("created_at", r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &entities.IrrigationZone{
		Name:               r.Name,
		IrrigationSourceID: r.IrrigationSourceID,
		Method:             m,
		Notes:              r.Notes,
		CreatedAt:          created,
	}, nil
}

func gardenRecord(e entities.Garden) types.GardenRecord {
	return types.GardenRecord{
		ID:               e.ID,
		Name:             e.Name,
		GardenType:       e.GardenType.String(),
		LandID:           e.LandID,
		X:                e.X,
		Y:                e.Y,
		Width:            e.Width,
		Height:           e.Height,
		IrrigationZoneID: e.IrrigationZoneID,
		Notes:            e.Notes,
		CreatedAt:        types.FormatTime(e.CreatedAt),
	}
}

func gardenEntity(r types.GardenRecord) (*entities.Garden, error) {
	gt, err := entities.ParseGardenType(r.GardenType)
	if err != nil {
		return nil, fieldErr("garden_type", err)
	}
	created, err := parseTime("created_at", r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &entities.Garden{
		Name:             r.Name,
		GardenType:       gt,
		LandID:           r.LandID,
		X:                r.X,
		Y:                r.Y,
		Width:            r.Width,
		Height:           r.Height,
		IrrigationZoneID: r.IrrigationZoneID,
		Notes:            r.Notes,
		CreatedAt:        created,
	}, nil
}

func treeRecord(e entities.Tree) types.TreeRecord {
	return types.TreeRecord{
		ID:            e.ID,
		LandID:        e.LandID,
		Species:       e.Species,
		X:             e.X,
		Y:             e.Y,
		HeightM:       e.HeightM,
		CanopyRadiusM: e.CanopyRadiusM,
		Notes:         e.Notes,
		CreatedAt:     types.FormatTime(e.CreatedAt),
	}
}

func treeEntity(r types.TreeRecord) (*entities.Tree, error) {
	created, err := parseTime("created_at", r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &entities.Tree{
		LandID:        r.LandID,
		Species:       r.Species,
		X:             r.X,
		Y:             r.Y,
		HeightM:       r.HeightM,
		CanopyRadiusM: r.CanopyRadiusM,
		Notes:         r.Notes,
		CreatedAt:     created,
	}, nil
}

func plantingEventRecord(e entities.PlantingEvent) types.PlantingEventRecord {
	return types.PlantingEventRecord{
		ID:          e.ID,
		GardenID:    e.GardenID,
		PlantID:     e.PlantID,
		PlantedAt:   types.FormatTime(e.PlantedAt),
		Quantity:    e.Quantity,
		Status:      e.Status.String(),
		HarvestedAt: types.FormatTimePtr(e.HarvestedAt),
		YieldKg:     e.YieldKg,
		Notes:       e.Notes,
		CreatedAt:   types.FormatTime(e.CreatedAt),
	}
}

func plantingEventEntity(r types.PlantingEventRecord) (*entities.PlantingEvent, error) {
	st, err := entities.ParsePlantingStatus(r.Status)
	if err != nil {
		return nil, fieldErr("status", err)
	}
	planted, err := parseTime("planted_at", r.PlantedAt)
	if err != nil {
		return nil, err
	}
	harvested, err := parseTimePtr("harvested_at", r.HarvestedAt)
	if err != nil {
		return nil, err
	}
	created, err := parseTime("created_at", r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &entities.PlantingEvent{
		GardenID:    r.GardenID,
		PlantID:     r.PlantID,
		PlantedAt:   planted,
		Quantity:    r.Quantity,
		Status:      st,
		HarvestedAt: harvested,
		YieldKg:     r.YieldKg,
		Notes:       r.Notes,
		CreatedAt:   created,
	}, nil
}

func soilSampleRecord(e entities.SoilSample) types.SoilSampleRecord {
	return types.SoilSampleRecord{
		ID:               e.ID,
		GardenID:         e.GardenID,
		PlantingEventID:  e.PlantingEventID,
		SampledAt:        types.FormatTime(e.SampledAt),
		PH:               e.PH,
		NitrogenPPM:      e.NitrogenPPM,
		PhosphorusPPM:    e.PhosphorusPPM,
		PotassiumPPM:     e.PotassiumPPM,
		OrganicMatterPct: e.OrganicMatterPct,
		MoisturePct:      e.MoisturePct,
		Notes:            e.Notes,
		CreatedAt:        types.FormatTime(e.CreatedAt),
	}
}

func soilSampleEntity(r types.SoilSampleRecord) (*entities.SoilSample, error) {
	sampled, err := parseTime("sampled_at", r.SampledAt)
	if err != nil {
		return nil, err
	}
	created, err := parseTime("created_at", r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &entities.SoilSample{
		GardenID:         r.GardenID,
		PlantingEventID:  r.PlantingEventID,
		SampledAt:        sampled,
		PH:               r.PH,
		NitrogenPPM:      r.NitrogenPPM,
		PhosphorusPPM:    r.PhosphorusPPM,
		PotassiumPPM:     r.PotassiumPPM,
		OrganicMatterPct: r.OrganicMatterPct,
		MoisturePct:      r.MoisturePct,
		Notes:            r.Notes,
		CreatedAt:        created,
	}, nil
}

func wateringEventRecord(e entities.WateringEvent) types.WateringEventRecord {
	return types.WateringEventRecord{
		ID:               e.ID,
		IrrigationZoneID: e.IrrigationZoneID,
		WateredAt:        types.FormatTime(e.WateredAt),
		DurationMin:      e.DurationMin,
		VolumeL:          e.VolumeL,
		Notes:            e.Notes,
		CreatedAt:        types.FormatTime(e.CreatedAt),
	}
}

func wateringEventEntity(r types.WateringEventRecord) (*entities.WateringEvent, error) {
	watered, err := parseTime("watered_at", r.WateredAt)
	if err != nil {
		return nil, err
	}
	created, err := parseTime("created_at", r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &entities.WateringEvent{
		IrrigationZoneID: r.IrrigationZoneID,
		WateredAt:        watered,
		DurationMin:      r.DurationMin,
		VolumeL:          r.VolumeL,
		Notes:            r.Notes,
		CreatedAt:        created,
	}, nil
}

func sensorReadingRecord(e entities.SensorReading) types.SensorReadingRecord {
	return types.SensorReadingRecord{
		ID:         e.ID,
		GardenID:   e.GardenID,
		SensorType: e.SensorType.String(),
		Value:      e.Value,
		Unit:       e.Unit,
		RecordedAt: types.FormatTime(e.RecordedAt),
		CreatedAt:  types.FormatTime(e.CreatedAt),
	}
}

func sensorReadingEntity(r types.SensorReadingRecord) (*entities.SensorReading, error) {
	st, err := entities.ParseSensorType(r.SensorType)
	if err != nil {
		return nil, fieldErr("sensor_type", err)
	}
	recorded, err := parseTime("recorded_at", r.RecordedAt)
	if err != nil {
		return nil, err
	}
	created, err := parseTime("created_at", r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &entities.SensorReading{
		GardenID:   r.GardenID,
		SensorType: st,
		Value:      r.Value,
		Unit:       r.Unit,
		RecordedAt: recorded,
		CreatedAt:  created,
	}, nil
}

type validatable interface{ Validate() error }

// checkRecord converts r to its model and runs the model's field validators.
func checkRecord(r types.Record) error {
	var (
		v   validatable
		err error
	)
	switch r := r.(type) {
	case types.LandRecord:
		v, err = landEntity(r)
	case types.IrrigationSourceRecord:
		v, err = irrigationSourceEntity(r)
	case types.IrrigationZoneRecord:
		v, err = irrigationZoneEntity(r)
	case types.GardenRecord:
		v, err = gardenEntity(r)
	case types.TreeRecord:
		v, err = treeEntity(r)
	case types.PlantingEventRecord:
		v, err = plantingEventEntity(r)
	case types.SoilSampleRecord:
		v, err = soilSampleEntity(r)
	case types.WateringEventRecord:
		v, err = wateringEventEntity(r)
	case types.SensorReadingRecord:
		v, err = sensorReadingEntity(r)
	default:
		return fieldErr("", errUnknownRecord)
	}
	if err != nil {
		return err
	}
	return v.Validate()
}
