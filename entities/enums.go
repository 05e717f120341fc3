package entities

import (
	"fmt"
	"strings"
)

// Enumerations are stored as small integer codes. Anything that leaves the
// process (API bodies, snapshots) carries the lower-case canonical name.

type enumSet[T ~int] struct {
	kind  string
	names map[T]string
}

func (e enumSet[T]) name(v T) string {
	if s, ok := e.names[v]; ok {
		return s
	}
	return ""
}

func (e enumSet[T]) parse(s string) (T, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for v, name := range e.names {
		if name == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", e.kind, s)
}

func (e enumSet[T]) valid(v T) bool {
	_, ok := e.names[v]
	return ok
}

type GardenType int

const (
	GardenOutdoor GardenType = iota + 1
	GardenIndoor
	GardenGreenhouse
	GardenRaisedBed
	GardenContainer
	GardenHydroponic
)

var gardenTypes = enumSet[GardenType]{kind: "garden type", names: map[GardenType]string{
	GardenOutdoor:    "outdoor",
	GardenIndoor:     "indoor",
	GardenGreenhouse: "greenhouse",
	GardenRaisedBed:  "raised_bed",
	GardenContainer:  "container",
	GardenHydroponic: "hydroponic",
}}

func ParseGardenType(s string) (GardenType, error) { return gardenTypes.parse(s) }
func (t GardenType) String() string                { return gardenTypes.name(t) }
func (t GardenType) Valid() bool                   { return gardenTypes.valid(t) }
func (t GardenType) MarshalText() ([]byte, error)  { return []byte(t.String()), nil }
func (t *GardenType) UnmarshalText(b []byte) (err error) {
	*t, err = ParseGardenType(string(b))
	return err
}

type PlantingStatus int

const (
	StatusPlanned PlantingStatus = iota + 1
	StatusPlanted
	StatusGrowing
	StatusHarvested
	StatusFailed
)

var plantingStatuses = enumSet[PlantingStatus]{kind: "planting status", names: map[PlantingStatus]string{
	StatusPlanned:   "planned",
	StatusPlanted:   "planted",
	StatusGrowing:   "growing",
	StatusHarvested: "harvested",
	StatusFailed:    "failed",
}}

func ParsePlantingStatus(s string) (PlantingStatus, error) { return plantingStatuses.parse(s) }
func (s PlantingStatus) String() string                    { return plantingStatuses.name(s) }
func (s PlantingStatus) Valid() bool                       { return plantingStatuses.valid(s) }
func (s PlantingStatus) MarshalText() ([]byte, error)      { return []byte(s.String()), nil }
func (s *PlantingStatus) UnmarshalText(b []byte) (err error) {
	*s, err = ParsePlantingStatus(string(b))
	return err
}

type SourceType int

const (
	SourceMunicipal SourceType = iota + 1
	SourceWell
	SourceRainBarrel
	SourcePond
	SourceStream
	SourceOther
)

var sourceTypes = enumSet[SourceType]{kind: "irrigation source type", names: map[SourceType]string{
	SourceMunicipal:  "municipal",
	SourceWell:       "well",
	SourceRainBarrel: "rain_barrel",
	SourcePond:       "pond",
	SourceStream:     "stream",
	SourceOther:      "other",
}}

func ParseSourceType(s string) (SourceType, error) { return sourceTypes.parse(s) }
func (t SourceType) String() string                { return sourceTypes.name(t) }
func (t SourceType) Valid() bool                   { return sourceTypes.valid(t) }
func (t SourceType) MarshalText() ([]byte, error)  { return []byte(t.String()), nil }
func (t *SourceType) UnmarshalText(b []byte) (err error) {
	*t, err = ParseSourceType(string(b))
	return err
}

type IrrigationMethod int

const (
	MethodDrip IrrigationMethod = iota + 1
	MethodSprinkler
	MethodSoaker
	MethodManual
	MethodFlood
)

var irrigationMethods = enumSet[IrrigationMethod]{kind: "irrigation method", names: map[IrrigationMethod]string{
	MethodDrip:      "drip",
	MethodSprinkler: "sprinkler",
	MethodSoaker:    "soaker",
	MethodManual:    "manual",
	MethodFlood:     "flood",
}}

func ParseIrrigationMethod(s string) (IrrigationMethod, error) { return irrigationMethods.parse(s) }
func (m IrrigationMethod) String() string                      { return irrigationMethods.name(m) }
func (m IrrigationMethod) Valid() bool                         { return irrigationMethods.valid(m) }
func (m IrrigationMethod) MarshalText() ([]byte, error)        { return []byte(m.String()), nil }
func (m *IrrigationMethod) UnmarshalText(b []byte) (err error) {
	*m, err = ParseIrrigationMethod(string(b))
	return err
}

type SensorType int

const (
	SensorTemperature SensorType = iota + 1
	SensorHumidity
	SensorSoilMoisture
	SensorLight
	SensorPH
)

var sensorTypes = enumSet[SensorType]{kind: "sensor type", names: map[SensorType]string{
	SensorTemperature:  "temperature",
	SensorHumidity:     "humidity",
	SensorSoilMoisture: "soil_moisture",
	SensorLight:        "light",
	SensorPH:           "ph",
}}

func ParseSensorType(s string) (SensorType, error) { return sensorTypes.parse(s) }
func (t SensorType) String() string                { return sensorTypes.name(t) }
func (t SensorType) Valid() bool                   { return sensorTypes.valid(t) }
func (t SensorType) MarshalText() ([]byte, error)  { return []byte(t.String()), nil }
func (t *SensorType) UnmarshalText(b []byte) (err error) {
	*t, err = ParseSensorType(string(b))
	return err
}
