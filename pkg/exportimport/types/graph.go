package types

// EntityType names one collection of a snapshot. The values double as the
// JSON keys of the collections.
type EntityType string

const (
	Lands             EntityType = "lands"
	IrrigationSources EntityType = "irrigation_sources"
	IrrigationZones   EntityType = "irrigation_zones"
	Gardens           EntityType = "gardens"
	Trees             EntityType = "trees"
	PlantingEvents    EntityType = "planting_events"
	SoilSamples       EntityType = "soil_samples"
	WateringEvents    EntityType = "watering_events"
	SensorReadings    EntityType = "sensor_readings"
)

// DependencyOrder lists entity types so that every edge target comes before
// its source. Imports create in this order; deletes run it backwards.
var DependencyOrder = [...]EntityType{
	Lands,
	IrrigationSources,
	IrrigationZones,
	Gardens,
	Trees,
	PlantingEvents,
	SoilSamples,
	WateringEvents,
	SensorReadings,
}

// Edge is a "depends on" reference from one entity type to another.
type Edge struct {
	From     EntityType
	To       EntityType
	Field    string
	Required bool
}

var (
	GardenLand          = Edge{From: Gardens, To: Lands, Field: "land_id"}
	GardenZone          = Edge{From: Gardens, To: IrrigationZones, Field: "irrigation_zone_id"}
	TreeLand            = Edge{From: Trees, To: Lands, Field: "land_id", Required: true}
	PlantingGarden      = Edge{From: PlantingEvents, To: Gardens, Field: "garden_id", Required: true}
	SoilGarden          = Edge{From: SoilSamples, To: Gardens, Field: "garden_id"}
	SoilPlanting        = Edge{From: SoilSamples, To: PlantingEvents, Field: "planting_event_id"}
	ZoneSource          = Edge{From: IrrigationZones, To: IrrigationSources, Field: "irrigation_source_id"}
	WateringZone        = Edge{From: WateringEvents, To: IrrigationZones, Field: "irrigation_zone_id", Required: true}
	SensorReadingGarden = Edge{From: SensorReadings, To: Gardens, Field: "garden_id", Required: true}
)

// Edges is the full reference graph between owned entity types. The plant
// catalog is shared reference data and has no edge here.
var Edges = []Edge{
	GardenLand,
	GardenZone,
	TreeLand,
	PlantingGarden,
	SoilGarden,
	SoilPlanting,
	ZoneSource,
	WateringZone,
	SensorReadingGarden,
}

// Rank returns the position of t in DependencyOrder, or -1.
func Rank(t EntityType) int {
	for i, et := range DependencyOrder {
		if et == t {
			return i
		}
	}
	return -1
}
