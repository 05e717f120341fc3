package database

import (
	"fmt"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"gardenbook/entities"
	"gardenbook/pkg/logger"
)

// Models lists every table the application owns, in dependency order.
var Models = []any{
	&entities.User{},
	&entities.Plant{},
	&entities.Land{},
	&entities.IrrigationSource{},
	&entities.IrrigationZone{},
	&entities.Garden{},
	&entities.Tree{},
	&entities.PlantingEvent{},
	&entities.SoilSample{},
	&entities.WateringEvent{},
	&entities.SensorReading{},
}

// OpenSQLite opens (creating if needed) the database at path and migrates
// the schema.
func OpenSQLite(path string, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn(path)), &gorm.Config{
		Logger: logger.NewGorm(log, 200*time.Millisecond),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := db.AutoMigrate(Models...); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

// dsn adds a busy timeout so concurrent writers wait instead of failing.
func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)"
}

// SeedCatalog inserts plants whose common name is not in the catalog yet.
// All-or-nothing.
func SeedCatalog(db *gorm.DB, plants []entities.Plant) (int, error) {
	added := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range plants {
			p := plants[i]
			var n int64
			if err := tx.Model(&entities.Plant{}).Where("LOWER(common_name) = ?", strings.ToLower(p.CommonName)).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				continue
			}
			if err := tx.Create(&p).Error; err != nil {
				return fmt.Errorf("seed %q: %w", p.CommonName, err)
			}
			added++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}
