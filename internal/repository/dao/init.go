package dao

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/citypark/parking-api/internal/config"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Floor{},
		&Row{},
		&Slot{},
		&User{},
		&ParkingSession{},
	)
}

// SeedTopology creates the configured floors/rows/slots layout on a fresh
// database. It is a no-op when seeding is disabled or any floor exists.
func SeedTopology(db *gorm.DB, conf *config.SeedConfig) error {
	if conf == nil || conf.Floors == 0 {
		return nil
	}

	var count int64
	if err := db.Model(&Floor{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for f := 1; f <= conf.Floors; f++ {
			floor := Floor{Name: fmt.Sprintf("Floor %d", f)}
			if err := tx.Create(&floor).Error; err != nil {
				return err
			}

			for r := 1; r <= conf.RowsPerFloor; r++ {
				row := Row{FloorID: floor.ID, Name: fmt.Sprintf("Row %d", r)}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}

				for s := 1; s <= conf.SlotsPerRow; s++ {
					slot := Slot{
						RowID:  row.ID,
						Name:   fmt.Sprintf("%d-%d-%d", f, r, s),
						Status: SlotFree,
					}
					if err := tx.Create(&slot).Error; err != nil {
						return err
					}
				}
			}
		}

		return nil
	})
}
