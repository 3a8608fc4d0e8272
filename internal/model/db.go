package model

import "gorm.io/gorm"

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Formation{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&Module{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&Course{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&Quiz{}); err != nil {
		return err
	}

	return db.AutoMigrate(&Resource{})
}
