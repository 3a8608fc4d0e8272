package model

import (
	"gorm.io/gorm"
)

// Level is the difficulty level of a module.
type Level string

const (
	LevelBeginner     Level = "BEGINNER"
	LevelIntermediate Level = "INTERMEDIATE"
	LevelAdvanced     Level = "ADVANCED"
)

// Module is a section of a formation. Position is unique among the
// siblings of one formation and assigned by the engine, never by callers.
type Module struct {
	gorm.Model
	ID          string `gorm:"primaryKey;uuid;not null;"`
	FormationID string `gorm:"uuid;not null;index:idx_modules_formation_id"`
	Title       string `gorm:"not null"`
	Description string
	Level       Level     `gorm:"not null;default:BEGINNER"`
	Status      Status    `gorm:"not null;default:DRAFT"`
	Position    int       `gorm:"not null"`
	Courses     []*Course `gorm:"foreignKey:ModuleID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Module) TableName() string {
	return "modules"
}
