package model

import (
	"gorm.io/gorm"
)

// Status is the publication status of a formation or module.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
)

// Formation is the top level of the curriculum hierarchy.
// It exclusively owns an ordered sequence of modules.
type Formation struct {
	gorm.Model
	ID           string `gorm:"primaryKey;uuid;not null;"`
	Title        string `gorm:"not null"`
	Description  string
	CoverImage   string
	PassingGrade int       `gorm:"not null;default:80"`
	Status       Status    `gorm:"not null;default:DRAFT"`
	Modules      []*Module `gorm:"foreignKey:FormationID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Formation) TableName() string {
	return "formations"
}
