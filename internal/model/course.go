package model

import (
	"gorm.io/gorm"
)

// Course is a single lesson inside a module. Content holds the serialized
// rich-document tree exactly as the editor produced it; Compression names
// the codec used to encode the stored bytes.
type Course struct {
	gorm.Model
	ID           string `gorm:"primaryKey;uuid;not null;"`
	ModuleID     string `gorm:"uuid;not null;index:idx_courses_module_id"`
	Title        string `gorm:"not null"`
	Introduction string
	Objective    string
	VideoURL     string
	Content      string
	Compression  string
	Position     int         `gorm:"not null"`
	Quiz         *Quiz       `gorm:"foreignKey:CourseID;references:ID;constraint:OnDelete:CASCADE"`
	Resources    []*Resource `gorm:"foreignKey:CourseID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Course) TableName() string {
	return "courses"
}
