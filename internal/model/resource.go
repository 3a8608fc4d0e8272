package model

import (
	"gorm.io/gorm"
)

// ResourceKind tags what a course resource points at.
type ResourceKind string

const (
	ResourceDocument   ResourceKind = "document"
	ResourceVideo      ResourceKind = "video"
	ResourceLink       ResourceKind = "link"
	ResourceImage      ResourceKind = "image"
	ResourceAttachment ResourceKind = "attachment"
)

// Resource is an external reference attached to a course. Resources are
// replaced wholesale on every sync, so rows never carry caller identities.
type Resource struct {
	gorm.Model
	ID          string       `gorm:"primaryKey;uuid;not null;"`
	CourseID    string       `gorm:"uuid;not null;index:idx_resources_course_id"`
	Title       string       `gorm:"not null"`
	Kind        ResourceKind `gorm:"not null;default:link"`
	URL         string       `gorm:"not null"`
	Description string
	Ordinal     int `gorm:"not null"` // order within the synced list
}

func (Resource) TableName() string {
	return "resources"
}
