package service

import (
	"errors"
	"fmt"
)

var (
	// ErrFormationNotFound is returned when a formation id does not exist.
	ErrFormationNotFound = errors.New("formation not found")
	// ErrModuleNotFound is returned when a module id does not exist.
	ErrModuleNotFound = errors.New("module not found")
	// ErrCourseNotFound is returned when a course id does not exist.
	ErrCourseNotFound = errors.New("course not found")
	// ErrQuizNotFound is returned when a course has no quiz yet.
	ErrQuizNotFound = errors.New("quiz not found")
)

// DenyReason is a structured code naming why a deletion was refused.
type DenyReason string

const (
	DenyFormationHasCourses DenyReason = "formation_has_courses"
	DenyModuleHasCourses    DenyReason = "module_has_courses"
)

// DeniedError is an integrity-guard refusal. Count carries the number of
// blocking courses so callers can render a precise message.
type DeniedError struct {
	Reason DenyReason
	Count  int64
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("deletion denied: %s, contains %d course(s)", e.Reason, e.Count)
}

// SyncError is returned when an atomic unit could not complete. The store
// rolls back, so the prior state is intact and idempotent operations may
// be retried with the same input.
type SyncError struct {
	Op  string
	Err error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("%s: sync failed: %v", e.Op, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
