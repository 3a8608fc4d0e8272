package service

import (
	"context"

	"github.com/openlearnhq/curriculum/internal/store"
)

// ReorderModules applies a full target ordering to the modules of a
// formation. Either every assignment applies or none do; an assignment
// naming a module outside the formation rolls the whole batch back.
func (s *CurriculumService) ReorderModules(ctx context.Context, formationID string, assignments []PositionAssignment) error {
	unlock := s.locks.Acquire(formationID)
	defer unlock()

	if _, err := s.store.GetFormation(ctx, formationID); err != nil {
		return orNotFound(err, ErrFormationNotFound)
	}

	err := s.store.Transaction(ctx, func(tx store.Store) error {
		for _, a := range assignments {
			if err := tx.UpdateModulePosition(ctx, formationID, a.ChildID, a.Position); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &SyncError{Op: "reorder modules", Err: err}
	}
	return nil
}

// ReorderCourses applies a full target ordering to the courses of a module.
func (s *CurriculumService) ReorderCourses(ctx context.Context, moduleID string, assignments []PositionAssignment) error {
	unlock := s.locks.Acquire(moduleID)
	defer unlock()

	if _, err := s.store.GetModule(ctx, moduleID); err != nil {
		return orNotFound(err, ErrModuleNotFound)
	}

	err := s.store.Transaction(ctx, func(tx store.Store) error {
		for _, a := range assignments {
			if err := tx.UpdateCoursePosition(ctx, moduleID, a.ChildID, a.Position); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &SyncError{Op: "reorder courses", Err: err}
	}
	return nil
}
