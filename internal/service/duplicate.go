package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/openlearnhq/curriculum/internal/model"
	"github.com/openlearnhq/curriculum/internal/store"
)

const copySuffix = " (copy)"

// DuplicateModule creates a structural copy of a module under the same
// formation. The copy lands at the next free position, is always a draft,
// and re-creates the source courses with their metadata and original
// position values. Course content, quizzes and resources are not copied:
// duplication is for structural reuse, not content cloning.
func (s *CurriculumService) DuplicateModule(ctx context.Context, moduleID string) (*model.Module, error) {
	// the first fetch only resolves the formation to lock; the source is
	// read again inside the transaction so a concurrent delete cannot
	// leave a copy of a module that no longer exists
	source, err := s.store.GetModule(ctx, moduleID)
	if err != nil {
		return nil, orNotFound(err, ErrModuleNotFound)
	}

	unlock := s.locks.Acquire(source.FormationID)
	defer unlock()

	var duplicate *model.Module
	err = s.store.Transaction(ctx, func(tx store.Store) error {
		source, err = tx.GetModule(ctx, moduleID)
		if err != nil {
			return orNotFound(err, ErrModuleNotFound)
		}

		max, err := tx.MaxModulePosition(ctx, source.FormationID)
		if err != nil {
			return err
		}

		duplicate = &model.Module{
			ID:          uuid.New().String(),
			FormationID: source.FormationID,
			Title:       source.Title + copySuffix,
			Description: source.Description,
			Level:       source.Level,
			Status:      model.StatusDraft,
			Position:    max + 1,
		}
		if err := tx.CreateModule(ctx, duplicate); err != nil {
			return err
		}

		courses, err := tx.ListCourses(ctx, moduleID)
		if err != nil {
			return err
		}

		for _, course := range courses {
			clone := &model.Course{
				ID:           uuid.New().String(),
				ModuleID:     duplicate.ID,
				Title:        course.Title,
				Introduction: course.Introduction,
				Objective:    course.Objective,
				VideoURL:     course.VideoURL,
				Position:     course.Position,
			}
			if err := tx.CreateCourse(ctx, clone); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof("duplicated module %s as %s", moduleID, duplicate.ID)
	return duplicate, nil
}
