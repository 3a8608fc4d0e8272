package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/openlearnhq/curriculum/internal/store"
)

// CanDeleteFormation reports whether a formation may be deleted. A nil
// return means deletion is allowed; a *DeniedError names the refusal.
func (s *CurriculumService) CanDeleteFormation(ctx context.Context, id string) error {
	if _, err := s.store.GetFormation(ctx, id); err != nil {
		return orNotFound(err, ErrFormationNotFound)
	}

	count, err := s.store.CountFormationCourses(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &DeniedError{Reason: DenyFormationHasCourses, Count: count}
	}
	return nil
}

// CanDeleteModule reports whether a module may be deleted.
func (s *CurriculumService) CanDeleteModule(ctx context.Context, id string) error {
	if _, err := s.store.GetModule(ctx, id); err != nil {
		return orNotFound(err, ErrModuleNotFound)
	}

	count, err := s.store.CountModuleCourses(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &DeniedError{Reason: DenyModuleHasCourses, Count: count}
	}
	return nil
}

// DeleteFormation deletes a formation and its course-less modules. Denied
// while any owned module still has at least one course.
func (s *CurriculumService) DeleteFormation(ctx context.Context, id string) error {
	return s.store.Transaction(ctx, func(tx store.Store) error {
		if _, err := tx.GetFormation(ctx, id); err != nil {
			return orNotFound(err, ErrFormationNotFound)
		}

		count, err := tx.CountFormationCourses(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return &DeniedError{Reason: DenyFormationHasCourses, Count: count}
		}

		if err := tx.DeleteModulesByFormation(ctx, id); err != nil {
			return err
		}
		return tx.DeleteFormation(ctx, id)
	})
}

// DeleteModule deletes a module. Denied while the module owns courses.
func (s *CurriculumService) DeleteModule(ctx context.Context, id string) error {
	return s.store.Transaction(ctx, func(tx store.Store) error {
		if _, err := tx.GetModule(ctx, id); err != nil {
			return orNotFound(err, ErrModuleNotFound)
		}

		count, err := tx.CountModuleCourses(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return &DeniedError{Reason: DenyModuleHasCourses, Count: count}
		}

		return tx.DeleteModule(ctx, id)
	})
}

// DeleteCourse deletes a course together with its quiz and resources.
// The cascade runs in one transaction so no orphan rows survive a failure.
// It takes the same per-course lock the sync operations hold, so a delete
// cannot slip between a sync call's existence check and its writes.
func (s *CurriculumService) DeleteCourse(ctx context.Context, id string) error {
	unlock := s.locks.Acquire(id)
	defer unlock()

	err := s.store.Transaction(ctx, func(tx store.Store) error {
		if _, err := tx.GetCourse(ctx, id); err != nil {
			return orNotFound(err, ErrCourseNotFound)
		}

		if err := tx.DeleteQuizByCourse(ctx, id); err != nil {
			return err
		}
		if err := tx.DeleteResourcesByCourse(ctx, id); err != nil {
			return err
		}
		return tx.DeleteCourse(ctx, id)
	})
	if err != nil {
		return err
	}

	if cacheErr := s.thumbnails.DeleteThumbnail(ctx, id); cacheErr != nil {
		logrus.Warnf("dropping cached thumbnail for course %s: %v", id, cacheErr)
	}
	return nil
}
