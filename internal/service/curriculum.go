package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openlearnhq/curriculum/internal/cache"
	"github.com/openlearnhq/curriculum/internal/compress"
	"github.com/openlearnhq/curriculum/internal/content"
	"github.com/openlearnhq/curriculum/internal/model"
	"github.com/openlearnhq/curriculum/internal/store"
)

const defaultPassingGrade = 80

// NewCurriculumService creates a new CurriculumService.
func NewCurriculumService(store store.Store, thumbnails cache.ThumbnailCache, codec compress.Compress) *CurriculumService {
	return &CurriculumService{
		store:      store,
		thumbnails: thumbnails,
		codec:      codec,
		extractor:  content.NewExtractor(),
		locks:      newParentLocks(),
	}
}

// CurriculumService manages the formation / module / course hierarchy and
// the dependent quiz and resource aggregates of each course.
type CurriculumService struct {
	store      store.Store
	thumbnails cache.ThumbnailCache
	codec      compress.Compress
	extractor  *content.Extractor
	locks      *parentLocks
}

type FormationInput struct {
	Title        string
	Description  string
	CoverImage   string
	PassingGrade int
}

type ModuleInput struct {
	Title       string
	Description string
	Level       model.Level
}

type CourseInput struct {
	Title        string
	Introduction string
	Objective    string
	VideoURL     string
}

// PositionAssignment is one entry of a full target ordering for a sibling
// set. The caller supplies every sibling; the engine applies all or none.
type PositionAssignment struct {
	ChildID  string
	Position int
}

// CreateFormation creates a new draft formation.
func (s *CurriculumService) CreateFormation(ctx context.Context, in FormationInput) (*model.Formation, error) {
	grade := in.PassingGrade
	if grade <= 0 {
		grade = defaultPassingGrade
	}

	formation := &model.Formation{
		ID:           uuid.New().String(),
		Title:        in.Title,
		Description:  in.Description,
		CoverImage:   in.CoverImage,
		PassingGrade: grade,
		Status:       model.StatusDraft,
	}

	if err := s.store.CreateFormation(ctx, formation); err != nil {
		return nil, err
	}
	return formation, nil
}

// GetFormation retrieves a formation by id.
func (s *CurriculumService) GetFormation(ctx context.Context, id string) (*model.Formation, error) {
	formation, err := s.store.GetFormation(ctx, id)
	if err != nil {
		return nil, orNotFound(err, ErrFormationNotFound)
	}
	return formation, nil
}

// ListFormations lists every formation.
func (s *CurriculumService) ListFormations(ctx context.Context) ([]*model.Formation, error) {
	return s.store.ListFormations(ctx)
}

// UpdateFormation updates the metadata fields of a formation.
func (s *CurriculumService) UpdateFormation(ctx context.Context, id string, in FormationInput) (*model.Formation, error) {
	formation, err := s.store.GetFormation(ctx, id)
	if err != nil {
		return nil, orNotFound(err, ErrFormationNotFound)
	}

	formation.Title = in.Title
	formation.Description = in.Description
	formation.CoverImage = in.CoverImage
	if in.PassingGrade > 0 {
		formation.PassingGrade = in.PassingGrade
	}

	if err := s.store.UpdateFormation(ctx, formation); err != nil {
		return nil, err
	}
	return formation, nil
}

// PublishFormation flips a formation to PUBLISHED.
func (s *CurriculumService) PublishFormation(ctx context.Context, id string) error {
	return s.setFormationStatus(ctx, id, model.StatusPublished)
}

// UnpublishFormation flips a formation back to DRAFT.
func (s *CurriculumService) UnpublishFormation(ctx context.Context, id string) error {
	return s.setFormationStatus(ctx, id, model.StatusDraft)
}

func (s *CurriculumService) setFormationStatus(ctx context.Context, id string, status model.Status) error {
	formation, err := s.store.GetFormation(ctx, id)
	if err != nil {
		return orNotFound(err, ErrFormationNotFound)
	}
	formation.Status = status
	return s.store.UpdateFormation(ctx, formation)
}

// CreateModule appends a module to a formation. The position is computed
// in the same transaction as the insert, so concurrent appends to the same
// formation never produce duplicate positions.
func (s *CurriculumService) CreateModule(ctx context.Context, formationID string, in ModuleInput) (*model.Module, error) {
	unlock := s.locks.Acquire(formationID)
	defer unlock()

	level := in.Level
	if level == "" {
		level = model.LevelBeginner
	}

	var module *model.Module
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		if _, err := tx.GetFormation(ctx, formationID); err != nil {
			return orNotFound(err, ErrFormationNotFound)
		}

		max, err := tx.MaxModulePosition(ctx, formationID)
		if err != nil {
			return err
		}

		module = &model.Module{
			ID:          uuid.New().String(),
			FormationID: formationID,
			Title:       in.Title,
			Description: in.Description,
			Level:       level,
			Status:      model.StatusDraft,
			Position:    max + 1,
		}
		return tx.CreateModule(ctx, module)
	})
	if err != nil {
		return nil, err
	}

	return module, nil
}

// GetModule retrieves a module by id.
func (s *CurriculumService) GetModule(ctx context.Context, id string) (*model.Module, error) {
	module, err := s.store.GetModule(ctx, id)
	if err != nil {
		return nil, orNotFound(err, ErrModuleNotFound)
	}
	return module, nil
}

// ListModules lists the modules of a formation in position order.
func (s *CurriculumService) ListModules(ctx context.Context, formationID string) ([]*model.Module, error) {
	if _, err := s.store.GetFormation(ctx, formationID); err != nil {
		return nil, orNotFound(err, ErrFormationNotFound)
	}
	return s.store.ListModules(ctx, formationID)
}

// UpdateModule updates the metadata fields of a module.
func (s *CurriculumService) UpdateModule(ctx context.Context, id string, in ModuleInput) (*model.Module, error) {
	module, err := s.store.GetModule(ctx, id)
	if err != nil {
		return nil, orNotFound(err, ErrModuleNotFound)
	}

	module.Title = in.Title
	module.Description = in.Description
	if in.Level != "" {
		module.Level = in.Level
	}

	if err := s.store.UpdateModule(ctx, module); err != nil {
		return nil, err
	}
	return module, nil
}

// PublishModule flips a module to PUBLISHED.
func (s *CurriculumService) PublishModule(ctx context.Context, id string) error {
	return s.setModuleStatus(ctx, id, model.StatusPublished)
}

// UnpublishModule flips a module back to DRAFT.
func (s *CurriculumService) UnpublishModule(ctx context.Context, id string) error {
	return s.setModuleStatus(ctx, id, model.StatusDraft)
}

func (s *CurriculumService) setModuleStatus(ctx context.Context, id string, status model.Status) error {
	module, err := s.store.GetModule(ctx, id)
	if err != nil {
		return orNotFound(err, ErrModuleNotFound)
	}
	module.Status = status
	return s.store.UpdateModule(ctx, module)
}

// CreateCourse appends a course to a module with a computed position.
// Content starts empty and is set separately through UpdateCourseContent.
func (s *CurriculumService) CreateCourse(ctx context.Context, moduleID string, in CourseInput) (*model.Course, error) {
	unlock := s.locks.Acquire(moduleID)
	defer unlock()

	var course *model.Course
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		if _, err := tx.GetModule(ctx, moduleID); err != nil {
			return orNotFound(err, ErrModuleNotFound)
		}

		max, err := tx.MaxCoursePosition(ctx, moduleID)
		if err != nil {
			return err
		}

		course = &model.Course{
			ID:           uuid.New().String(),
			ModuleID:     moduleID,
			Title:        in.Title,
			Introduction: in.Introduction,
			Objective:    in.Objective,
			VideoURL:     in.VideoURL,
			Position:     max + 1,
		}
		return tx.CreateCourse(ctx, course)
	})
	if err != nil {
		return nil, err
	}

	return course, nil
}

// GetCourse retrieves a course by id.
func (s *CurriculumService) GetCourse(ctx context.Context, id string) (*model.Course, error) {
	course, err := s.store.GetCourse(ctx, id)
	if err != nil {
		return nil, orNotFound(err, ErrCourseNotFound)
	}
	return course, nil
}

// ListCourses lists the courses of a module in position order.
func (s *CurriculumService) ListCourses(ctx context.Context, moduleID string) ([]*model.Course, error) {
	if _, err := s.store.GetModule(ctx, moduleID); err != nil {
		return nil, orNotFound(err, ErrModuleNotFound)
	}
	return s.store.ListCourses(ctx, moduleID)
}

// UpdateCourse updates the metadata fields of a course.
func (s *CurriculumService) UpdateCourse(ctx context.Context, id string, in CourseInput) (*model.Course, error) {
	course, err := s.store.GetCourse(ctx, id)
	if err != nil {
		return nil, orNotFound(err, ErrCourseNotFound)
	}

	course.Title = in.Title
	course.Introduction = in.Introduction
	course.Objective = in.Objective
	course.VideoURL = in.VideoURL

	if err := s.store.UpdateCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// orNotFound maps the store's missing-record error to a service sentinel.
func orNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
