package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openlearnhq/curriculum/internal/model"
	"github.com/openlearnhq/curriculum/internal/store"
)

type ResourceInput struct {
	Title       string
	Kind        model.ResourceKind
	URL         string
	Description string
}

type QuizInput struct {
	Question string
	Options  []string
	Answers  []int
}

// SyncResources replaces the entire resource set of a course with the
// supplied list. The delete and the inserts run in one transaction, so a
// failed call leaves the prior set intact. An empty list is valid and
// clears the course's resources.
func (s *CurriculumService) SyncResources(ctx context.Context, courseID string, inputs []ResourceInput) error {
	unlock := s.locks.Acquire(courseID)
	defer unlock()

	err := s.store.Transaction(ctx, func(tx store.Store) error {
		// the existence check shares the transaction with the writes, so a
		// concurrent course delete can never leave orphan resources behind
		if _, err := tx.GetCourse(ctx, courseID); err != nil {
			return orNotFound(err, ErrCourseNotFound)
		}

		if err := tx.DeleteResourcesByCourse(ctx, courseID); err != nil {
			return err
		}

		resources := make([]*model.Resource, 0, len(inputs))
		for i, in := range inputs {
			kind := in.Kind
			if kind == "" {
				kind = model.ResourceLink
			}
			resources = append(resources, &model.Resource{
				ID:          uuid.New().String(),
				CourseID:    courseID,
				Title:       in.Title,
				Kind:        kind,
				URL:         in.URL,
				Description: in.Description,
				Ordinal:     i + 1,
			})
		}
		return tx.CreateResources(ctx, resources)
	})
	if err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			return err
		}
		return &SyncError{Op: "sync resources", Err: err}
	}
	return nil
}

// ListResources lists the resources of a course in synced order.
func (s *CurriculumService) ListResources(ctx context.Context, courseID string) ([]*model.Resource, error) {
	if _, err := s.store.GetCourse(ctx, courseID); err != nil {
		return nil, orNotFound(err, ErrCourseNotFound)
	}
	return s.store.ListResources(ctx, courseID)
}

// UpsertQuiz creates the quiz of a course on first call and updates it in
// place afterwards. The existence check and the write share a transaction,
// so a course never ends up with two quizzes.
func (s *CurriculumService) UpsertQuiz(ctx context.Context, courseID string, in QuizInput) (*model.Quiz, error) {
	unlock := s.locks.Acquire(courseID)
	defer unlock()

	options, err := json.Marshal(normalizeOptions(in.Options))
	if err != nil {
		return nil, &SyncError{Op: "upsert quiz", Err: err}
	}
	answers, err := json.Marshal(normalizeAnswers(in.Answers))
	if err != nil {
		return nil, &SyncError{Op: "upsert quiz", Err: err}
	}

	var quiz *model.Quiz
	err = s.store.Transaction(ctx, func(tx store.Store) error {
		if _, err := tx.GetCourse(ctx, courseID); err != nil {
			return orNotFound(err, ErrCourseNotFound)
		}

		existing, err := tx.GetQuizByCourse(ctx, courseID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if existing == nil || errors.Is(err, gorm.ErrRecordNotFound) {
			quiz = &model.Quiz{
				ID:       uuid.New().String(),
				CourseID: courseID,
				Question: in.Question,
				Options:  string(options),
				Answers:  string(answers),
			}
			return tx.CreateQuiz(ctx, quiz)
		}

		existing.Question = in.Question
		existing.Options = string(options)
		existing.Answers = string(answers)
		quiz = existing
		return tx.UpdateQuiz(ctx, existing)
	})
	if err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			return nil, err
		}
		return nil, &SyncError{Op: "upsert quiz", Err: err}
	}

	return quiz, nil
}

// GetQuiz retrieves the quiz of a course.
func (s *CurriculumService) GetQuiz(ctx context.Context, courseID string) (*model.Quiz, error) {
	quiz, err := s.store.GetQuizByCourse(ctx, courseID)
	if err != nil {
		return nil, orNotFound(err, ErrQuizNotFound)
	}
	return quiz, nil
}

func normalizeOptions(options []string) []string {
	if options == nil {
		return []string{}
	}
	return options
}

// normalizeAnswers deduplicates the correct-answer indices and returns
// them in ascending order.
func normalizeAnswers(answers []int) []int {
	normalized := mapset.NewSet[int](answers...).ToSlice()
	sort.Ints(normalized)
	return normalized
}
