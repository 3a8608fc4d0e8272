package store

import (
	"context"

	"github.com/openlearnhq/curriculum/internal/model"
)

type Store interface {
	FormationStore
	ModuleStore
	CourseStore
	QuizStore
	ResourceStore
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

type FormationStore interface {
	// CreateFormation creates a new formation.
	CreateFormation(ctx context.Context, formation *model.Formation) error
	// GetFormation retrieves a formation by ID.
	GetFormation(ctx context.Context, id string) (*model.Formation, error)
	// ListFormations retrieves all formations.
	ListFormations(ctx context.Context) ([]*model.Formation, error)
	// UpdateFormation updates a formation.
	UpdateFormation(ctx context.Context, formation *model.Formation) error
	// DeleteFormation deletes a formation by ID.
	DeleteFormation(ctx context.Context, id string) error
	// CountFormationCourses counts courses across all modules of a formation.
	CountFormationCourses(ctx context.Context, formationID string) (int64, error)
}

type ModuleStore interface {
	// CreateModule creates a new module.
	CreateModule(ctx context.Context, module *model.Module) error
	// GetModule retrieves a module by ID.
	GetModule(ctx context.Context, id string) (*model.Module, error)
	// ListModules retrieves the modules of a formation ordered by position.
	ListModules(ctx context.Context, formationID string) ([]*model.Module, error)
	// UpdateModule updates a module.
	UpdateModule(ctx context.Context, module *model.Module) error
	// DeleteModule deletes a module by ID.
	DeleteModule(ctx context.Context, id string) error
	// DeleteModulesByFormation deletes every module of a formation.
	DeleteModulesByFormation(ctx context.Context, formationID string) error
	// MaxModulePosition returns the highest position among a formation's modules, 0 if none.
	MaxModulePosition(ctx context.Context, formationID string) (int, error)
	// UpdateModulePosition moves a module of a formation to a new position.
	UpdateModulePosition(ctx context.Context, formationID, moduleID string, position int) error
	// CountModuleCourses counts the courses owned by a module.
	CountModuleCourses(ctx context.Context, moduleID string) (int64, error)
}

type CourseStore interface {
	// CreateCourse creates a new course.
	CreateCourse(ctx context.Context, course *model.Course) error
	// GetCourse retrieves a course by ID.
	GetCourse(ctx context.Context, id string) (*model.Course, error)
	// ListCourses retrieves the courses of a module ordered by position.
	ListCourses(ctx context.Context, moduleID string) ([]*model.Course, error)
	// UpdateCourse updates a course.
	UpdateCourse(ctx context.Context, course *model.Course) error
	// DeleteCourse deletes a course by ID.
	DeleteCourse(ctx context.Context, id string) error
	// MaxCoursePosition returns the highest position among a module's courses, 0 if none.
	MaxCoursePosition(ctx context.Context, moduleID string) (int, error)
	// UpdateCoursePosition moves a course of a module to a new position.
	UpdateCoursePosition(ctx context.Context, moduleID, courseID string, position int) error
}

type QuizStore interface {
	// CreateQuiz creates a new quiz.
	CreateQuiz(ctx context.Context, quiz *model.Quiz) error
	// GetQuizByCourse retrieves the quiz of a course.
	GetQuizByCourse(ctx context.Context, courseID string) (*model.Quiz, error)
	// UpdateQuiz updates a quiz.
	UpdateQuiz(ctx context.Context, quiz *model.Quiz) error
	// DeleteQuizByCourse deletes the quiz of a course.
	DeleteQuizByCourse(ctx context.Context, courseID string) error
}

type ResourceStore interface {
	// CreateResources inserts a batch of resources.
	CreateResources(ctx context.Context, resources []*model.Resource) error
	// ListResources retrieves the resources of a course ordered by ordinal.
	ListResources(ctx context.Context, courseID string) ([]*model.Resource, error)
	// DeleteResourcesByCourse deletes every resource of a course.
	DeleteResourcesByCourse(ctx context.Context, courseID string) error
}
