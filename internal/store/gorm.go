package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/openlearnhq/curriculum/internal/model"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

func (g *GormStore) CreateFormation(ctx context.Context, formation *model.Formation) error {
	return g.db.WithContext(ctx).Create(formation).Error
}

func (g *GormStore) GetFormation(ctx context.Context, id string) (*model.Formation, error) {
	var formation model.Formation
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&formation).Error
	if err != nil {
		return nil, err
	}
	return &formation, nil
}

func (g *GormStore) ListFormations(ctx context.Context) ([]*model.Formation, error) {
	var formations []*model.Formation
	err := g.db.WithContext(ctx).Order("created_at asc").Find(&formations).Error
	return formations, err
}

func (g *GormStore) UpdateFormation(ctx context.Context, formation *model.Formation) error {
	return g.db.WithContext(ctx).Save(formation).Error
}

func (g *GormStore) DeleteFormation(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Formation{}).Error
}

func (g *GormStore) CountFormationCourses(ctx context.Context, formationID string) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&model.Course{}).
		Joins("JOIN modules ON modules.id = courses.module_id").
		Where("modules.formation_id = ? AND modules.deleted_at IS NULL", formationID).
		Count(&count).Error
	return count, err
}

func (g *GormStore) CreateModule(ctx context.Context, module *model.Module) error {
	return g.db.WithContext(ctx).Create(module).Error
}

func (g *GormStore) GetModule(ctx context.Context, id string) (*model.Module, error) {
	var module model.Module
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&module).Error
	if err != nil {
		return nil, err
	}
	return &module, nil
}

func (g *GormStore) ListModules(ctx context.Context, formationID string) ([]*model.Module, error) {
	var modules []*model.Module
	err := g.db.WithContext(ctx).
		Where("formation_id = ?", formationID).
		Order("position asc").
		Find(&modules).Error
	return modules, err
}

func (g *GormStore) UpdateModule(ctx context.Context, module *model.Module) error {
	return g.db.WithContext(ctx).Save(module).Error
}

func (g *GormStore) DeleteModule(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Module{}).Error
}

func (g *GormStore) MaxModulePosition(ctx context.Context, formationID string) (int, error) {
	var max int
	err := g.db.WithContext(ctx).Model(&model.Module{}).
		Where("formation_id = ?", formationID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&max).Error
	return max, err
}

func (g *GormStore) DeleteModulesByFormation(ctx context.Context, formationID string) error {
	return g.db.WithContext(ctx).Where("formation_id = ?", formationID).Delete(&model.Module{}).Error
}

func (g *GormStore) UpdateModulePosition(ctx context.Context, formationID, moduleID string, position int) error {
	res := g.db.WithContext(ctx).Model(&model.Module{}).
		Where("id = ? AND formation_id = ?", moduleID, formationID).
		Update("position", position)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (g *GormStore) CountModuleCourses(ctx context.Context, moduleID string) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&model.Course{}).
		Where("module_id = ?", moduleID).
		Count(&count).Error
	return count, err
}

func (g *GormStore) CreateCourse(ctx context.Context, course *model.Course) error {
	return g.db.WithContext(ctx).Create(course).Error
}

func (g *GormStore) GetCourse(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (g *GormStore) ListCourses(ctx context.Context, moduleID string) ([]*model.Course, error) {
	var courses []*model.Course
	err := g.db.WithContext(ctx).
		Where("module_id = ?", moduleID).
		Order("position asc").
		Find(&courses).Error
	return courses, err
}

func (g *GormStore) UpdateCourse(ctx context.Context, course *model.Course) error {
	return g.db.WithContext(ctx).Save(course).Error
}

func (g *GormStore) DeleteCourse(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Course{}).Error
}

func (g *GormStore) MaxCoursePosition(ctx context.Context, moduleID string) (int, error) {
	var max int
	err := g.db.WithContext(ctx).Model(&model.Course{}).
		Where("module_id = ?", moduleID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&max).Error
	return max, err
}

func (g *GormStore) UpdateCoursePosition(ctx context.Context, moduleID, courseID string, position int) error {
	res := g.db.WithContext(ctx).Model(&model.Course{}).
		Where("id = ? AND module_id = ?", courseID, moduleID).
		Update("position", position)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (g *GormStore) CreateQuiz(ctx context.Context, quiz *model.Quiz) error {
	return g.db.WithContext(ctx).Create(quiz).Error
}

func (g *GormStore) GetQuizByCourse(ctx context.Context, courseID string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := g.db.WithContext(ctx).Where("course_id = ?", courseID).First(&quiz).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (g *GormStore) UpdateQuiz(ctx context.Context, quiz *model.Quiz) error {
	return g.db.WithContext(ctx).Save(quiz).Error
}

func (g *GormStore) DeleteQuizByCourse(ctx context.Context, courseID string) error {
	return g.db.WithContext(ctx).Where("course_id = ?", courseID).Delete(&model.Quiz{}).Error
}

func (g *GormStore) CreateResources(ctx context.Context, resources []*model.Resource) error {
	if len(resources) == 0 {
		return nil
	}
	return g.db.WithContext(ctx).Create(resources).Error
}

func (g *GormStore) ListResources(ctx context.Context, courseID string) ([]*model.Resource, error) {
	var resources []*model.Resource
	err := g.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("ordinal asc").
		Find(&resources).Error
	return resources, err
}

func (g *GormStore) DeleteResourcesByCourse(ctx context.Context, courseID string) error {
	return g.db.WithContext(ctx).Where("course_id = ?", courseID).Delete(&model.Resource{}).Error
}

func (g *GormStore) Migrate() error {
	return model.Migrate(g.db)
}

func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}
