package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlearnhq/curriculum/internal/cache"
	"github.com/openlearnhq/curriculum/internal/compress"
	"github.com/openlearnhq/curriculum/internal/model"
	"github.com/openlearnhq/curriculum/internal/store"
	"github.com/openlearnhq/curriculum/internal/tester"
)

func newTestService() *CurriculumService {
	return NewCurriculumService(
		store.NewGormStore(tester.TestDB()),
		cache.NewMemoryThumbnailCache(),
		compress.NewNop(),
	)
}

func TestCurriculumService_CreateFormation(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := newTestService()

	tests := []struct {
		name      string
		input     FormationInput
		wantGrade int
	}{
		{
			name:      "defaults applied",
			input:     FormationInput{Title: "Web Development"},
			wantGrade: 80,
		},
		{
			name: "explicit fields",
			input: FormationInput{
				Title:        "Data Engineering",
				Description:  "pipelines from scratch",
				CoverImage:   "https://cdn.example.com/cover.png",
				PassingGrade: 65,
			},
			wantGrade: 65,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formation, err := client.CreateFormation(context.TODO(), tt.input)
			require.NoError(t, err)
			require.NotNil(t, formation)

			assert.NotEmpty(t, formation.ID)
			assert.Equal(t, model.StatusDraft, formation.Status)
			assert.Equal(t, tt.wantGrade, formation.PassingGrade)

			got, err := client.GetFormation(context.TODO(), formation.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.input.Title, got.Title)
			assert.Equal(t, tt.input.Description, got.Description)
		})
	}
}

func TestCurriculumService_GetFormation_NotFound(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := newTestService()

	_, err := client.GetFormation(context.TODO(), uuid.New().String())
	assert.ErrorIs(t, err, ErrFormationNotFound)
}

func TestCurriculumService_UpdateFormation(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := newTestService()

	formation, err := client.CreateFormation(context.TODO(), FormationInput{Title: "Old title"})
	require.NoError(t, err)

	updated, err := client.UpdateFormation(context.TODO(), formation.ID, FormationInput{
		Title:        "New title",
		Description:  "now with a description",
		PassingGrade: 70,
	})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, 70, updated.PassingGrade)

	got, err := client.GetFormation(context.TODO(), formation.ID)
	require.NoError(t, err)
	assert.Equal(t, "New title", got.Title)
	assert.Equal(t, "now with a description", got.Description)
}

func TestCurriculumService_PublishFormation(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := newTestService()

	formation, err := client.CreateFormation(context.TODO(), FormationInput{Title: "Go from zero"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusDraft, formation.Status)

	require.NoError(t, client.PublishFormation(context.TODO(), formation.ID))

	got, err := client.GetFormation(context.TODO(), formation.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPublished, got.Status)

	require.NoError(t, client.UnpublishFormation(context.TODO(), formation.ID))

	got, err = client.GetFormation(context.TODO(), formation.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDraft, got.Status)
}

func TestCurriculumService_CreateModule(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := newTestService()

	formation, err := client.CreateFormation(context.TODO(), FormationInput{Title: "Backend path"})
	require.NoError(t, err)

	module, err := client.CreateModule(context.TODO(), formation.ID, ModuleInput{
		Title: "HTTP basics",
		Level: model.LevelIntermediate,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, module.Position)
	assert.Equal(t, model.StatusDraft, module.Status)
	assert.Equal(t, model.LevelIntermediate, module.Level)

	// level defaults to beginner
	second, err := client.CreateModule(context.TODO(), formation.ID, ModuleInput{Title: "Routing"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Position)
	assert.Equal(t, model.LevelBeginner, second.Level)

	_, err = client.CreateModule(context.TODO(), uuid.New().String(), ModuleInput{Title: "orphan"})
	assert.ErrorIs(t, err, ErrFormationNotFound)
}

func TestCurriculumService_CreateCourse(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := newTestService()

	formation, err := client.CreateFormation(context.TODO(), FormationInput{Title: "Backend path"})
	require.NoError(t, err)
	module, err := client.CreateModule(context.TODO(), formation.ID, ModuleInput{Title: "HTTP basics"})
	require.NoError(t, err)

	course, err := client.CreateCourse(context.TODO(), module.ID, CourseInput{
		Title:        "Requests and responses",
		Introduction: "what a request looks like",
		Objective:    "read a raw HTTP exchange",
		VideoURL:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, course.Position)
	assert.Empty(t, course.Content)

	_, err = client.CreateCourse(context.TODO(), uuid.New().String(), CourseInput{Title: "orphan"})
	assert.ErrorIs(t, err, ErrModuleNotFound)
}

func TestCurriculumService_ListModules(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := newTestService()

	formation, err := client.CreateFormation(context.TODO(), FormationInput{Title: "Backend path"})
	require.NoError(t, err)

	titles := []string{"Intro", "HTTP", "Databases"}
	for _, title := range titles {
		_, err = client.CreateModule(context.TODO(), formation.ID, ModuleInput{Title: title})
		require.NoError(t, err)
	}

	modules, err := client.ListModules(context.TODO(), formation.ID)
	require.NoError(t, err)
	require.Len(t, modules, 3)
	for i, module := range modules {
		assert.Equal(t, titles[i], module.Title)
		assert.Equal(t, i+1, module.Position)
	}

	_, err = client.ListModules(context.TODO(), uuid.New().String())
	assert.ErrorIs(t, err, ErrFormationNotFound)
}
