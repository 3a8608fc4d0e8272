package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlearnhq/curriculum/internal/model"
	"github.com/openlearnhq/curriculum/internal/tester"
)

func TestCurriculumService_DuplicateModule(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := newTestService()

	formation, err := client.CreateFormation(context.TODO(), FormationInput{Title: "Source"})
	require.NoError(t, err)

	source, err := client.CreateModule(context.TODO(), formation.ID, ModuleInput{
		Title:       "Concurrency",
		Description: "goroutines and channels",
		Level:       model.LevelAdvanced,
	})
	require.NoError(t, err)
	require.NoError(t, client.PublishModule(context.TODO(), source.ID))

	first, err := client.CreateCourse(context.TODO(), source.ID, CourseInput{
		Title:        "Goroutines",
		Introduction: "lightweight threads",
		Objective:    "spawn and wait",
		VideoURL:     "https://youtu.be/f6kdp27TYZs",
	})
	require.NoError(t, err)
	second, err := client.CreateCourse(context.TODO(), source.ID, CourseInput{Title: "Channels"})
	require.NoError(t, err)

	// content, quiz and resources on a source course must not travel
	require.NoError(t, client.UpdateCourseContent(context.TODO(), first.ID, `{"type":"doc"}`))
	_, err = client.UpsertQuiz(context.TODO(), first.ID, QuizInput{Question: "q", Options: []string{"a"}, Answers: []int{0}})
	require.NoError(t, err)
	require.NoError(t, client.SyncResources(context.TODO(), first.ID, []ResourceInput{
		{Title: "Effective Go", URL: "https://go.dev/doc/effective_go"},
	}))

	duplicate, err := client.DuplicateModule(context.TODO(), source.ID)
	require.NoError(t, err)
	require.NotNil(t, duplicate)

	assert.Equal(t, "Concurrency (copy)", duplicate.Title)
	assert.Equal(t, "goroutines and channels", duplicate.Description)
	assert.Equal(t, model.LevelAdvanced, duplicate.Level)
	assert.Equal(t, model.StatusDraft, duplicate.Status, "a duplicate is always a draft")
	assert.Equal(t, source.Position+1, duplicate.Position)
	assert.Equal(t, formation.ID, duplicate.FormationID)

	courses, err := client.ListCourses(context.TODO(), duplicate.ID)
	require.NoError(t, err)
	require.Len(t, courses, 2)

	assert.Equal(t, "Goroutines", courses[0].Title)
	assert.Equal(t, "lightweight threads", courses[0].Introduction)
	assert.Equal(t, "spawn and wait", courses[0].Objective)
	assert.Equal(t, "https://youtu.be/f6kdp27TYZs", courses[0].VideoURL)
	assert.Equal(t, first.Position, courses[0].Position, "positions are carried over verbatim")
	assert.Equal(t, "Channels", courses[1].Title)
	assert.Equal(t, second.Position, courses[1].Position)

	for _, course := range courses {
		assert.NotEqual(t, first.ID, course.ID)
		assert.NotEqual(t, second.ID, course.ID)
		assert.Empty(t, course.Content)

		_, err = client.GetQuiz(context.TODO(), course.ID)
		assert.ErrorIs(t, err, ErrQuizNotFound)

		resources, err := client.ListResources(context.TODO(), course.ID)
		require.NoError(t, err)
		assert.Empty(t, resources)
	}
}

func TestCurriculumService_DuplicateModule_NotFound(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := newTestService()

	_, err := client.DuplicateModule(context.TODO(), uuid.New().String())
	assert.ErrorIs(t, err, ErrModuleNotFound)
}

func TestCurriculumService_DuplicateModule_DeletedSource(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := newTestService()

	formation, err := client.CreateFormation(context.TODO(), FormationInput{Title: "Source"})
	require.NoError(t, err)
	module, err := client.CreateModule(context.TODO(), formation.ID, ModuleInput{Title: "Gone"})
	require.NoError(t, err)

	require.NoError(t, client.DeleteModule(context.TODO(), module.ID))

	// the source is re-read inside the transaction, so a deleted module
	// never leaves a copy behind
	_, err = client.DuplicateModule(context.TODO(), module.ID)
	assert.ErrorIs(t, err, ErrModuleNotFound)

	modules, err := client.ListModules(context.TODO(), formation.ID)
	require.NoError(t, err)
	assert.Empty(t, modules)
}
