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

func newCourse(t *testing.T, client *CurriculumService) *model.Course {
	t.Helper()

	formation, err := client.CreateFormation(context.TODO(), FormationInput{Title: "Sync"})
	require.NoError(t, err)
	module, err := client.CreateModule(context.TODO(), formation.ID, ModuleInput{Title: "Owner"})
	require.NoError(t, err)
	course, err := client.CreateCourse(context.TODO(), module.ID, CourseInput{Title: "Target"})
	require.NoError(t, err)

	return course
}

func TestCurriculumService_SyncResources_FullReplace(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := newTestService()
	course := newCourse(t, client)

	initial := []ResourceInput{
		{Title: "Slides", Kind: model.ResourceDocument, URL: "https://example.com/slides.pdf"},
		{Title: "Walkthrough", Kind: model.ResourceVideo, URL: "https://youtu.be/f6kdp27TYZs", Description: "screen recording"},
	}
	require.NoError(t, client.SyncResources(context.TODO(), course.ID, initial))

	stored, err := client.ListResources(context.TODO(), course.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "Slides", stored[0].Title)
	assert.Equal(t, model.ResourceDocument, stored[0].Kind)
	assert.Equal(t, "Walkthrough", stored[1].Title)
	assert.Equal(t, "screen recording", stored[1].Description)

	replacement := []ResourceInput{
		{Title: "Cheat sheet", Kind: model.ResourceLink, URL: "https://example.com/cheatsheet"},
	}
	require.NoError(t, client.SyncResources(context.TODO(), course.ID, replacement))

	stored, err = client.ListResources(context.TODO(), course.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Cheat sheet", stored[0].Title)
}

func TestCurriculumService_SyncResources_Idempotent(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := newTestService()
	course := newCourse(t, client)

	list := []ResourceInput{
		{Title: "Slides", Kind: model.ResourceDocument, URL: "https://example.com/slides.pdf"},
		{Title: "Repo", Kind: model.ResourceLink, URL: "https://github.com/example/demo"},
	}

	require.NoError(t, client.SyncResources(context.TODO(), course.ID, list))
	require.NoError(t, client.SyncResources(context.TODO(), course.ID, list))

	stored, err := client.ListResources(context.TODO(), course.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2, "repeating a sync must not duplicate resources")
	assert.Equal(t, "Slides", stored[0].Title)
	assert.Equal(t, "Repo", stored[1].Title)
}

func TestCurriculumService_SyncResources_EmptyListClears(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := newTestService()
	course := newCourse(t, client)

	require.NoError(t, client.SyncResources(context.TODO(), course.ID, []ResourceInput{
		{Title: "Slides", URL: "https://example.com/slides.pdf"},
	}))

	require.NoError(t, client.SyncResources(context.TODO(), course.ID, nil))

	stored, err := client.ListResources(context.TODO(), course.ID)
	require.NoError(t, err)
	assert.Empty(t, stored, "an empty sync clears the set, it is not a no-op")
}

func TestCurriculumService_SyncResources_ScopedToCourse(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := newTestService()
	first := newCourse(t, client)
	second := newCourse(t, client)

	require.NoError(t, client.SyncResources(context.TODO(), first.ID, []ResourceInput{
		{Title: "First's resource", URL: "https://example.com/a"},
	}))
	require.NoError(t, client.SyncResources(context.TODO(), second.ID, []ResourceInput{
		{Title: "Second's resource", URL: "https://example.com/b"},
	}))

	require.NoError(t, client.SyncResources(context.TODO(), first.ID, nil))

	stored, err := client.ListResources(context.TODO(), second.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1, "a sync must never leak into another course")
	assert.Equal(t, "Second's resource", stored[0].Title)
}

func TestCurriculumService_SyncResources_CourseNotFound(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := newTestService()

	err := client.SyncResources(context.TODO(), uuid.New().String(), nil)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCurriculumService_Sync_AfterDeleteLeavesNoOrphans(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := newTestService()
	course := newCourse(t, client)

	require.NoError(t, client.DeleteCourse(context.TODO(), course.ID))

	// both sync operations re-verify the course inside their transaction,
	// so a deleted course can never accumulate resource or quiz rows
	err := client.SyncResources(context.TODO(), course.ID, []ResourceInput{
		{Title: "Orphan candidate", URL: "https://example.com/orphan"},
	})
	assert.ErrorIs(t, err, ErrCourseNotFound)

	_, err = client.UpsertQuiz(context.TODO(), course.ID, QuizInput{Question: "?"})
	assert.ErrorIs(t, err, ErrCourseNotFound)

	var count int64
	require.NoError(t, tester.TestDB().Model(&model.Resource{}).Where("course_id = ?", course.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, tester.TestDB().Model(&model.Quiz{}).Where("course_id = ?", course.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCurriculumService_UpsertQuiz(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := newTestService()
	course := newCourse(t, client)

	quiz, err := client.UpsertQuiz(context.TODO(), course.ID, QuizInput{
		Question: "Which keyword starts a goroutine?",
		Options:  []string{"go", "run", "spawn"},
		Answers:  []int{0},
	})
	require.NoError(t, err)
	require.NotNil(t, quiz)

	options, err := quiz.OptionList()
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "run", "spawn"}, options)

	updated, err := client.UpsertQuiz(context.TODO(), course.ID, QuizInput{
		Question: "Which keywords are control flow?",
		Options:  []string{"if", "for", "func"},
		Answers:  []int{1, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, quiz.ID, updated.ID, "the second call updates in place")

	var count int64
	require.NoError(t, tester.TestDB().Model(&model.Quiz{}).Where("course_id = ?", course.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count, "a course never has more than one quiz")

	got, err := client.GetQuiz(context.TODO(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Which keywords are control flow?", got.Question)

	answers, err := got.AnswerList()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, answers)
}

func TestCurriculumService_UpsertQuiz_NormalizesAnswers(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := newTestService()
	course := newCourse(t, client)

	quiz, err := client.UpsertQuiz(context.TODO(), course.ID, QuizInput{
		Question: "Pick the even numbers",
		Options:  []string{"1", "2", "3", "4"},
		Answers:  []int{3, 1, 3, 1},
	})
	require.NoError(t, err)

	answers, err := quiz.AnswerList()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, answers, "duplicate indices collapse into a set")
}

func TestCurriculumService_UpsertQuiz_CourseNotFound(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := newTestService()

	_, err := client.UpsertQuiz(context.TODO(), uuid.New().String(), QuizInput{Question: "?"})
	assert.ErrorIs(t, err, ErrCourseNotFound)
}
