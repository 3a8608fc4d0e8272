package cmd

import (
	"context"
	"encoding/json"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openlearnhq/curriculum/internal/model"
	"github.com/openlearnhq/curriculum/internal/service"
)

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "course commands",
}

var resourceCmd = &cobra.Command{
	Use:   "resource",
	Short: "resource commands",
}

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "quiz commands",
}

func init() {
	rootCmd.AddCommand(courseCmd)
	courseCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	courseCmd.AddCommand(addCourseCmd())
	courseCmd.AddCommand(listCoursesCmd())
	courseCmd.AddCommand(setCourseContentCmd())
	courseCmd.AddCommand(courseThumbnailCmd())
	courseCmd.AddCommand(deleteCourseCmd())

	rootCmd.AddCommand(resourceCmd)
	resourceCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	resourceCmd.AddCommand(syncResourcesCmd())
	resourceCmd.AddCommand(listResourcesCmd())

	rootCmd.AddCommand(quizCmd)
	quizCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	quizCmd.AddCommand(setQuizCmd())
	quizCmd.AddCommand(getQuizCmd())
}

func addCourseCmd() *cobra.Command {
	var moduleID string
	var title string
	var introduction string
	var objective string
	var videoURL string

	var required = []string{"module-id", "title"}

	command := &cobra.Command{
		Use:     "add",
		Short:   "append a course to a module",
		Example: "curriculum course add -m <module-id> -t <title>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			course, err := newService().CreateCourse(context.Background(), moduleID, service.CourseInput{
				Title:        title,
				Introduction: introduction,
				Objective:    objective,
				VideoURL:     videoURL,
			})
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("course created with id: %s at position %d", course.ID, course.Position)
		},
	}

	command.Flags().StringVarP(&moduleID, "module-id", "m", "", "module id (required)")
	command.Flags().StringVarP(&title, "title", "t", "", "title of the course (required)")
	command.Flags().StringVarP(&introduction, "introduction", "i", "", "introduction text")
	command.Flags().StringVarP(&objective, "objective", "o", "", "learning objective")
	command.Flags().StringVarP(&videoURL, "video", "v", "", "video url")

	command.Flags().SortFlags = false

	return command
}

func listCoursesCmd() *cobra.Command {
	var moduleID string

	var required = []string{"module-id"}

	command := &cobra.Command{
		Use:     "list",
		Short:   "list the courses of a module",
		Example: "curriculum course list -m <module-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			courses, err := newService().ListCourses(context.Background(), moduleID)
			if err != nil {
				logrus.Error(err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Position", "ID", "Title", "Video"})
			for _, course := range courses {
				table.Append([]string{
					strconv.Itoa(course.Position),
					course.ID,
					course.Title,
					course.VideoURL,
				})
			}
			table.Render()
		},
	}

	command.Flags().StringVarP(&moduleID, "module-id", "m", "", "module id (required)")

	return command
}

func setCourseContentCmd() *cobra.Command {
	var courseID string
	var file string

	var required = []string{"course-id", "file"}

	command := &cobra.Command{
		Use:     "content",
		Short:   "store a course's document tree from a json file",
		Example: "curriculum course content -c <course-id> -F content.json",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			data, err := os.ReadFile(file)
			if err != nil {
				logrus.Error(err)
				return
			}

			if err := newService().UpdateCourseContent(context.Background(), courseID, string(data)); err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("content updated for course %s", courseID)
		},
	}

	command.Flags().StringVarP(&courseID, "course-id", "c", "", "course id (required)")
	command.Flags().StringVarP(&file, "file", "F", "", "path to the serialized document tree (required)")

	command.Flags().SortFlags = false

	return command
}

func courseThumbnailCmd() *cobra.Command {
	var courseID string

	var required = []string{"course-id"}

	command := &cobra.Command{
		Use:     "thumbnail",
		Short:   "print the first video thumbnail of a course's content",
		Example: "curriculum course thumbnail -c <course-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			url, err := newService().CourseThumbnail(context.Background(), courseID)
			if err != nil {
				logrus.Error(err)
				return
			}

			if url == "" {
				logrus.Info("no embedded video found")
				return
			}
			printField("Thumbnail", url)
		},
	}

	command.Flags().StringVarP(&courseID, "course-id", "c", "", "course id (required)")

	return command
}

func deleteCourseCmd() *cobra.Command {
	var courseID string

	var required = []string{"course-id"}

	command := &cobra.Command{
		Use:     "delete",
		Short:   "delete a course with its quiz and resources",
		Example: "curriculum course delete -c <course-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			if err := newService().DeleteCourse(context.Background(), courseID); err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("course %s deleted", courseID)
		},
	}

	command.Flags().StringVarP(&courseID, "course-id", "c", "", "course id (required)")

	return command
}

func syncResourcesCmd() *cobra.Command {
	var courseID string
	var file string

	var required = []string{"course-id", "file"}

	command := &cobra.Command{
		Use:     "sync",
		Short:   "replace a course's resources with the list from a json file",
		Example: "curriculum resource sync -c <course-id> -F resources.json",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			data, err := os.ReadFile(file)
			if err != nil {
				logrus.Error(err)
				return
			}

			var inputs []struct {
				Title       string `json:"title"`
				Kind        string `json:"kind"`
				URL         string `json:"url"`
				Description string `json:"description"`
			}
			if err := json.Unmarshal(data, &inputs); err != nil {
				logrus.Error(err)
				return
			}

			resources := make([]service.ResourceInput, 0, len(inputs))
			for _, in := range inputs {
				resources = append(resources, service.ResourceInput{
					Title:       in.Title,
					Kind:        model.ResourceKind(in.Kind),
					URL:         in.URL,
					Description: in.Description,
				})
			}

			if err := newService().SyncResources(context.Background(), courseID, resources); err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("synced %d resource(s) for course %s", len(resources), courseID)
		},
	}

	command.Flags().StringVarP(&courseID, "course-id", "c", "", "course id (required)")
	command.Flags().StringVarP(&file, "file", "F", "", "path to the resource list (required)")

	command.Flags().SortFlags = false

	return command
}

func listResourcesCmd() *cobra.Command {
	var courseID string

	var required = []string{"course-id"}

	command := &cobra.Command{
		Use:     "list",
		Short:   "list the resources of a course",
		Example: "curriculum resource list -c <course-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			resources, err := newService().ListResources(context.Background(), courseID)
			if err != nil {
				logrus.Error(err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"#", "Title", "Kind", "URL"})
			for _, resource := range resources {
				table.Append([]string{
					strconv.Itoa(resource.Ordinal),
					resource.Title,
					string(resource.Kind),
					resource.URL,
				})
			}
			table.Render()
		},
	}

	command.Flags().StringVarP(&courseID, "course-id", "c", "", "course id (required)")

	return command
}

func setQuizCmd() *cobra.Command {
	var courseID string
	var question string
	var options []string
	var answers []int

	var required = []string{"course-id", "question", "options"}

	command := &cobra.Command{
		Use:     "set",
		Short:   "create or update the quiz of a course",
		Example: `curriculum quiz set -c <course-id> -q "Which?" -o go -o run -a 0`,
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			quiz, err := newService().UpsertQuiz(context.Background(), courseID, service.QuizInput{
				Question: question,
				Options:  options,
				Answers:  answers,
			})
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("quiz %s saved for course %s", quiz.ID, courseID)
		},
	}

	command.Flags().StringVarP(&courseID, "course-id", "c", "", "course id (required)")
	command.Flags().StringVarP(&question, "question", "q", "", "quiz question (required)")
	command.Flags().StringArrayVarP(&options, "options", "o", nil, "answer options, repeatable (required)")
	command.Flags().IntSliceVarP(&answers, "answers", "a", nil, "indices of the correct options")

	command.Flags().SortFlags = false

	return command
}

func getQuizCmd() *cobra.Command {
	var courseID string

	var required = []string{"course-id"}

	command := &cobra.Command{
		Use:     "get",
		Short:   "print the quiz of a course",
		Example: "curriculum quiz get -c <course-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			quiz, err := newService().GetQuiz(context.Background(), courseID)
			if err != nil {
				logrus.Error(err)
				return
			}

			options, err := quiz.OptionList()
			if err != nil {
				logrus.Error(err)
				return
			}
			answers, err := quiz.AnswerList()
			if err != nil {
				logrus.Error(err)
				return
			}

			printField("Question", quiz.Question)
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"#", "Option", "Correct"})
			correct := make(map[int]bool, len(answers))
			for _, index := range answers {
				correct[index] = true
			}
			for i, option := range options {
				mark := ""
				if correct[i] {
					mark = "x"
				}
				table.Append([]string{strconv.Itoa(i), option, mark})
			}
			table.Render()
		},
	}

	command.Flags().StringVarP(&courseID, "course-id", "c", "", "course id (required)")

	return command
}
