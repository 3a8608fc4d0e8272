package cmd

import (
	"context"
	"errors"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openlearnhq/curriculum/internal/model"
	"github.com/openlearnhq/curriculum/internal/service"
)

var formationCmd = &cobra.Command{
	Use:   "formation",
	Short: "formation commands",
}

func init() {
	rootCmd.AddCommand(formationCmd)
	formationCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	formationCmd.AddCommand(createFormationCmd())
	formationCmd.AddCommand(listFormationsCmd())
	formationCmd.AddCommand(publishFormationCmd())
	formationCmd.AddCommand(deleteFormationCmd())
}

func createFormationCmd() *cobra.Command {
	var title string
	var description string
	var coverImage string
	var passingGrade int

	var required = []string{"title"}

	command := &cobra.Command{
		Use:     "create",
		Short:   "create a formation",
		Example: "curriculum formation create -t <title> -d <description> -g <passing-grade>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			formation, err := newService().CreateFormation(context.Background(), service.FormationInput{
				Title:        title,
				Description:  description,
				CoverImage:   coverImage,
				PassingGrade: passingGrade,
			})
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("formation created with id: %s", formation.ID)
		},
	}

	command.Flags().StringVarP(&title, "title", "t", "", "title of the formation (required)")
	command.Flags().StringVarP(&description, "description", "d", "", "description of the formation")
	command.Flags().StringVarP(&coverImage, "cover", "i", "", "cover image url")
	command.Flags().IntVarP(&passingGrade, "passing-grade", "g", 0, "passing grade threshold")

	command.Flags().SortFlags = false

	return command
}

func listFormationsCmd() *cobra.Command {
	command := &cobra.Command{
		Use:     "list",
		Short:   "list formations",
		Example: "curriculum formation list",
		Run: func(cmd *cobra.Command, args []string) {
			formations, err := newService().ListFormations(context.Background())
			if err != nil {
				logrus.Error(err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Title", "Status", "Passing Grade"})
			for _, formation := range formations {
				table.Append([]string{
					formation.ID,
					formation.Title,
					string(formation.Status),
					strconv.Itoa(formation.PassingGrade),
				})
			}
			table.Render()
		},
	}

	return command
}

func publishFormationCmd() *cobra.Command {
	var formationID string
	var unpublish bool

	var required = []string{"formation-id"}

	command := &cobra.Command{
		Use:     "publish",
		Short:   "publish or unpublish a formation",
		Example: "curriculum formation publish -f <formation-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			client := newService()
			var err error
			if unpublish {
				err = client.UnpublishFormation(context.Background(), formationID)
			} else {
				err = client.PublishFormation(context.Background(), formationID)
			}
			if err != nil {
				logrus.Error(err)
				return
			}

			status := model.StatusPublished
			if unpublish {
				status = model.StatusDraft
			}
			logrus.Infof("formation %s is now %s", formationID, status)
		},
	}

	command.Flags().StringVarP(&formationID, "formation-id", "f", "", "formation id (required)")
	command.Flags().BoolVarP(&unpublish, "undo", "u", false, "flip back to draft")

	command.Flags().SortFlags = false

	return command
}

func deleteFormationCmd() *cobra.Command {
	var formationID string

	var required = []string{"formation-id"}

	command := &cobra.Command{
		Use:     "delete",
		Short:   "delete a formation",
		Example: "curriculum formation delete -f <formation-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			err := newService().DeleteFormation(context.Background(), formationID)

			var denied *service.DeniedError
			if errors.As(err, &denied) {
				color.Red("cannot delete: formation still contains %d course(s)", denied.Count)
				return
			}
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("formation %s deleted", formationID)
		},
	}

	command.Flags().StringVarP(&formationID, "formation-id", "f", "", "formation id (required)")

	return command
}
