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

var moduleCmd = &cobra.Command{
	Use:   "module",
	Short: "module commands",
}

func init() {
	rootCmd.AddCommand(moduleCmd)
	moduleCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	moduleCmd.AddCommand(addModuleCmd())
	moduleCmd.AddCommand(listModulesCmd())
	moduleCmd.AddCommand(reorderModulesCmd())
	moduleCmd.AddCommand(duplicateModuleCmd())
	moduleCmd.AddCommand(deleteModuleCmd())
}

func addModuleCmd() *cobra.Command {
	var formationID string
	var title string
	var description string
	var level string

	var required = []string{"formation-id", "title"}

	command := &cobra.Command{
		Use:     "add",
		Short:   "append a module to a formation",
		Example: "curriculum module add -f <formation-id> -t <title> -l ADVANCED",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			module, err := newService().CreateModule(context.Background(), formationID, service.ModuleInput{
				Title:       title,
				Description: description,
				Level:       model.Level(level),
			})
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("module created with id: %s at position %d", module.ID, module.Position)
		},
	}

	command.Flags().StringVarP(&formationID, "formation-id", "f", "", "formation id (required)")
	command.Flags().StringVarP(&title, "title", "t", "", "title of the module (required)")
	command.Flags().StringVarP(&description, "description", "d", "", "description of the module")
	command.Flags().StringVarP(&level, "level", "l", "", "difficulty level: BEGINNER, INTERMEDIATE or ADVANCED")

	command.Flags().SortFlags = false

	return command
}

func listModulesCmd() *cobra.Command {
	var formationID string

	var required = []string{"formation-id"}

	command := &cobra.Command{
		Use:     "list",
		Short:   "list the modules of a formation",
		Example: "curriculum module list -f <formation-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			modules, err := newService().ListModules(context.Background(), formationID)
			if err != nil {
				logrus.Error(err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Position", "ID", "Title", "Level", "Status"})
			for _, module := range modules {
				table.Append([]string{
					strconv.Itoa(module.Position),
					module.ID,
					module.Title,
					string(module.Level),
					string(module.Status),
				})
			}
			table.Render()
		},
	}

	command.Flags().StringVarP(&formationID, "formation-id", "f", "", "formation id (required)")

	return command
}

func reorderModulesCmd() *cobra.Command {
	var formationID string
	var ordering string

	var required = []string{"formation-id", "ordering"}

	command := &cobra.Command{
		Use:     "reorder",
		Short:   "apply a full target ordering to a formation's modules",
		Example: "curriculum module reorder -f <formation-id> -o <id>:1,<id>:2",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			assignments, err := parseOrdering(ordering)
			if err != nil {
				logrus.Error(err)
				return
			}

			if err := newService().ReorderModules(context.Background(), formationID, assignments); err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("reordered %d module(s)", len(assignments))
		},
	}

	command.Flags().StringVarP(&formationID, "formation-id", "f", "", "formation id (required)")
	command.Flags().StringVarP(&ordering, "ordering", "o", "", "comma separated <module-id>:<position> pairs (required)")

	command.Flags().SortFlags = false

	return command
}

func duplicateModuleCmd() *cobra.Command {
	var moduleID string

	var required = []string{"module-id"}

	command := &cobra.Command{
		Use:     "duplicate",
		Short:   "duplicate a module structure under the same formation",
		Example: "curriculum module duplicate -m <module-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			duplicate, err := newService().DuplicateModule(context.Background(), moduleID)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("module duplicated with id: %s at position %d", duplicate.ID, duplicate.Position)
			printField("Title", duplicate.Title)
			printField("Status", string(duplicate.Status))
		},
	}

	command.Flags().StringVarP(&moduleID, "module-id", "m", "", "module id (required)")

	return command
}

func deleteModuleCmd() *cobra.Command {
	var moduleID string

	var required = []string{"module-id"}

	command := &cobra.Command{
		Use:     "delete",
		Short:   "delete a module",
		Example: "curriculum module delete -m <module-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			err := newService().DeleteModule(context.Background(), moduleID)

			var denied *service.DeniedError
			if errors.As(err, &denied) {
				color.Red("cannot delete: module still contains %d course(s)", denied.Count)
				return
			}
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("module %s deleted", moduleID)
		},
	}

	command.Flags().StringVarP(&moduleID, "module-id", "m", "", "module id (required)")

	return command
}
