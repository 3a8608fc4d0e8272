package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "curriculum",
	Short: "curriculum management tool",
	Example: `curriculum formation create -t <title>
curriculum formation list
curriculum module add -f <formation-id> -t <title>
curriculum module duplicate -m <module-id>
curriculum module reorder -f <formation-id> -o <id:pos,id:pos,...>
curriculum course add -m <module-id> -t <title>
curriculum course content -c <course-id> -F <file>
curriculum course thumbnail -c <course-id>
curriculum resource sync -c <course-id> -F <file>
curriculum quiz set -c <course-id> -q <question> -o <options> -a <answers>`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(dbCmd)
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	cobra.EnableCommandSorting = false
}
