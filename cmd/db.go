package cmd

import (
	"github.com/spf13/cobra"

	"github.com/openlearnhq/curriculum/internal/config"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "db commands",
}

func init() {
	dbCmd.AddCommand(Migrate())
}

func Migrate() *cobra.Command {
	command := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database",
		Run: func(cmd *cobra.Command, args []string) {
			st := config.GetStore(config.LoadConfig())
			err := st.Migrate()
			if err != nil {
				panic(err)
			}
		},
	}

	return command
}
