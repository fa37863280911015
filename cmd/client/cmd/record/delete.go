package record

import (
	"github.com/spf13/cobra"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить запись",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := load(cmd)
		if err != nil {
			return err
		}
		return env.App.Delete(cmd.Context(), args[0])
	},
}
