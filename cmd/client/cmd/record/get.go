package record

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bomkeeper/cmd/client/cmd/cmdutil"
	"bomkeeper/internal/domain/bom"
)

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Показать запись",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := load(cmd)
		if err != nil {
			return err
		}

		rec, ok := env.App.Record(args[0])
		if !ok {
			return fmt.Errorf("%w: %s", bom.ErrNotFound, args[0])
		}

		if env.JSON {
			return cmdutil.PrintJSON(os.Stdout, rec)
		}
		printRecord(rec)
		return nil
	},
}
