package record

import (
	"os"

	"github.com/spf13/cobra"

	"bomkeeper/cmd/client/cmd/cmdutil"
	"bomkeeper/internal/domain/form"
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Изменить запись",
	Long: `Изменение существующей записи. Незаданные флаги сохраняют текущие
значения. Если указан хотя бы один --vendor, список поставщиков
заменяется целиком.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := load(cmd)
		if err != nil {
			return err
		}

		ed := form.NewEditor(env.Confirm)
		if err := env.App.BeginEdit(ed, args[0]); err != nil {
			return err
		}

		applyProductFlags(cmd.Flags(), ed)
		if cmd.Flags().Changed("vendor") {
			ed.Vendors.Reset()
			if err := addVendors(ed, vendors); err != nil {
				return err
			}
		}

		rec, err := env.App.Save(cmd.Context(), ed)
		if err != nil {
			return err
		}

		if env.JSON {
			return cmdutil.PrintJSON(os.Stdout, rec)
		}
		return nil
	},
}

func init() {
	addProductFlags(UpdateCmd)
}
