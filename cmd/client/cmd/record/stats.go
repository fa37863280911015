package record

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bomkeeper/cmd/client/cmd/cmdutil"
)

var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Сводка по каталогу",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := load(cmd)
		if err != nil {
			return err
		}

		stats := env.App.Stats()
		if env.JSON {
			return cmdutil.PrintJSON(os.Stdout, stats)
		}

		fmt.Printf("Records:     %d\n", stats.Records)
		fmt.Printf("Categories:  %d\n", stats.Categories)
		fmt.Printf("Total price: ₹%s\n", stats.TotalPrice.StringFixed(2))
		return nil
	},
}

var SKUsCmd = &cobra.Command{
	Use:   "skus",
	Short: "Список SKU для выбора при создании",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := load(cmd)
		if err != nil {
			return err
		}

		skus := env.App.SKUs()
		if env.JSON {
			return cmdutil.PrintJSON(os.Stdout, skus)
		}
		for _, s := range skus {
			fmt.Println(s)
		}
		return nil
	},
}
