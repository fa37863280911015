package sync

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"bomkeeper/cmd/client/cmd/cmdutil"
)

var SyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Перезагрузить данные из таблицы",
	Long: `Полная перезагрузка каталога из SheetDB.

Выводит количество загруженных записей, число категорий и сумму
ориентировочных цен.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := cmdutil.FromCommand(cmd)
		if err != nil {
			return err
		}

		start := time.Now()
		if _, err := env.App.LoadAll(cmd.Context()); err != nil {
			return fmt.Errorf("ошибка синхронизации: %w", err)
		}
		duration := time.Since(start)

		stats := env.App.Stats()
		if env.JSON {
			return cmdutil.PrintJSON(os.Stdout, stats)
		}

		fmt.Printf("Время выполнения: %v\n", duration.Round(time.Millisecond))
		fmt.Printf("Записей: %d\n", stats.Records)
		fmt.Printf("Категорий: %d\n", stats.Categories)
		fmt.Printf("Сумма цен: ₹%s\n", stats.TotalPrice.StringFixed(2))
		return nil
	},
}
