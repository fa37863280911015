package intent

import (
	"github.com/spf13/cobra"
)

// IntentCmd - родительская команда для заявок на закупку
var IntentCmd = &cobra.Command{
	Use:   "intent",
	Short: "Заявки на закупку",
	Long:  `Формирование печатной заявки (RAW MATERIAL INDIAN NOTE) по выбранным записям.`,
}
