package cmd

import (
	"bomkeeper/cmd/client/cmd/intent"
	"bomkeeper/cmd/client/cmd/record"
	"bomkeeper/cmd/client/cmd/sync"
)

func init() {
	// Команды работы с записями
	rootCmd.AddCommand(record.RecordCmd)
	record.RecordCmd.AddCommand(record.ListCmd)
	record.RecordCmd.AddCommand(record.GetCmd)
	record.RecordCmd.AddCommand(record.CreateCmd)
	record.RecordCmd.AddCommand(record.UpdateCmd)
	record.RecordCmd.AddCommand(record.DeleteCmd)
	record.RecordCmd.AddCommand(record.StatsCmd)
	record.RecordCmd.AddCommand(record.SKUsCmd)

	// Заявка на закупку
	rootCmd.AddCommand(intent.IntentCmd)
	intent.IntentCmd.AddCommand(intent.GenerateCmd)

	rootCmd.AddCommand(sync.SyncCmd)
}
