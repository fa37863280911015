package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"bomkeeper/cmd/client/cmd/cmdutil"
	"bomkeeper/internal/app/client"
	"bomkeeper/internal/app/client/config"
	"bomkeeper/internal/domain/bom"
	"bomkeeper/internal/utils/logger"
)

var (
	cfgFile    string
	cfg        *config.Config
	log        *slog.Logger
	app        *client.App
	debug      bool
	jsonOutput bool
	serverURL  string
	assumeYes  bool
)

var rootCmd = &cobra.Command{
	Use:   "bomkeeper",
	Short: "bomkeeper - клиент каталога BOM в SheetDB",
	Long: `bomkeeper - клиент для ведения каталога компонентов (Bill of Materials),
хранящегося в таблице SheetDB.

Позволяет просматривать, искать и сортировать записи, создавать и изменять
их вместе со списком поставщиков, удалять записи и формировать печатную
заявку на закупку (intent) по выбранным позициям.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: shutdownApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, bom.ErrNotConfirmed) {
			fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		}
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.SheetURL = serverURL
	}
	if assumeYes {
		cfg.AssumeYes = true
	}

	env := cfg.Env
	if debug {
		env = "local"
	}
	log = logger.NewWithWriter(env, os.Stderr)

	confirm := client.NewTerminalConfirmer(cfg.AssumeYes)

	app, err = client.New(cfg, log, confirm, cmdutil.PrintStatus)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(cmdutil.WithEnv(cmd.Context(), &cmdutil.Env{
		App:     app,
		Config:  cfg,
		Confirm: confirm,
		JSON:    jsonOutput,
	}))

	return nil
}

// shutdownApp дожидается отложенной перезагрузки после изменений
func shutdownApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	app.Settle()
	app.Close()
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(home + "/.bomkeeper")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "URL таблицы SheetDB")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "отвечать да на все подтверждения")
}
