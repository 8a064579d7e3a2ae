package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"delve-server/internal/engine"
	"delve-server/internal/infrastructure/storage"
	"delve-server/internal/server"
	"delve-server/internal/version"
	"delve-server/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagSeed     int64
	flagAddr     string
	flagSave     string
	flagResume   bool
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "delve-server",
	Short: "Пошаговый данжен-кроулер поверх WebSocket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Показать информацию о сборке",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "путь к файлу конфигурации (yaml)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "мастер-зерно мира (0 - случайное)")
	rootCmd.Flags().StringVar(&flagAddr, "addr", "", "адрес HTTP сервера (перекрывает конфиг)")
	rootCmd.Flags().StringVar(&flagSave, "save", "", "путь к файлу сохранения (перекрывает конфиг)")
	rootCmd.Flags().BoolVar(&flagResume, "resume", false, "продолжить забег из файла сохранения")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "уровень логирования (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
}

func run() error {
	logger.Init(flagLogLevel)

	logger.Log.Info("Starting Delve...")
	logger.Log.Info(version.String())

	// 1. Конфигурация: файл + окружение, флаги поверх.
	cfg, err := engine.LoadConfig(flagConfig)
	if err != nil {
		return err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
		logger.Log.Infof("Using explicit master seed: %d", cfg.Seed)
	} else {
		logger.Log.Infof("Using random master seed: %d", cfg.Seed)
	}
	if flagAddr != "" {
		cfg.ListenAddr = flagAddr
	}
	if flagSave != "" {
		cfg.SavePath = flagSave
	}

	saves := storage.NewSaveService(cfg.SavePath)

	// 2. Инициализация движка: новый забег или восстановление.
	var eng *engine.Engine
	if flagResume {
		snap, err := saves.Load()
		if err != nil {
			return fmt.Errorf("load save: %w", err)
		}
		eng, err = engine.RestoreEngine(cfg, snap)
		if err != nil {
			return fmt.Errorf("restore engine: %w", err)
		}
	} else {
		eng, err = engine.NewEngine(cfg)
		if err != nil {
			return fmt.Errorf("init engine: %w", err)
		}
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(eng, cfg.ListenAddr)
	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	if err := saves.Save(eng.MakeSnapshot()); err != nil {
		logger.Log.WithError(err).Error("Failed to save run.")
	} else {
		logger.Log.Infof("Run saved to %s.", cfg.SavePath)
	}

	logger.Log.Info("Done.")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
