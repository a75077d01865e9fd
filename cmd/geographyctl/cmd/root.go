package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geography-microservice/internal/config"
	"github.com/geography-microservice/internal/pkg/logger"
)

// rootCmd - корневая команда утилиты обслуживания сервиса
var rootCmd = &cobra.Command{
	Use:   "geographyctl",
	Short: "Утилита обслуживания geography microservice",
	Long:  `geographyctl применяет миграции схемы и публикует тестовые записи журнала запросов.`,
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

// setup загружает конфигурацию из .env и окружения и создает логгер
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, "geographyctl")
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}
