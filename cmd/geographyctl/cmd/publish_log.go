package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geography-microservice/internal/domain"
	"github.com/geography-microservice/internal/repository/cache"
	redisRepo "github.com/geography-microservice/internal/repository/redis"
)

var (
	publishPath     string
	publishUsername string
	publishStatus   int
)

// publishLogCmd публикует тестовую запись журнала запросов в стрим (проверка воркера)
var publishLogCmd = &cobra.Command{
	Use:   "publish-log",
	Short: "Опубликовать тестовую запись журнала запросов в Redis Stream",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer redisClient.Close()

		now := time.Now().UTC()
		entry := &domain.APILog{
			RequestID:  uuid.NewString(),
			Method:     http.MethodPost,
			Path:       publishPath,
			Username:   publishUsername,
			StatusCode: publishStatus,
			Success:    publishStatus < http.StatusBadRequest,
			DateStart:  now,
			DateEnd:    now,
		}

		streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), cfg.Worker.StreamReadTimeout, log)
		if err := streamRepo.PublishToStream(cmd.Context(), domain.StreamAPILogs, entry); err != nil {
			return err
		}

		log.Info("API log published",
			zap.String("stream", domain.StreamAPILogs),
			zap.String("request_id", entry.RequestID))
		return nil
	},
}

func init() {
	publishLogCmd.Flags().StringVar(&publishPath, "path", "/geography_objects_coordinates/upgrade", "путь запроса")
	publishLogCmd.Flags().StringVar(&publishUsername, "username", "geographyctl", "логин пользователя")
	publishLogCmd.Flags().IntVar(&publishStatus, "status", http.StatusOK, "код ответа")
	rootCmd.AddCommand(publishLogCmd)
}
