package initializers

import (
	"context"
	s3client "recruit-flow-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	err := s3client.Connect(ctx)
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}
	log.Info("S3 клиент успешно инициализирован")
}
