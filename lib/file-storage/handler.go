package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"recruit-flow-backend/config"
	"recruit-flow-backend/db"
	filestore "recruit-flow-backend/lib/file-storage/store"
	"recruit-flow-backend/lib/utils/apperrs"
	dbmodels "recruit-flow-backend/models/db"
	s3client "recruit-flow-backend/s3"
)

var Instance Provider

type Provider interface {
	UploadFile(ctx context.Context, fileType dbmodels.FileType, ownerID, fileName, contentType string, body []byte) (fileID string, err error)
	GetFile(ctx context.Context, fileID string) (rec *dbmodels.FileStorage, body []byte, err error)
	FindByOwner(ctx context.Context, ownerID string, fileType dbmodels.FileType) (rec *dbmodels.FileStorage, body []byte, err error)
}

func NewHandler() {
	Instance = &impl{
		store:     filestore.NewInstance(db.DB),
		putObject: s3Put,
	}
}

type impl struct {
	store     filestore.Provider
	putObject func(ctx context.Context, objectName, contentType string, body []byte) error
}

func s3Put(ctx context.Context, objectName, contentType string, body []byte) error {
	_, err := s3client.Client.PutObject(ctx, config.Conf.S3.BucketName, objectName,
		bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{ContentType: contentType})
	return err
}

func (i impl) UploadFile(ctx context.Context, fileType dbmodels.FileType, ownerID, fileName, contentType string, body []byte) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	// ИД задаем заранее, ключ объекта в хранилище известен до записи в БД
	rec := dbmodels.FileStorage{
		BaseModel:   dbmodels.BaseModel{ID: uuid.New().String()},
		Name:        fileName,
		OwnerID:     ownerID,
		Type:        fileType,
		ContentType: contentType,
	}
	fileID, err := i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения данных файла")
	}
	err = i.putObject(ctx, objectName(fileID), contentType, body)
	if err != nil {
		// запись о файле без объекта в хранилище не оставляем
		if delErr := i.store.Delete(fileID); delErr != nil {
			log.WithField("file_id", fileID).WithError(delErr).Error("ошибка удаления данных незагруженного файла")
		}
		return "", errors.Wrap(err, "ошибка загрузки файла в хранилище")
	}
	return fileID, nil
}

func (i impl) GetFile(ctx context.Context, fileID string) (*dbmodels.FileStorage, []byte, error) {
	rec, err := i.store.GetByID(fileID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения данных файла")
	}
	if rec == nil {
		return nil, nil, apperrs.NotFound("файл не найден")
	}
	body, err := i.download(ctx, rec.ID)
	if err != nil {
		return nil, nil, err
	}
	return rec, body, nil
}

func (i impl) FindByOwner(ctx context.Context, ownerID string, fileType dbmodels.FileType) (*dbmodels.FileStorage, []byte, error) {
	rec, err := i.store.FindByOwner(ownerID, fileType)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения данных файла")
	}
	if rec == nil {
		return nil, nil, apperrs.NotFound("файл не найден")
	}
	body, err := i.download(ctx, rec.ID)
	if err != nil {
		return nil, nil, err
	}
	return rec, body, nil
}

func (i impl) download(ctx context.Context, fileID string) ([]byte, error) {
	obj, err := s3client.Client.GetObject(ctx, config.Conf.S3.BucketName, objectName(fileID), minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения файла из хранилища")
	}
	defer obj.Close()
	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла из хранилища")
	}
	return body, nil
}

func objectName(fileID string) string {
	return fmt.Sprintf("files/%s", fileID)
}
