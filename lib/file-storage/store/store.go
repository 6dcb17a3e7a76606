package filestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.FileStorage) (fileID string, err error)
	GetByID(fileID string) (*dbmodels.FileStorage, error)
	FindByOwner(ownerID string, fileType dbmodels.FileType) (*dbmodels.FileStorage, error)
	ListByOwner(ownerID string) ([]dbmodels.FileStorage, error)
	Delete(fileID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.FileStorage) (fileID string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(fileID string) (*dbmodels.FileStorage, error) {
	rec := dbmodels.FileStorage{}
	err := i.db.
		Where("id = ?", fileID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) FindByOwner(ownerID string, fileType dbmodels.FileType) (*dbmodels.FileStorage, error) {
	rec := dbmodels.FileStorage{}
	err := i.db.
		Where("owner_id = ?", ownerID).
		Where("type = ?", fileType).
		Order("created_at desc").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByOwner(ownerID string) ([]dbmodels.FileStorage, error) {
	list := []dbmodels.FileStorage{}
	err := i.db.
		Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(fileID string) error {
	return i.db.
		Where("id = ?", fileID).
		Delete(&dbmodels.FileStorage{}).
		Error
}
