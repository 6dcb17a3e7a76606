package notificationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	GetByID(userID, id string) (*dbmodels.Notification, error)
	List(userID string, limit int) ([]dbmodels.Notification, error)
	ListUnread(userID string) ([]dbmodels.Notification, error)
	UnreadCount(userID string) (int64, error)
	MarkRead(userID, id string) error
	MarkAllRead(userID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(userID, id string) (*dbmodels.Notification, error) {
	rec := dbmodels.Notification{}
	err := i.db.
		Where("id = ?", id).
		Where("user_id = ?", userID).
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

func (i impl) List(userID string, limit int) ([]dbmodels.Notification, error) {
	list := []dbmodels.Notification{}
	tx := i.db.
		Where("user_id = ?", userID).
		Order("created_at desc")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	err := tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListUnread(userID string) ([]dbmodels.Notification, error) {
	list := []dbmodels.Notification{}
	err := i.db.
		Where("user_id = ?", userID).
		Where("is_read = false").
		Order("created_at asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UnreadCount(userID string) (int64, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("is_read = false").
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) MarkRead(userID, id string) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Update("is_read", true).
		Error
}

func (i impl) MarkAllRead(userID string) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("is_read = false").
		Update("is_read", true).
		Error
}
