package userstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"recruit-flow-backend/models"
	userapimodels "recruit-flow-backend/models/api/user"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (userID string, err error)
	GetByID(userID string) (*dbmodels.User, error)
	FindByEmail(email string) (*dbmodels.User, error)
	Update(userID string, updMap map[string]interface{}) error
	Delete(userID string) error
	List(filter userapimodels.UserFilter) ([]dbmodels.User, int64, error)
	ListByRole(role models.UserRole) ([]dbmodels.User, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (userID string, err error) {
	if rec.Email == "" {
		return "", errors.New("email не указан")
	}
	existedRec, err := i.FindByEmail(rec.Email)
	if err != nil {
		return "", err
	}
	if existedRec != nil {
		return "", errors.New("пользователь с указанным email уже существует")
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(userID string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where("id = ?", userID).
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

func (i impl) FindByEmail(email string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where("email = ?", email).
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

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	email, ok := updMap["email"]
	if ok {
		existedRec, err := i.FindByEmail(email.(string))
		if err != nil {
			return err
		}
		if existedRec != nil && existedRec.ID != userID {
			return errors.New("пользователь с указанным email уже существует")
		}
	}
	tx := i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", userID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("пользователь не найден")
	}
	return nil
}

func (i impl) Delete(userID string) error {
	return i.db.
		Where("id = ?", userID).
		Delete(&dbmodels.User{}).
		Error
}

func (i impl) List(filter userapimodels.UserFilter) ([]dbmodels.User, int64, error) {
	list := []dbmodels.User{}
	tx := i.db.Model(&dbmodels.User{})
	if filter.Role != "" {
		tx = tx.Where("role = ?", filter.Role)
	}
	if filter.Department != "" {
		tx = tx.Where("department = ?", filter.Department)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		tx = tx.Where("first_name ilike ? or last_name ilike ? or email ilike ?", search, search, search)
	}
	var rowCount int64
	err := tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListByRole(role models.UserRole) ([]dbmodels.User, error) {
	list := []dbmodels.User{}
	err := i.db.
		Where("role = ?", role).
		Where("is_active = true").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
