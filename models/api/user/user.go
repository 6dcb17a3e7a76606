package userapimodels

import (
	"github.com/pkg/errors"

	"recruit-flow-backend/models"
	apimodels "recruit-flow-backend/models/api"
	dbmodels "recruit-flow-backend/models/db"
)

type UserData struct {
	Email       string          `json:"email"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	PhoneNumber string          `json:"phone_number"`
	Role        models.UserRole `json:"role"`
	Department  string          `json:"department"`
}

func (v UserData) Validate() error {
	if v.Email == "" {
		return errors.New("отсутсвует email")
	}
	if v.FirstName == "" || v.LastName == "" {
		return errors.New("отсутсвует имя пользователя")
	}
	if err := v.Role.Validate(); err != nil {
		return err
	}
	if v.Role == models.HodRole && v.Department == "" {
		return errors.New("для руководителя подразделения обязательно подразделение")
	}
	return nil
}

type UserCreateData struct {
	UserData
	Password string `json:"password"`
}

func (v UserCreateData) Validate() error {
	if err := v.UserData.Validate(); err != nil {
		return err
	}
	if len(v.Password) < 6 {
		return errors.New("пароль должен быть не короче 6 символов")
	}
	return nil
}

type UserView struct {
	UserData
	ID       string `json:"id"`
	RoleName string `json:"role_name"`
	IsActive bool   `json:"is_active"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		UserData: UserData{
			Email:       rec.Email,
			FirstName:   rec.FirstName,
			LastName:    rec.LastName,
			PhoneNumber: rec.PhoneNumber,
			Role:        rec.Role,
			Department:  rec.Department,
		},
		ID:       rec.ID,
		RoleName: rec.Role.ToHuman(),
		IsActive: rec.IsActive,
	}
}

type UserFilter struct {
	apimodels.Pagination
	Role       models.UserRole `json:"role"`
	Department string          `json:"department"`
	Search     string          `json:"search"`
}
