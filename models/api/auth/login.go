package authapimodels

import (
	"github.com/pkg/errors"

	"recruit-flow-backend/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (v LoginRequest) Validate() error {
	if v.Email == "" {
		return errors.New("отсутсвует email")
	}
	if v.Password == "" {
		return errors.New("отсутсвует пароль")
	}
	return nil
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Profile      Profile `json:"profile"`
}

type Profile struct {
	ID         string          `json:"id"`
	Fio        string          `json:"fio"`
	Email      string          `json:"email"`
	Role       models.UserRole `json:"role"`
	RoleName   string          `json:"role_name"`
	Department string          `json:"department,omitempty"`
	HomeRoute  string          `json:"home_route"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (v RefreshRequest) Validate() error {
	if v.RefreshToken == "" {
		return errors.New("отсутсвует refresh токен")
	}
	return nil
}
