package authhandler

import (
	"time"

	log "github.com/sirupsen/logrus"
	"recruit-flow-backend/db"
	userstore "recruit-flow-backend/lib/users/store"
	"recruit-flow-backend/lib/utils/apperrs"
	authutils "recruit-flow-backend/lib/utils/auth-utils"
	"recruit-flow-backend/models"
	authapimodels "recruit-flow-backend/models/api/auth"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	Login(request authapimodels.LoginRequest) (authapimodels.LoginResponse, error)
	Refresh(refreshToken string) (authapimodels.LoginResponse, error)
	GetProfile(userID string) (authapimodels.Profile, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	store userstore.Provider
}

func (i impl) Login(request authapimodels.LoginRequest) (authapimodels.LoginResponse, error) {
	user, err := i.store.FindByEmail(request.Email)
	if err != nil {
		log.
			WithField("email", request.Email).
			WithError(err).
			Error("ошибка поиска пользователя")
		return authapimodels.LoginResponse{}, err
	}
	if user == nil || !user.IsActive {
		return authapimodels.LoginResponse{}, apperrs.Forbidden("неверный логин или пароль")
	}
	if user.Password != authutils.GetMD5Hash(request.Password) {
		return authapimodels.LoginResponse{}, apperrs.Forbidden("неверный логин или пароль")
	}
	resp, err := i.issueTokens(*user)
	if err != nil {
		return authapimodels.LoginResponse{}, err
	}
	err = i.store.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		log.WithError(err).Warn("ошибка обновления времени входа")
	}
	return resp, nil
}

func (i impl) Refresh(refreshToken string) (authapimodels.LoginResponse, error) {
	userID, err := authutils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return authapimodels.LoginResponse{}, apperrs.Forbidden("некорректный refresh токен")
	}
	user, err := i.store.GetByID(userID)
	if err != nil {
		return authapimodels.LoginResponse{}, err
	}
	if user == nil || !user.IsActive {
		return authapimodels.LoginResponse{}, apperrs.Forbidden("пользователь не активен")
	}
	return i.issueTokens(*user)
}

func (i impl) GetProfile(userID string) (authapimodels.Profile, error) {
	user, err := i.store.GetByID(userID)
	if err != nil {
		return authapimodels.Profile{}, err
	}
	if user == nil {
		return authapimodels.Profile{}, apperrs.NotFound("пользователь не найден")
	}
	return profileOf(*user), nil
}

func (i impl) issueTokens(user dbmodels.User) (authapimodels.LoginResponse, error) {
	accessToken, err := authutils.GetToken(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		return authapimodels.LoginResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return authapimodels.LoginResponse{}, err
	}
	return authapimodels.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      profileOf(user),
	}, nil
}

func profileOf(user dbmodels.User) authapimodels.Profile {
	return authapimodels.Profile{
		ID:         user.ID,
		Fio:        user.GetFullName(),
		Email:      user.Email,
		Role:       user.Role,
		RoleName:   user.Role.ToHuman(),
		Department: user.Department,
		HomeRoute:  models.RouteFor(user.Role, ""),
	}
}
