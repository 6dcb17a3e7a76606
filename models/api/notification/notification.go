package notificationapimodels

import (
	"time"

	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"
)

type NotificationView struct {
	ID           string          `json:"id"`
	Code         models.PushCode `json:"code"`
	Title        string          `json:"title"`
	Msg          string          `json:"msg"`
	Route        string          `json:"route"`
	IsRead       bool            `json:"is_read"`
	CreationDate time.Time       `json:"creation_date"`
}

func NotificationConvert(rec dbmodels.Notification) NotificationView {
	return NotificationView{
		ID:           rec.ID,
		Code:         rec.Code,
		Title:        rec.Title,
		Msg:          rec.Msg,
		Route:        rec.Route,
		IsRead:       rec.IsRead,
		CreationDate: rec.CreatedAt,
	}
}
