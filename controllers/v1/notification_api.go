package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"recruit-flow-backend/controllers"
	notificationhandler "recruit-flow-backend/lib/notification/handler"
	"recruit-flow-backend/middleware"
	apimodels "recruit-flow-backend/models/api"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notifications", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("list", controller.list)
		router.Get("unread-count", controller.unreadCount)
		router.Put("read-all", controller.readAll)
		router.Put(":id/read", controller.read)
	})
}

// @Summary Список
// @Tags Уведомления
// @Description Список уведомлений текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]notificationapimodels.NotificationView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/list [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	list, err := notificationhandler.Instance.List(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Количество непрочитанных
// @Tags Уведомления
// @Description Количество непрочитанных уведомлений текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=int64}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/unread-count [get]
func (c *notificationApiController) unreadCount(ctx *fiber.Ctx) error {
	count, err := notificationhandler.Instance.UnreadCount(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения количества уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(count))
}

// @Summary Отметка о прочтении
// @Tags Уведомления
// @Description Отметка уведомления прочитанным
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/{id}/read [put]
func (c *notificationApiController) read(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = notificationhandler.Instance.MarkRead(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки уведомления")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Прочитать все
// @Tags Уведомления
// @Description Отметка всех уведомлений текущего пользователя прочитанными
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/read-all [put]
func (c *notificationApiController) readAll(ctx *fiber.Ctx) error {
	err := notificationhandler.Instance.MarkAllRead(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
