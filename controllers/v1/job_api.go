package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"recruit-flow-backend/controllers"
	jobhandler "recruit-flow-backend/lib/job/handler"
	"recruit-flow-backend/middleware"
	"recruit-flow-backend/models"
	apimodels "recruit-flow-backend/models/api"
	jobapimodels "recruit-flow-backend/models/api/job"
)

type jobApiController struct {
	controllers.BaseAPIController
}

func InitJobApiRouters(app *fiber.App) {
	controller := jobApiController{}
	app.Route("jobs", func(router fiber.Router) {
		router.Get("open", controller.listOpen)
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.StaffRequired())
		router.Post("list", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("close", middleware.RoleRequired(models.RecruiterRole), controller.close)
		})
	})
}

// @Summary Открытые вакансии
// @Tags Вакансии
// @Description Публичный список открытых вакансий
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/open [get]
func (c *jobApiController) listOpen(ctx *fiber.Ctx) error {
	list, err := jobhandler.Instance.ListOpen()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения открытых вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Список
// @Tags Вакансии
// @Description Список вакансий с фильтром
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobapimodels.JobFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/list [post]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := jobhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Получение по ИД
// @Tags Вакансии
// @Description Получение вакансии по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id} [get]
func (c *jobApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := jobhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Закрытие
// @Tags Вакансии
// @Description Закрытие вакансии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id}/close [put]
func (c *jobApiController) close(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = jobhandler.Instance.Close(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка закрытия вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
