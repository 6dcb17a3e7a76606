package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"recruit-flow-backend/controllers"
	"recruit-flow-backend/lib/approval"
	xlsexport "recruit-flow-backend/lib/export/xls"
	requisitionhandler "recruit-flow-backend/lib/requisition/handler"
	"recruit-flow-backend/middleware"
	"recruit-flow-backend/models"
	apimodels "recruit-flow-backend/models/api"
	jobapimodels "recruit-flow-backend/models/api/job"
	reqapimodels "recruit-flow-backend/models/api/requisition"
)

type requisitionApiController struct {
	controllers.BaseAPIController
}

func InitRequisitionApiRouters(app *fiber.App) {
	controller := requisitionApiController{}
	app.Route("requisitions", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.StaffRequired())
		router.Post("list", controller.list)
		router.Post("export", controller.export)
		router.Post("", middleware.RoleRequired(models.RecruiterRole, models.HodRole), controller.create)
		router.Post("job", middleware.RoleRequired(models.RecruiterRole), controller.createJob)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", middleware.RoleRequired(models.RecruiterRole, models.HodRole), controller.update)
			idRoute.Put("stages/:stage/approve", controller.approve)
			idRoute.Put("stages/:stage/reject", controller.reject)
		})
	})
}

func actorOf(ctx *fiber.Ctx) approval.Actor {
	return approval.Actor{
		UserID: middleware.GetUserID(ctx),
		Fio:    middleware.GetUserFio(ctx),
		Role:   middleware.GetUserRole(ctx),
	}
}

// @Summary Создание
// @Tags Заявка на подбор
// @Description Создание заявки, согласование стартует с руководителя подразделения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 reqapimodels.RequisitionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=reqapimodels.RequisitionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requisitions [post]
func (c *requisitionApiController) create(ctx *fiber.Ctx) error {
	var payload reqapimodels.RequisitionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := requisitionhandler.Instance.Create(actorOf(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список
// @Tags Заявка на подбор
// @Description Список заявок с фильтром по агрегатному статусу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 reqapimodels.ReqFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]reqapimodels.RequisitionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requisitions/list [post]
func (c *requisitionApiController) list(ctx *fiber.Ctx) error {
	var payload reqapimodels.ReqFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := requisitionhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Выгрузка реестра
// @Tags Заявка на подбор
// @Description Выгрузка реестра заявок в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 reqapimodels.ReqFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requisitions/export [post]
func (c *requisitionApiController) export(ctx *fiber.Ctx) error {
	var payload reqapimodels.ReqFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := requisitionhandler.Instance.ListAll(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	buf, err := xlsexport.Instance.ExportRequisitionList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки реестра заявок")
	}
	fileName := fmt.Sprintf("requisitions_%v.xlsx", time.Now().Format("02_01_2006"))
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%v"`, fileName))
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Получение по ИД
// @Tags Заявка на подбор
// @Description Получение заявки с этапами согласования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=reqapimodels.RequisitionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requisitions/{id} [get]
func (c *requisitionApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := requisitionhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление
// @Tags Заявка на подбор
// @Description Обновление заявки до старта согласования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 reqapimodels.RequisitionData	true	"request body"
// @Param   id          		path    string  	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requisitions/{id} [put]
func (c *requisitionApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload reqapimodels.RequisitionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = requisitionhandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Согласование этапа
// @Tags Заявка на подбор
// @Description Согласование этапа заявки текущим пользователем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 reqapimodels.DecisionData	false	"request body"
// @Param   id          		path    string  	true         "rec ID"
// @Param   stage          		path    string  	true         "этап (department_head/hr/coo)"
// @Success 200 {object} apimodels.Response{data=reqapimodels.RequisitionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requisitions/{id}/stages/{stage}/approve [put]
func (c *requisitionApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	stage, err := c.GetIDByKey(ctx, "stage")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload reqapimodels.DecisionData
	if len(ctx.Body()) > 0 {
		if err = c.BodyParser(ctx, &payload); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
	}
	resp, err := requisitionhandler.Instance.Approve(id, models.StageName(stage), actorOf(ctx), payload.Comments)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка согласования этапа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отклонение этапа
// @Tags Заявка на подбор
// @Description Отклонение заявки на этапе, комментарий обязателен
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 reqapimodels.RejectData	true	"request body"
// @Param   id          		path    string  	true         "rec ID"
// @Param   stage          		path    string  	true         "этап (department_head/hr/coo)"
// @Success 200 {object} apimodels.Response{data=reqapimodels.RequisitionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requisitions/{id}/stages/{stage}/reject [put]
func (c *requisitionApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	stage, err := c.GetIDByKey(ctx, "stage")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload reqapimodels.RejectData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := requisitionhandler.Instance.Reject(id, models.StageName(stage), actorOf(ctx), payload.Comments)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения этапа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создание вакансии
// @Tags Заявка на подбор
// @Description Создание вакансии из полностью согласованной заявки, однократно
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobapimodels.JobCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requisitions/job [post]
func (c *requisitionApiController) createJob(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := requisitionhandler.Instance.CreateJob(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
