package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"recruit-flow-backend/controllers"
	offerhandler "recruit-flow-backend/lib/offer/handler"
	"recruit-flow-backend/middleware"
	"recruit-flow-backend/models"
	apimodels "recruit-flow-backend/models/api"
	offerapimodels "recruit-flow-backend/models/api/offer"
	reqapimodels "recruit-flow-backend/models/api/requisition"
)

type offerApiController struct {
	controllers.BaseAPIController
}

func InitOfferApiRouters(app *fiber.App) {
	controller := offerApiController{}
	app.Route("offers", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("list", middleware.StaffRequired(), controller.list)
		router.Post("", middleware.RoleRequired(models.RecruiterRole), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("letter", controller.letter)
			idRoute.Put("stages/:stage/approve", middleware.StaffRequired(), controller.approve)
			idRoute.Put("stages/:stage/reject", middleware.StaffRequired(), controller.reject)
			idRoute.Put("send", middleware.RoleRequired(models.RecruiterRole), controller.send)
			idRoute.Put("accept", controller.accept)
		})
	})
}

// @Summary Создание
// @Tags Оффер
// @Description Создание оффера по отклику, согласование стартует с руководителя подразделения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 offerapimodels.OfferCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=offerapimodels.OfferView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offers [post]
func (c *offerApiController) create(ctx *fiber.Ctx) error {
	var payload offerapimodels.OfferCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := offerhandler.Instance.Create(actorOf(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания оффера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список
// @Tags Оффер
// @Description Список офферов с фильтром по статусу согласования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 offerapimodels.OfferFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]offerapimodels.OfferView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offers/list [post]
func (c *offerApiController) list(ctx *fiber.Ctx) error {
	var payload offerapimodels.OfferFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := offerhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка офферов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Получение по ИД
// @Tags Оффер
// @Description Получение оффера с этапами согласования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=offerapimodels.OfferView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offers/{id} [get]
func (c *offerApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := offerhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения оффера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Согласование этапа
// @Tags Оффер
// @Description Согласование этапа оффера текущим пользователем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 reqapimodels.DecisionData	false	"request body"
// @Param   id          		path    string  	true         "rec ID"
// @Param   stage          		path    string  	true         "этап (hod/coo)"
// @Success 200 {object} apimodels.Response{data=offerapimodels.OfferView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offers/{id}/stages/{stage}/approve [put]
func (c *offerApiController) approve(ctx *fiber.Ctx) error {
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
	resp, err := offerhandler.Instance.Approve(id, models.StageName(stage), actorOf(ctx), payload.Comments)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка согласования этапа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отклонение этапа
// @Tags Оффер
// @Description Отклонение оффера на этапе, комментарий обязателен
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 reqapimodels.RejectData	true	"request body"
// @Param   id          		path    string  	true         "rec ID"
// @Param   stage          		path    string  	true         "этап (hod/coo)"
// @Success 200 {object} apimodels.Response{data=offerapimodels.OfferView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offers/{id}/stages/{stage}/reject [put]
func (c *offerApiController) reject(ctx *fiber.Ctx) error {
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
	resp, err := offerhandler.Instance.Reject(id, models.StageName(stage), actorOf(ctx), payload.Comments)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения этапа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отправка кандидату
// @Tags Оффер
// @Description Отправка согласованного оффера кандидату с письмом-предложением
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offers/{id}/send [put]
func (c *offerApiController) send(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = offerhandler.Instance.Send(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки оффера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Принятие
// @Tags Оффер
// @Description Фиксация согласия кандидата, отклик переводится в "Принят"
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offers/{id}/accept [put]
func (c *offerApiController) accept(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = offerhandler.Instance.Accept(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка принятия оффера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Письмо-предложение
// @Tags Оффер
// @Description Скачивание pdf письма-предложения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offers/{id}/letter [get]
func (c *offerApiController) letter(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, body, err := offerhandler.Instance.GetLetter(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения письма")
	}
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%v"`, fileName))
	return ctx.Status(fiber.StatusOK).Send(body)
}
