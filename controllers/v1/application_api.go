package apiv1

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"recruit-flow-backend/controllers"
	applicationhandler "recruit-flow-backend/lib/application/handler"
	interviewhandler "recruit-flow-backend/lib/interview/handler"
	"recruit-flow-backend/middleware"
	"recruit-flow-backend/models"
	apimodels "recruit-flow-backend/models/api"
	applicantapimodels "recruit-flow-backend/models/api/applicant"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("applications", func(router fiber.Router) {
		router.Post("apply", controller.apply)
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.StaffRequired())
		router.Post("list", controller.list)
		router.Get("interviews/my", middleware.RoleRequired(models.InterviewerRole), controller.mySchedule)
		router.Put("interviews/:id/feedback", middleware.RoleRequired(models.InterviewerRole), controller.feedback)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("resume", controller.resume)
			idRoute.Put("status", middleware.RoleRequired(models.RecruiterRole), controller.changeStatus)
			idRoute.Post("interviews", middleware.RoleRequired(models.RecruiterRole), controller.assignInterview)
		})
	})
}

// @Summary Отклик на вакансию
// @Tags Отклики
// @Description Публичная подача отклика кандидатом, резюме в поле resume (multipart)
// @Param	body formData	 applicantapimodels.ApplicationCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/apply [post]
func (c *applicationApiController) apply(ctx *fiber.Ctx) error {
	var payload applicantapimodels.ApplicationCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resumeName := ""
	var resumeBody []byte
	file, err := ctx.FormFile("resume")
	if err == nil && file != nil {
		buffer, err := file.Open()
		if err != nil {
			log.WithError(err).Error("Ошибка при получении файла резюме")
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		defer buffer.Close()
		resumeBody, err = io.ReadAll(buffer)
		if err != nil {
			log.WithError(err).Error("Ошибка при загрузке файла резюме")
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		resumeName = file.Filename
	}
	resp, err := applicationhandler.Instance.Apply(ctx.UserContext(), payload, resumeName, resumeBody)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка подачи отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список
// @Tags Отклики
// @Description Список откликов с фильтром по вакансии и статусу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicantapimodels.ApplicationFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicantapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/list [post]
func (c *applicationApiController) list(ctx *fiber.Ctx) error {
	var payload applicantapimodels.ApplicationFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := applicationhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка откликов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Получение по ИД
// @Tags Отклики
// @Description Получение отклика с интервью
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id} [get]
func (c *applicationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := applicationhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Резюме
// @Tags Отклики
// @Description Скачивание резюме кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id}/resume [get]
func (c *applicationApiController) resume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, body, err := applicationhandler.Instance.GetResume(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения резюме")
	}
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%v"`, fileName))
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Смена статуса
// @Tags Отклики
// @Description Перевод отклика по воронке отбора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicantapimodels.StatusChangeData	true	"request body"
// @Param   id          		path    string  	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id}/status [put]
func (c *applicationApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicantapimodels.StatusChangeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = applicationhandler.Instance.ChangeStatus(id, payload.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены статуса отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Назначение интервью
// @Tags Отклики
// @Description Назначение интервью по отклику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicantapimodels.InterviewAssignData	true	"request body"
// @Param   id          		path    string  	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id}/interviews [post]
func (c *applicationApiController) assignInterview(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicantapimodels.InterviewAssignData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := interviewhandler.Instance.Assign(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка назначения интервью")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отзыв по интервью
// @Tags Отклики
// @Description Отзыв назначенного интервьюера, однократно
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicantapimodels.InterviewFeedbackData	true	"request body"
// @Param   id          		path    string  	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/interviews/{id}/feedback [put]
func (c *applicationApiController) feedback(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicantapimodels.InterviewFeedbackData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = interviewhandler.Instance.SubmitFeedback(id, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения отзыва")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Мои интервью
// @Tags Отклики
// @Description Расписание интервью текущего интервьюера
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]applicantapimodels.InterviewView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/interviews/my [get]
func (c *applicationApiController) mySchedule(ctx *fiber.Ctx) error {
	list, err := interviewhandler.Instance.ListByInterviewer(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения расписания")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
