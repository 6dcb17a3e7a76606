package apiv1

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"recruit-flow-backend/controllers"
	onboardinghandler "recruit-flow-backend/lib/onboarding/handler"
	"recruit-flow-backend/middleware"
	"recruit-flow-backend/models"
	apimodels "recruit-flow-backend/models/api"
)

type onboardingApiController struct {
	controllers.BaseAPIController
}

func InitOnboardingApiRouters(app *fiber.App) {
	controller := onboardingApiController{}
	app.Route("onboarding", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.StaffRequired())
		router.Get("list", controller.list)
		router.Put("docs/:id/verify", middleware.RoleRequired(models.RecruiterRole), controller.verifyDoc)
		router.Get("docs/:id/file", controller.docFile)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Post("docs", controller.uploadDoc)
		})
	})
}

// @Summary Список
// @Tags Онбординг
// @Description Список карточек онбординга
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]onboardingapimodels.OnboardingView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/onboarding/list [get]
func (c *onboardingApiController) list(ctx *fiber.Ctx) error {
	list, err := onboardinghandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка онбординга")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Получение по ИД
// @Tags Онбординг
// @Description Карточка онбординга с чек-листом документов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=onboardingapimodels.OnboardingView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/onboarding/{id} [get]
func (c *onboardingApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := onboardinghandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения карточки онбординга")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Загрузка документа
// @Tags Онбординг
// @Description Загрузка документа чек-листа, multipart/form-data с полями doc_type и file
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "rec ID"
// @Param   doc_type    		formData    string  	true     "тип документа из чек-листа"
// @Param   file        		formData    file  	true         "файл документа"
// @Success 200 {object} apimodels.Response{data=onboardingapimodels.OnboardingView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/onboarding/{id}/docs [post]
func (c *onboardingApiController) uploadDoc(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	docType := ctx.FormValue("doc_type")
	if docType == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("отсутсвует тип документа"))
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("отсутсвует файл документа"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := onboardinghandler.Instance.UploadDoc(ctx.UserContext(), id, docType, fileHeader.Filename, body)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки документа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Проверка документа
// @Tags Онбординг
// @Description Подтверждение документа рекрутером, при полном чек-листе онбординг завершается
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "doc ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/onboarding/docs/{id}/verify [put]
func (c *onboardingApiController) verifyDoc(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = onboardinghandler.Instance.VerifyDoc(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка проверки документа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Файл документа
// @Tags Онбординг
// @Description Скачивание файла документа чек-листа
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "doc ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/onboarding/docs/{id}/file [get]
func (c *onboardingApiController) docFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, body, err := onboardinghandler.Instance.GetDocFile(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения файла документа")
	}
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%v"`, fileName))
	return ctx.Status(fiber.StatusOK).Send(body)
}
