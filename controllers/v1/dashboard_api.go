package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"recruit-flow-backend/controllers"
	"recruit-flow-backend/lib/dashboard"
	"recruit-flow-backend/middleware"
	apimodels "recruit-flow-backend/models/api"
)

type dashboardApiController struct {
	controllers.BaseAPIController
}

func InitDashboardApiRouters(app *fiber.App) {
	controller := dashboardApiController{}
	app.Route("dashboard", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.StaffRequired())
		router.Get("summary", controller.summary)
	})
}

// @Summary Сводка
// @Tags Дашборд
// @Description Счетчики заявок по статусу согласования и откликов по этапам воронки
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.SummaryView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/summary [get]
func (c *dashboardApiController) summary(ctx *fiber.Ctx) error {
	resp, err := dashboard.Instance.Summary()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сводки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
