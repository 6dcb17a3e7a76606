package initializers

import (
	"context"
	"recruit-flow-backend/config"
	"recruit-flow-backend/fiberlog"
	applicationhandler "recruit-flow-backend/lib/application/handler"
	authhandler "recruit-flow-backend/lib/auth"
	"recruit-flow-backend/lib/dashboard"
	xlsexport "recruit-flow-backend/lib/export/xls"
	filestorage "recruit-flow-backend/lib/file-storage"
	interviewhandler "recruit-flow-backend/lib/interview/handler"
	jobhandler "recruit-flow-backend/lib/job/handler"
	notificationhandler "recruit-flow-backend/lib/notification/handler"
	offerhandler "recruit-flow-backend/lib/offer/handler"
	onboardinghandler "recruit-flow-backend/lib/onboarding/handler"
	requisitionhandler "recruit-flow-backend/lib/requisition/handler"
	usershandler "recruit-flow-backend/lib/users/handler"
	connectionhub "recruit-flow-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	connectionhub.Init()
	filestorage.NewHandler()
	usershandler.NewHandler()
	authhandler.NewHandler()
	notificationhandler.NewHandler()
	requisitionhandler.NewHandler()
	jobhandler.NewHandler()
	applicationhandler.NewHandler()
	interviewhandler.NewHandler()
	offerhandler.NewHandler()
	onboardinghandler.NewHandler()
	xlsexport.NewHandler()
	dashboard.NewHandler()
}
