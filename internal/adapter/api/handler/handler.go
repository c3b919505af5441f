package handler

import (
	"gyomutime/internal/infrastructure/optimizer"
	"gyomutime/internal/usecase"
)

var (
	submissionHandler *SubmissionHandler
	storageHandler    *StorageHandler
	templateHandler   *TemplateHandler
	authHandler       *AuthHandler
	userHandler       *UserHandler
	notifyHandler     *NotifyHandler
	electivesHandler  *ElectivesHandler
	optimizeHandler   *OptimizeHandler
	healthHandler     *HealthHandler
)

func Setup(
	submissionUseCase *usecase.SubmissionUseCase,
	storageUseCase *usecase.StorageUseCase,
	templateUseCase *usecase.TemplateUseCase,
	adminUseCase *usecase.AdminUseCase,
	electivesUseCase *usecase.ElectivesUseCase,
	notifyUseCase *usecase.NotifyUseCase,
	optimizerClient *optimizer.Client,
	environment string,
) {
	submissionHandler = NewSubmissionHandler(submissionUseCase)
	storageHandler = NewStorageHandler(storageUseCase)
	templateHandler = NewTemplateHandler(templateUseCase)
	authHandler = NewAuthHandler(adminUseCase)
	userHandler = NewUserHandler(adminUseCase)
	notifyHandler = NewNotifyHandler(notifyUseCase)
	electivesHandler = NewElectivesHandler(electivesUseCase)
	optimizeHandler = NewOptimizeHandler(optimizerClient)
	healthHandler = NewHealthHandler(environment)
}

func GetSubmissionHandler() *SubmissionHandler { return submissionHandler }
func GetStorageHandler() *StorageHandler       { return storageHandler }
func GetTemplateHandler() *TemplateHandler     { return templateHandler }
func GetAuthHandler() *AuthHandler             { return authHandler }
func GetUserHandler() *UserHandler             { return userHandler }
func GetNotifyHandler() *NotifyHandler         { return notifyHandler }
func GetElectivesHandler() *ElectivesHandler   { return electivesHandler }
func GetOptimizeHandler() *OptimizeHandler     { return optimizeHandler }
func GetHealthHandler() *HealthHandler         { return healthHandler }
