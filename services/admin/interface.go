package admin

import (
	"barberbook/models"
)

// AdminService covers the back-office surface: curating training data for
// the language model, tracking model versions, and editing the shop
// configuration. Role enforcement happens at the route guard; everything
// here assumes an admin caller.
type AdminService interface {
	ListTrainingExamples() ([]models.TrainingExample, error)
	CreateTrainingExample(adminID uint, req models.TrainingExampleRequest) (*models.TrainingExample, error)
	UpdateTrainingExample(id uint, req models.TrainingExampleRequest) (*models.TrainingExample, error)

	ListModels() ([]models.AIModel, error)
	CreateModel(req models.AIModelRequest) (*models.AIModel, error)
	UpdateModel(id uint, req models.AIModelRequest) (*models.AIModel, error)
	// ActivateModel marks one model active and archives the rest.
	ActivateModel(id uint) (*models.AIModel, error)

	GetShopConfig() (*models.BarbershopConfig, error)
	UpdateShopConfig(adminID uint, cfg models.BarbershopConfig) (*models.BarbershopConfig, error)
}
