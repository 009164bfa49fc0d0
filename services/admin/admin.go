package admin

import (
	"errors"
	"strings"
	"time"

	"barberbook/database/repository"
	"barberbook/models"
	"barberbook/utils"

	"go.uber.org/zap"
)

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Training repository.TrainingRepository
	Models   repository.AIModelRepository
	Shop     repository.ShopConfigRepository
}

func (s *DefaultAdminService) ListTrainingExamples() ([]models.TrainingExample, error) {
	examples, err := s.Training.List()
	if err != nil {
		if errors.Is(err, utils.ErrBackendUnavailable) {
			utils.GetLogger().Warn("ListTrainingExamples: store unavailable, returning empty")
			return []models.TrainingExample{}, nil
		}
		return nil, err
	}
	return examples, nil
}

func (s *DefaultAdminService) CreateTrainingExample(adminID uint, req models.TrainingExampleRequest) (*models.TrainingExample, error) {
	if err := validateTrainingRequest(req); err != nil {
		return nil, err
	}

	ex := models.TrainingExample{
		UserID:            adminID,
		Category:          req.Category,
		UserMessage:       req.UserMessage,
		AssistantResponse: req.AssistantResponse,
		Active:            true,
	}
	if req.Active != nil {
		ex.Active = *req.Active
	}
	if err := s.Training.Create(&ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

func (s *DefaultAdminService) UpdateTrainingExample(id uint, req models.TrainingExampleRequest) (*models.TrainingExample, error) {
	if err := validateTrainingRequest(req); err != nil {
		return nil, err
	}

	ex, err := s.Training.GetByID(id)
	if err != nil {
		return nil, err
	}
	ex.Category = req.Category
	ex.UserMessage = req.UserMessage
	ex.AssistantResponse = req.AssistantResponse
	if req.Active != nil {
		ex.Active = *req.Active
	}
	if err := s.Training.Update(ex); err != nil {
		return nil, err
	}
	return ex, nil
}

func validateTrainingRequest(req models.TrainingExampleRequest) error {
	if !models.ValidTrainingCategory(req.Category) {
		return utils.ErrInvalidInput.WithMessage("category %q is not one of: %s",
			req.Category, strings.Join(models.TrainingCategories, ", "))
	}
	if strings.TrimSpace(req.UserMessage) == "" || strings.TrimSpace(req.AssistantResponse) == "" {
		return utils.ErrInvalidInput.WithMessage("user_message and assistant_response must not be blank")
	}
	return nil
}

func (s *DefaultAdminService) ListModels() ([]models.AIModel, error) {
	ms, err := s.Models.List()
	if err != nil {
		if errors.Is(err, utils.ErrBackendUnavailable) {
			utils.GetLogger().Warn("ListModels: store unavailable, returning empty")
			return []models.AIModel{}, nil
		}
		return nil, err
	}
	return ms, nil
}

func (s *DefaultAdminService) CreateModel(req models.AIModelRequest) (*models.AIModel, error) {
	m := models.AIModel{
		Name:    req.Name,
		Version: req.Version,
		Status:  models.AIModelStatusTraining,
		Notes:   req.Notes,
	}
	if req.Accuracy != nil {
		m.Accuracy = *req.Accuracy
	}
	if err := s.Models.Create(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *DefaultAdminService) UpdateModel(id uint, req models.AIModelRequest) (*models.AIModel, error) {
	m, err := s.Models.GetByID(id)
	if err != nil {
		return nil, err
	}
	m.Name = req.Name
	m.Version = req.Version
	m.Notes = req.Notes
	if req.Accuracy != nil {
		m.Accuracy = *req.Accuracy
	}
	if err := s.Models.Update(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *DefaultAdminService) ActivateModel(id uint) (*models.AIModel, error) {
	if err := s.Models.Activate(id); err != nil {
		return nil, err
	}
	m, err := s.Models.GetByID(id)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("model activated",
		zap.Uint("modelID", m.ID), zap.String("version", m.Version))
	return m, nil
}

func (s *DefaultAdminService) GetShopConfig() (*models.BarbershopConfig, error) {
	return s.Shop.Get()
}

func (s *DefaultAdminService) UpdateShopConfig(adminID uint, cfg models.BarbershopConfig) (*models.BarbershopConfig, error) {
	if err := validateShopConfig(cfg); err != nil {
		return nil, err
	}

	cfg.UpdatedBy = adminID
	cfg.UpdatedAt = time.Now()
	if err := s.Shop.Save(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateShopConfig(cfg models.BarbershopConfig) error {
	opens, err := time.Parse("15:04", cfg.OpenTime)
	if err != nil {
		return utils.ErrInvalidInput.WithMessage("open_time must be HH:MM, got %q", cfg.OpenTime)
	}
	closes, err := time.Parse("15:04", cfg.CloseTime)
	if err != nil {
		return utils.ErrInvalidInput.WithMessage("close_time must be HH:MM, got %q", cfg.CloseTime)
	}
	if !opens.Before(closes) {
		return utils.ErrInvalidInput.WithMessage("open_time %s must be before close_time %s", cfg.OpenTime, cfg.CloseTime)
	}
	if cfg.SlotMinutes <= 0 {
		return utils.ErrInvalidInput.WithMessage("slot_minutes must be positive")
	}
	for _, d := range strings.Split(cfg.DaysOpen, ",") {
		if !validWeekday(strings.TrimSpace(d)) {
			return utils.ErrInvalidInput.WithMessage("days_open contains unknown weekday %q", strings.TrimSpace(d))
		}
	}
	return nil
}

func validWeekday(short string) bool {
	switch short {
	case "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun":
		return true
	}
	return false
}
