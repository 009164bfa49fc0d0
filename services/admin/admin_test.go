package admin

import (
	"errors"
	"testing"

	"barberbook/models"
	"barberbook/utils"
)

type fakeTrainingRepo struct {
	byID map[uint]*models.TrainingExample
	next uint
}

func newFakeTrainingRepo() *fakeTrainingRepo {
	return &fakeTrainingRepo{byID: make(map[uint]*models.TrainingExample), next: 1}
}

func (f *fakeTrainingRepo) Create(ex *models.TrainingExample) error {
	ex.ID = f.next
	f.next++
	cp := *ex
	f.byID[ex.ID] = &cp
	return nil
}

func (f *fakeTrainingRepo) GetByID(id uint) (*models.TrainingExample, error) {
	ex, ok := f.byID[id]
	if !ok {
		return nil, utils.ErrNotFound.WithMessage("training example %d not found", id)
	}
	cp := *ex
	return &cp, nil
}

func (f *fakeTrainingRepo) List() ([]models.TrainingExample, error) {
	var out []models.TrainingExample
	for _, ex := range f.byID {
		out = append(out, *ex)
	}
	return out, nil
}

func (f *fakeTrainingRepo) Update(ex *models.TrainingExample) error {
	cp := *ex
	f.byID[ex.ID] = &cp
	return nil
}

type fakeModelRepo struct {
	byID map[uint]*models.AIModel
	next uint
}

func newFakeModelRepo() *fakeModelRepo {
	return &fakeModelRepo{byID: make(map[uint]*models.AIModel), next: 1}
}

func (f *fakeModelRepo) Create(m *models.AIModel) error {
	m.ID = f.next
	f.next++
	cp := *m
	f.byID[m.ID] = &cp
	return nil
}

func (f *fakeModelRepo) GetByID(id uint) (*models.AIModel, error) {
	m, ok := f.byID[id]
	if !ok {
		return nil, utils.ErrNotFound.WithMessage("model %d not found", id)
	}
	cp := *m
	return &cp, nil
}

func (f *fakeModelRepo) List() ([]models.AIModel, error) {
	var out []models.AIModel
	for _, m := range f.byID {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeModelRepo) Update(m *models.AIModel) error {
	cp := *m
	f.byID[m.ID] = &cp
	return nil
}

func (f *fakeModelRepo) Activate(id uint) error {
	target, ok := f.byID[id]
	if !ok {
		return utils.ErrNotFound.WithMessage("model %d not found", id)
	}
	for _, m := range f.byID {
		if m.Status == models.AIModelStatusActive {
			m.Status = models.AIModelStatusArchived
		}
	}
	target.Status = models.AIModelStatusActive
	return nil
}

type fakeShopRepo struct {
	cfg models.BarbershopConfig
}

func (f *fakeShopRepo) Get() (*models.BarbershopConfig, error) {
	cp := f.cfg
	return &cp, nil
}

func (f *fakeShopRepo) Save(cfg *models.BarbershopConfig) error {
	f.cfg = *cfg
	return nil
}

func newTestAdmin() (*DefaultAdminService, *fakeTrainingRepo, *fakeModelRepo, *fakeShopRepo) {
	training := newFakeTrainingRepo()
	modelsRepo := newFakeModelRepo()
	shop := &fakeShopRepo{cfg: models.DefaultBarbershopConfig()}
	return &DefaultAdminService{Training: training, Models: modelsRepo, Shop: shop}, training, modelsRepo, shop
}

func TestCreateTrainingExampleTaxonomy(t *testing.T) {
	svc, _, _, _ := newTestAdmin()

	ex, err := svc.CreateTrainingExample(1, models.TrainingExampleRequest{
		Category:          "pricing",
		UserMessage:       "how much is a haircut?",
		AssistantResponse: "A haircut is $25.00.",
	})
	if err != nil {
		t.Fatalf("CreateTrainingExample failed: %v", err)
	}
	if !ex.Active {
		t.Error("new examples default to active")
	}
	if ex.UserID != 1 {
		t.Errorf("author = %d, want 1", ex.UserID)
	}

	_, err = svc.CreateTrainingExample(1, models.TrainingExampleRequest{
		Category:          "small_talk",
		UserMessage:       "hi",
		AssistantResponse: "hello",
	})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown category, got %v", err)
	}
}

func TestUpdateTrainingExample(t *testing.T) {
	svc, training, _, _ := newTestAdmin()
	training.byID[4] = &models.TrainingExample{
		ID: 4, Category: "hours", UserMessage: "when are you open?",
		AssistantResponse: "Nine to six.", Active: true,
	}

	off := false
	ex, err := svc.UpdateTrainingExample(4, models.TrainingExampleRequest{
		Category:          "hours",
		UserMessage:       "when are you open?",
		AssistantResponse: "Monday through Saturday, 9 AM to 6 PM.",
		Active:            &off,
	})
	if err != nil {
		t.Fatalf("UpdateTrainingExample failed: %v", err)
	}
	if ex.Active {
		t.Error("active flag not applied")
	}
	if ex.AssistantResponse != "Monday through Saturday, 9 AM to 6 PM." {
		t.Errorf("response = %q", ex.AssistantResponse)
	}
}

func TestActivateModelArchivesOthers(t *testing.T) {
	svc, _, modelsRepo, _ := newTestAdmin()
	modelsRepo.byID[1] = &models.AIModel{ID: 1, Name: "intent", Version: "v1", Status: models.AIModelStatusActive}
	modelsRepo.byID[2] = &models.AIModel{ID: 2, Name: "intent", Version: "v2", Status: models.AIModelStatusTraining}

	m, err := svc.ActivateModel(2)
	if err != nil {
		t.Fatalf("ActivateModel failed: %v", err)
	}
	if m.Status != models.AIModelStatusActive {
		t.Errorf("activated model status = %s", m.Status)
	}
	if modelsRepo.byID[1].Status != models.AIModelStatusArchived {
		t.Errorf("previous active model status = %s, want archived", modelsRepo.byID[1].Status)
	}
}

func TestActivateUnknownModel(t *testing.T) {
	svc, _, _, _ := newTestAdmin()
	if _, err := svc.ActivateModel(404); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateShopConfigValidation(t *testing.T) {
	svc, _, _, shop := newTestAdmin()

	cfg := models.DefaultBarbershopConfig()
	cfg.OpenTime = "10:00"
	cfg.CloseTime = "19:00"
	out, err := svc.UpdateShopConfig(3, cfg)
	if err != nil {
		t.Fatalf("UpdateShopConfig failed: %v", err)
	}
	if out.UpdatedBy != 3 {
		t.Errorf("updated_by = %d, want 3", out.UpdatedBy)
	}
	if shop.cfg.OpenTime != "10:00" {
		t.Errorf("open time not saved: %s", shop.cfg.OpenTime)
	}

	bad := models.DefaultBarbershopConfig()
	bad.OpenTime = "18:00"
	bad.CloseTime = "09:00"
	if _, err := svc.UpdateShopConfig(3, bad); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("expected invalid input for inverted hours, got %v", err)
	}

	badDay := models.DefaultBarbershopConfig()
	badDay.DaysOpen = "Mon,Funday"
	if _, err := svc.UpdateShopConfig(3, badDay); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("expected invalid input for unknown weekday, got %v", err)
	}
}
