package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barberbook/database/repository"
	"barberbook/models"
	"barberbook/services/intelligence"
	"barberbook/utils"

	"go.uber.org/zap"
)

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Convos repository.ConversationRepository
	Shop   repository.ShopConfigRepository
	NLP    intelligence.NLPService
	Drafts intelligence.DraftStore
}

func (s *DefaultChatService) StartConversation(userID uint, title string) (*models.Conversation, error) {
	conv := models.Conversation{UserID: userID, Title: title}
	if err := s.Convos.Create(&conv); err != nil {
		utils.GetLogger().Error("StartConversation: failed to create conversation",
			zap.Uint("userID", userID), zap.Error(err))
		return nil, err
	}
	return &conv, nil
}

func (s *DefaultChatService) ListConversations(userID uint) ([]models.Conversation, error) {
	convs, err := s.Convos.ListByUser(userID)
	if err != nil {
		if errors.Is(err, utils.ErrBackendUnavailable) {
			utils.GetLogger().Warn("ListConversations: store unavailable, returning empty",
				zap.Uint("userID", userID))
			return []models.Conversation{}, nil
		}
		return nil, err
	}
	return convs, nil
}

func (s *DefaultChatService) ListMessages(callerID, conversationID uint) ([]models.Message, error) {
	if _, err := s.ownedConversation(callerID, conversationID); err != nil {
		return nil, err
	}
	return s.Convos.ListMessages(conversationID)
}

// SendMessage runs one chat round-trip. The user message is persisted
// before the backend call, so a backend failure never loses input.
func (s *DefaultChatService) SendMessage(ctx context.Context, callerID, conversationID uint, text string) (*SendMessageResult, error) {
	if _, err := s.ownedConversation(callerID, conversationID); err != nil {
		return nil, err
	}

	userMsg := models.Message{
		ConversationID: conversationID,
		Role:           models.MessageRoleUser,
		Content:        text,
	}
	if err := s.Convos.AppendMessage(&userMsg); err != nil {
		return nil, err
	}

	resp, err := s.NLP.SendMessage(ctx, models.ChatRequest{ConversationID: conversationID, Message: text})
	if err != nil {
		utils.GetLogger().Error("SendMessage: language backend call failed",
			zap.Uint("conversationID", conversationID), zap.Error(err))
		return nil, utils.ErrBackendUnavailable.WithMessage("language backend is unavailable")
	}

	reply := models.Message{
		ConversationID: conversationID,
		Role:           models.MessageRoleAssistant,
		Content:        resp.Response,
	}
	if err := s.Convos.AppendMessage(&reply); err != nil {
		return nil, err
	}

	if resp.AppointmentData != nil {
		draft := &intelligence.Draft{
			AppointmentData: resp.AppointmentData,
			Confidence:      resp.Confidence,
			UpdatedAt:       time.Now(),
		}
		if err := s.Drafts.Set(ctx, conversationID, draft); err != nil {
			// The cache is advisory; the reply already happened.
			utils.GetLogger().Warn("SendMessage: failed to cache appointment draft",
				zap.Uint("conversationID", conversationID), zap.Error(err))
		}
	}

	return &SendMessageResult{
		Reply:           reply,
		AppointmentData: resp.AppointmentData,
		Confidence:      resp.Confidence,
	}, nil
}

// ResetConversation clears the backend's context first so a failed reset
// can be retried with the draft still intact.
func (s *DefaultChatService) ResetConversation(ctx context.Context, callerID, conversationID uint) error {
	if _, err := s.ownedConversation(callerID, conversationID); err != nil {
		return err
	}

	if err := s.NLP.Reset(ctx, conversationID); err != nil {
		utils.GetLogger().Error("ResetConversation: language backend reset failed",
			zap.Uint("conversationID", conversationID), zap.Error(err))
		return utils.ErrBackendUnavailable.WithMessage("language backend is unavailable")
	}

	if err := s.Drafts.Clear(ctx, conversationID); err != nil {
		// TTL will expire the stale draft.
		utils.GetLogger().Warn("ResetConversation: failed to clear cached draft",
			zap.Uint("conversationID", conversationID), zap.Error(err))
	}
	return nil
}

// ExtractAppointment proxies the extraction call. When the backend is
// down it falls back to the last cached draft so the booking flow can
// still be completed from what was already understood.
func (s *DefaultChatService) ExtractAppointment(ctx context.Context, callerID, conversationID uint) (*models.ExtractResponse, error) {
	if _, err := s.ownedConversation(callerID, conversationID); err != nil {
		return nil, err
	}

	out, err := s.NLP.ExtractAppointment(ctx, conversationID)
	if err != nil {
		utils.GetLogger().Warn("ExtractAppointment: language backend call failed, trying cached draft",
			zap.Uint("conversationID", conversationID), zap.Error(err))
		draft, cacheErr := s.Drafts.Get(ctx, conversationID)
		if cacheErr == nil && draft != nil && draft.AppointmentData != nil {
			return &models.ExtractResponse{
				AppointmentData: draft.AppointmentData,
				IsComplete:      draftComplete(draft.AppointmentData),
			}, nil
		}
		return nil, utils.ErrBackendUnavailable.WithMessage("language backend is unavailable")
	}

	if out.AppointmentData != nil {
		draft := &intelligence.Draft{
			AppointmentData: out.AppointmentData,
			Confidence:      draftConfidence(out.AppointmentData),
			UpdatedAt:       time.Now(),
		}
		if err := s.Drafts.Set(ctx, conversationID, draft); err != nil {
			utils.GetLogger().Warn("ExtractAppointment: failed to cache appointment draft",
				zap.Uint("conversationID", conversationID), zap.Error(err))
		}
	}
	return out, nil
}

// ValidateAppointment combines the backend's field validation with the
// shop's opening hours.
func (s *DefaultChatService) ValidateAppointment(ctx context.Context, data models.AppointmentData) (*models.ValidateResponse, error) {
	out, err := s.NLP.ValidateAppointment(ctx, data)
	if err != nil {
		utils.GetLogger().Error("ValidateAppointment: language backend call failed", zap.Error(err))
		return nil, utils.ErrBackendUnavailable.WithMessage("language backend is unavailable")
	}

	if hoursErrs := s.checkBusinessHours(data); len(hoursErrs) > 0 {
		out.IsValid = false
		out.Errors = append(out.Errors, hoursErrs...)
	}
	return out, nil
}

// checkBusinessHours validates the requested slot against the shop
// configuration. Unparseable slots and an unreachable config store both
// leave the backend's verdict alone.
func (s *DefaultChatService) checkBusinessHours(data models.AppointmentData) []string {
	if data.Date == "" || data.Time == "" {
		return nil
	}
	slot, err := time.Parse("2006-01-02 15:04", data.Date+" "+data.Time)
	if err != nil {
		return nil
	}

	cfg, err := s.Shop.Get()
	if err != nil {
		utils.GetLogger().Warn("checkBusinessHours: shop config unavailable, skipping hours check",
			zap.Error(err))
		return nil
	}

	var errs []string
	if !cfg.OpenOn(slot.Weekday()) {
		errs = append(errs, fmt.Sprintf("the shop is closed on %s", slot.Weekday()))
	}
	if data.Time < cfg.OpenTime || data.Time >= cfg.CloseTime {
		errs = append(errs, fmt.Sprintf("requested time %s is outside business hours (%s-%s)",
			data.Time, cfg.OpenTime, cfg.CloseTime))
	}
	return errs
}

func (s *DefaultChatService) ownedConversation(callerID, conversationID uint) (*models.Conversation, error) {
	conv, err := s.Convos.GetByID(conversationID)
	if err != nil {
		return nil, err
	}
	if conv.UserID != callerID {
		return nil, utils.ErrUnauthorized.WithMessage("conversation %d does not belong to the caller", conversationID)
	}
	return conv, nil
}

// draftComplete mirrors the extraction backend's completeness rule: the
// service, date, and time must all be present.
func draftComplete(d *models.AppointmentData) bool {
	return d.Service != "" && d.Date != "" && d.Time != ""
}

// draftConfidence scores a draft by its filled required fields.
func draftConfidence(d *models.AppointmentData) float64 {
	n := 0
	if d.Service != "" {
		n++
	}
	if d.Date != "" {
		n++
	}
	if d.Time != "" {
		n++
	}
	return float64(n) / 3
}
