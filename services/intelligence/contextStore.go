// File: services/intelligence/contextStore.go
package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"barberbook/models"
	"barberbook/utils"

	"github.com/go-redis/redis/v8"
)

// Draft is the cached booking state of one conversation: the latest
// extracted appointment data and how confident the backend was in it.
type Draft struct {
	AppointmentData *models.AppointmentData `json:"appointment_data,omitempty"`
	Confidence      float64                 `json:"confidence"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// RedisDraftStore caches per-conversation drafts with a TTL so the booking
// surface can read the current draft without another NLP round-trip.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	if ttl <= 0 {
		ttl = utils.DraftCacheTTL
	}
	return &RedisDraftStore{client: client, ttl: ttl}
}

func draftKey(conversationID uint) string {
	return fmt.Sprintf("%s%d", utils.DraftCachePrefix, conversationID)
}

func (s *RedisDraftStore) Get(ctx context.Context, conversationID uint) (*Draft, error) {
	data, err := s.client.Get(ctx, draftKey(conversationID)).Result()
	if err == redis.Nil {
		return &Draft{}, nil
	}
	if err != nil {
		return nil, err
	}
	var d Draft
	if err := json.Unmarshal([]byte(data), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *RedisDraftStore) Set(ctx context.Context, conversationID uint, d *Draft) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, draftKey(conversationID), b, s.ttl).Err()
}

func (s *RedisDraftStore) Clear(ctx context.Context, conversationID uint) error {
	return s.client.Del(ctx, draftKey(conversationID)).Err()
}
