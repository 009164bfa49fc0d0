package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Postgres   bool      `json:"postgres"`
	Redis      bool      `json:"redis"`
	NLPBackend bool      `json:"nlpBackend"`
	CheckedAt  time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. The NLP probe is passed in so this package stays transport-agnostic.
func StartHealthMonitor(redisClient *redis.Client, db *gorm.DB, nlpProbe func(context.Context) error) {
	check := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		redisHealthy := redisClient != nil && redisClient.Ping(ctx).Err() == nil

		pgHealthy := false
		if db != nil {
			if sqlDB, err := db.DB(); err == nil {
				pgHealthy = sqlDB.PingContext(ctx) == nil
			}
		}

		nlpHealthy := nlpProbe != nil && nlpProbe(ctx) == nil

		mu.Lock()
		currentHealth = HealthStatus{
			Postgres:   pgHealthy,
			Redis:      redisHealthy,
			NLPBackend: nlpHealthy,
			CheckedAt:  time.Now(),
		}
		mu.Unlock()
	}

	go func() {
		check()
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			check()
		}
	}()
}
