package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the current status of external services. Mongo is nil when
// no DATABASE_URL is configured and the seed catalogs are in use.
type HealthStatus struct {
	Redis     bool      `json:"redis"`
	Mongo     *bool     `json:"mongo,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. mongoClient may be nil.
func StartHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			redisHealthy := redisClient.Ping(ctx).Err() == nil

			var mongoHealthy *bool
			if mongoClient != nil {
				ok := mongoClient.Ping(ctx, nil) == nil
				mongoHealthy = &ok
			}

			healthMu.Lock()
			currentHealth = HealthStatus{
				Redis:     redisHealthy,
				Mongo:     mongoHealthy,
				CheckedAt: time.Now(),
			}
			healthMu.Unlock()
		}
	}()
}
