package repositories

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/efeurhobobullish/SwiftBuy/models"
)

// SessionRepository persists the logged-in user blob per session. With a
// redis client it stores JSON under "session:<id>" with a TTL; without one
// it keeps sessions in an in-process map.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration

	mu    sync.RWMutex
	local map[string]models.User
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		ttl:    ttl,
		local:  make(map[string]models.User),
	}
}

func sessionKey(id string) string {
	return "session:" + id
}

func (r *SessionRepository) Save(ctx context.Context, sessionID string, user models.User) error {
	if r.client != nil {
		data, err := json.Marshal(user)
		if err != nil {
			return err
		}
		return r.client.Set(ctx, sessionKey(sessionID), data, r.ttl).Err()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.local[sessionID] = user
	return nil
}

// Get returns the user for the session, or ok=false when nobody is logged in.
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (models.User, bool) {
	if r.client != nil {
		data, err := r.client.Get(ctx, sessionKey(sessionID)).Bytes()
		if err != nil {
			return models.User{}, false
		}
		var user models.User
		if err := json.Unmarshal(data, &user); err != nil {
			return models.User{}, false
		}
		return user, true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.local[sessionID]
	return user, ok
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	if r.client != nil {
		return r.client.Del(ctx, sessionKey(sessionID)).Err()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.local, sessionID)
	return nil
}
