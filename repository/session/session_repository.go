package session

import (
	"context"
	"encoding/json"

	redisclient "github.com/ernitinjai/meenicode-pos/cmd/redis"
	"github.com/ernitinjai/meenicode-pos/constant"
	"github.com/ernitinjai/meenicode-pos/model"
	"github.com/redis/go-redis/v9"
)

// SessionRepository owns the single durable slot holding the signed-in
// shop. Load never validates the session against the server; a stale
// session is only discovered on the next failing request.
type SessionRepository interface {
	Load(ctx context.Context) (*model.Session, error)
	Save(ctx context.Context, session *model.Session) error
	Clear(ctx context.Context) error
}

type slot struct {
}

// NewSessionRepository returns the Redis-backed session slot.
func NewSessionRepository() SessionRepository {
	return &slot{}
}

// Load reads the persisted slot; (nil, nil) means no one is signed in.
func (s *slot) Load(ctx context.Context) (*model.Session, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}
	val, err := client.Get(ctx, constant.SessionSlotKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *slot) Save(ctx context.Context, session *model.Session) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	// No TTL: the session lives until explicit sign-out.
	return client.Set(ctx, constant.SessionSlotKey, data, 0).Err()
}

func (s *slot) Clear(ctx context.Context) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, constant.SessionSlotKey).Err()
}
