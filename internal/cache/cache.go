package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Deepanshu41008/Yapassio-platform/internal/config"
	"github.com/Deepanshu41008/Yapassio-platform/internal/models"
)

// ProfileCache is a read-through cache for student profiles on the matching
// hot path. A nil *ProfileCache is valid and always misses, so the service
// layer never branches on whether redis is configured.
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewProfileCache(client *redis.Client, ttl time.Duration) *ProfileCache {
	if client == nil {
		return nil
	}
	return &ProfileCache{client: client, ttl: ttl}
}

func studentKey(studentID string) string {
	return "student:profile:" + studentID
}

// GetStudent returns the cached profile, or (nil, false) on any miss or error.
func (c *ProfileCache) GetStudent(ctx context.Context, studentID string) (*models.Student, bool) {
	if c == nil {
		return nil, false
	}

	val, err := c.client.Get(ctx, studentKey(studentID)).Result()
	if err != nil {
		return nil, false
	}

	var student models.Student
	if err := json.Unmarshal([]byte(val), &student); err != nil {
		return nil, false
	}
	return &student, true
}

// SetStudent stores the profile best-effort; cache write failures are ignored.
func (c *ProfileCache) SetStudent(ctx context.Context, student *models.Student) {
	if c == nil || student == nil {
		return
	}

	data, err := json.Marshal(student)
	if err != nil {
		return
	}
	c.client.Set(ctx, studentKey(student.StudentID), data, c.ttl)
}

// InvalidateStudent drops the cached profile after an update.
func (c *ProfileCache) InvalidateStudent(ctx context.Context, studentID string) {
	if c == nil {
		return
	}
	c.client.Del(ctx, studentKey(studentID))
}
