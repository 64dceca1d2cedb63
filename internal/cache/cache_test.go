package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Deepanshu41008/Yapassio-platform/internal/models"
)

func newTestCache(t *testing.T) (*ProfileCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewProfileCache(client, 5*time.Minute), mr
}

func TestProfileCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	student := &models.Student{
		StudentID: "stu-123",
		UserID:    "user-123",
		Name:      "Aisha",
	}
	student.SetDomainsOfInterest([]string{"machine-learning", "python"})
	student.SetLanguages([]string{"english", "hindi"})

	c.SetStudent(ctx, student)

	got, ok := c.GetStudent(ctx, "stu-123")
	require.True(t, ok)
	assert.Equal(t, "user-123", got.UserID)
	assert.Equal(t, "Aisha", got.Name)
	assert.Equal(t, []string{"machine-learning", "python"}, got.GetDomainsOfInterest())
	assert.Equal(t, []string{"english", "hindi"}, got.GetLanguages())
}

func TestProfileCacheMiss(t *testing.T) {
	c, _ := newTestCache(t)

	got, ok := c.GetStudent(context.Background(), "missing")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestProfileCacheExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.SetStudent(ctx, &models.Student{StudentID: "stu-123"})

	mr.FastForward(10 * time.Minute)

	_, ok := c.GetStudent(ctx, "stu-123")
	assert.False(t, ok)
}

func TestProfileCacheInvalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.SetStudent(ctx, &models.Student{StudentID: "stu-123"})
	c.InvalidateStudent(ctx, "stu-123")

	_, ok := c.GetStudent(ctx, "stu-123")
	assert.False(t, ok)
}

func TestProfileCacheNilSafe(t *testing.T) {
	var c *ProfileCache

	_, ok := c.GetStudent(context.Background(), "stu-123")
	assert.False(t, ok)

	// Must not panic.
	c.SetStudent(context.Background(), &models.Student{StudentID: "stu-123"})
	c.InvalidateStudent(context.Background(), "stu-123")
}
