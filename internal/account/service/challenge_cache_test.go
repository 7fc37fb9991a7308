package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Shohjahon77877/e-shop-florify/internal/account/service"
)

func TestChallengeCache_PutAndGet(t *testing.T) {
	cache := service.NewChallengeCache()

	cache.Put("user@example.com", "123456", time.Minute)

	value, ok := cache.Get("user@example.com")
	assert.True(t, ok)
	assert.Equal(t, "123456", value)
}

func TestChallengeCache_MissingKey(t *testing.T) {
	cache := service.NewChallengeCache()

	value, ok := cache.Get("nobody@example.com")
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestChallengeCache_ExpiredEntryAbsent(t *testing.T) {
	cache := service.NewChallengeCache()

	cache.Put("user@example.com", "123456", -time.Second)

	value, ok := cache.Get("user@example.com")
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestChallengeCache_OverwriteLastWriteWins(t *testing.T) {
	cache := service.NewChallengeCache()

	cache.Put("user@example.com", "111111", time.Minute)
	cache.Put("user@example.com", "222222", time.Minute)

	value, ok := cache.Get("user@example.com")
	assert.True(t, ok)
	assert.Equal(t, "222222", value)

	assert.False(t, cache.Consume("user@example.com", "111111"))
	assert.True(t, cache.Consume("user@example.com", "222222"))
}

func TestChallengeCache_ConsumeIsSingleUse(t *testing.T) {
	cache := service.NewChallengeCache()

	cache.Put("user@example.com", "123456", time.Minute)

	assert.True(t, cache.Consume("user@example.com", "123456"))
	assert.False(t, cache.Consume("user@example.com", "123456"))

	_, ok := cache.Get("user@example.com")
	assert.False(t, ok)
}

func TestChallengeCache_ConsumeWrongValueKeepsEntry(t *testing.T) {
	cache := service.NewChallengeCache()

	cache.Put("user@example.com", "123456", time.Minute)

	assert.False(t, cache.Consume("user@example.com", "654321"))
	assert.True(t, cache.Consume("user@example.com", "123456"))
}

func TestChallengeCache_ConsumeExpiredEntry(t *testing.T) {
	cache := service.NewChallengeCache()

	cache.Put("user@example.com", "123456", -time.Second)

	assert.False(t, cache.Consume("user@example.com", "123456"))
}

func TestChallengeCache_SweeperStops(t *testing.T) {
	cache := service.NewChallengeCache()

	stop := cache.StartSweeper(10 * time.Millisecond)
	cache.Put("user@example.com", "123456", time.Minute)

	stop()

	value, ok := cache.Get("user@example.com")
	assert.True(t, ok)
	assert.Equal(t, "123456", value)
}
