package service

import (
	"crypto/subtle"
	"sync"
	"time"
)

type challengeEntry struct {
	value     string
	expiresAt time.Time
}

// ChallengeCache is the in-memory store for outstanding sign-in challenges,
// keyed by account email. Entries expire after their TTL and are single-use:
// a successful Consume removes the entry. A process restart drops all
// outstanding challenges, which is fine — a challenge is always reissuable
// by repeating sign-in.
type ChallengeCache struct {
	mu      sync.Mutex
	entries map[string]challengeEntry
	now     func() time.Time
}

func NewChallengeCache() *ChallengeCache {
	return &ChallengeCache{
		entries: make(map[string]challengeEntry),
		now:     time.Now,
	}
}

// Put stores value under key for ttl. An existing entry for the same key is
// replaced and its expiry restarted (last write wins).
func (c *ChallengeCache) Put(key, value string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = challengeEntry{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
}

// Get returns the live value for key. Expired and never-set keys are
// indistinguishable: both report absent.
func (c *ChallengeCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return "", false
	}

	return entry.value, true
}

// Consume compares value against the live entry for key and, on a match,
// removes the entry so the code cannot be replayed within its remaining TTL.
func (c *ChallengeCache) Consume(key, value string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return false
	}
	if subtle.ConstantTimeCompare([]byte(entry.value), []byte(value)) != 1 {
		return false
	}

	delete(c.entries, key)
	return true
}

// StartSweeper evicts expired entries every interval until the returned stop
// function is called. Get and Consume already check expiry lazily; the sweep
// only bounds memory held by abandoned challenges.
func (c *ChallengeCache) StartSweeper(interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				c.sweep()
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() { close(done) }
}

func (c *ChallengeCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
}
