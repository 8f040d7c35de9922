package cache

import (
	"context"
	"sync"

	"github.com/mealdash/provider-service/internal/metrics"
	"github.com/mealdash/provider-service/internal/repository"
	"github.com/mealdash/provider-service/internal/storage"
)

// PreferenceCache fronts the preference repository with an in-memory
// read-through cache. Preferences change rarely and are read on every
// timing resolution and every mutation guard.
type PreferenceCache struct {
	mu    sync.RWMutex
	cache map[string][]*repository.MealPreference
	repo  storage.PreferenceRepository
}

func NewPreferenceCache(repo storage.PreferenceRepository) *PreferenceCache {
	return &PreferenceCache{
		cache: make(map[string][]*repository.MealPreference),
		repo:  repo,
	}
}

func (c *PreferenceCache) GetByProvider(ctx context.Context, providerID string) ([]*repository.MealPreference, error) {
	c.mu.RLock()
	prefs, found := c.cache[providerID]
	c.mu.RUnlock()
	if found {
		return copyPrefs(prefs), nil
	}

	prefs, err := c.repo.GetByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[providerID] = copyPrefs(prefs)
	metrics.PreferenceCacheItems.Set(float64(len(c.cache)))
	c.mu.Unlock()

	return prefs, nil
}

// Invalidate drops a provider's cached preferences, forcing the next
// read back to the repository.
func (c *PreferenceCache) Invalidate(providerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[providerID]; found {
		delete(c.cache, providerID)
		metrics.PreferenceCacheItems.Set(float64(len(c.cache)))
	}
}

func copyPrefs(prefs []*repository.MealPreference) []*repository.MealPreference {
	out := make([]*repository.MealPreference, len(prefs))
	for i, pref := range prefs {
		prefCopy := *pref
		out[i] = &prefCopy
	}
	return out
}
