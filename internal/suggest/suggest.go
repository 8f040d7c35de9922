package suggest

import (
	"fmt"
	"sync"
)

// TriggerPolicy selects how auto-confirmation is invoked: explicitly
// by the operator, or surfaced once per session when the client
// observes that the cutoff has passed.
type TriggerPolicy string

const (
	TriggerManual      TriggerPolicy = "manual"
	TriggerSuggestOnce TriggerPolicy = "suggestOnce"
)

// Tracker dedupes auto-confirm suggestions within one session. State
// is explicit and session-scoped, not ambient global storage.
type Tracker struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{seen: make(map[string]struct{})}
}

// ShouldSuggest reports whether a suggestion for (providerID, menuDate,
// mealType) has not been surfaced yet this session, and marks it as
// surfaced.
func (t *Tracker) ShouldSuggest(providerID, menuDate, mealType string) bool {
	key := fmt.Sprintf("%s|%s|%s", providerID, menuDate, mealType)

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, found := t.seen[key]; found {
		return false
	}
	t.seen[key] = struct{}{}
	return true
}

// Reset clears the session state.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seen = make(map[string]struct{})
}
