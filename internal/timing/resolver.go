package timing

import (
	"fmt"
	"strings"
	"time"
)

const clockLayout = "3:04 PM"

// Info is the timing snapshot for one meal type on the current
// calendar day. It is derived, never persisted.
type Info struct {
	MealType    string `json:"mealType"`
	CutoffTime  string `json:"cutoffTime"`
	CanRespond  bool   `json:"canRespond"`
	Reason      string `json:"reason,omitempty"`
	CurrentTime string `json:"currentTime"`
}

// ParseCutoff parses a 12-hour wall-clock string like "10:30 AM" into
// minutes since midnight.
func ParseCutoff(cutoff string) (int, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(cutoff))
	if err != nil {
		return 0, fmt.Errorf("invalid cutoff time %q: %w", cutoff, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Resolve evaluates whether manual responses are still accepted for
// mealType given the provider's configured cutoff and the current
// wall-clock time. It is defined for "today" only: callers applying it
// to a specific menu date must apply the past-date rule themselves.
//
// Pure function. No I/O beyond the inputs given.
func Resolve(cutoff string, enabled bool, mealType string, now time.Time) (Info, error) {
	info := Info{
		MealType:    mealType,
		CutoffTime:  cutoff,
		CurrentTime: now.Format(clockLayout),
	}

	if !enabled {
		info.Reason = fmt.Sprintf("%s service is not enabled", mealType)
		return info, nil
	}

	cutoffMinute, err := ParseCutoff(cutoff)
	if err != nil {
		return Info{}, err
	}

	nowMinute := now.Hour()*60 + now.Minute()
	if nowMinute < cutoffMinute {
		info.CanRespond = true
		return info, nil
	}

	info.Reason = fmt.Sprintf("Cutoff time %s has passed", cutoff)
	return info, nil
}
