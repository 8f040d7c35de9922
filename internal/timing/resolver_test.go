package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCutoff(t *testing.T) {
	tests := []struct {
		name     string
		cutoff   string
		expected int
		wantErr  bool
	}{
		{name: "morning cutoff", cutoff: "10:30 AM", expected: 10*60 + 30},
		{name: "evening cutoff", cutoff: "6:00 PM", expected: 18 * 60},
		{name: "noon", cutoff: "12:00 PM", expected: 12 * 60},
		{name: "midnight", cutoff: "12:00 AM", expected: 0},
		{name: "surrounding whitespace", cutoff: " 9:15 AM ", expected: 9*60 + 15},
		{name: "24h format rejected", cutoff: "18:00", wantErr: true},
		{name: "empty string", cutoff: "", wantErr: true},
		{name: "garbage", cutoff: "half past ten", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCutoff(tc.cutoff)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestResolve_CutoffGating(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		now        time.Time
		canRespond bool
	}{
		{name: "one minute before cutoff", now: day.Add(10*time.Hour + 29*time.Minute), canRespond: true},
		{name: "exactly at cutoff", now: day.Add(10*time.Hour + 30*time.Minute), canRespond: false},
		{name: "one minute after cutoff", now: day.Add(10*time.Hour + 31*time.Minute), canRespond: false},
		{name: "early morning", now: day.Add(6 * time.Hour), canRespond: true},
		{name: "late evening", now: day.Add(22 * time.Hour), canRespond: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info, err := Resolve("10:30 AM", true, "lunch", tc.now)
			require.NoError(t, err)
			assert.Equal(t, tc.canRespond, info.CanRespond)
			assert.Equal(t, "10:30 AM", info.CutoffTime)
			assert.Equal(t, "lunch", info.MealType)
			if !tc.canRespond {
				assert.Equal(t, "Cutoff time 10:30 AM has passed", info.Reason)
			} else {
				assert.Empty(t, info.Reason)
			}
		})
	}
}

func TestResolve_DisabledService(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	info, err := Resolve("10:30 AM", false, "dinner", now)
	require.NoError(t, err)
	assert.False(t, info.CanRespond)
	assert.Equal(t, "dinner service is not enabled", info.Reason)
}

func TestResolve_InvalidCutoff(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	_, err := Resolve("25:99", true, "lunch", now)
	assert.Error(t, err)
}

func TestResolve_CurrentTimeFormat(t *testing.T) {
	now := time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC)

	info, err := Resolve("10:30 AM", true, "lunch", now)
	require.NoError(t, err)
	assert.Equal(t, "11:00 AM", info.CurrentTime)
}
