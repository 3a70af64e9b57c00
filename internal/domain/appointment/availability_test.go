package appointment

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/therapy-scheduler/internal/models"
)

func TestBuildAvailabilityRows(t *testing.T) {
	provider := uuid.New()

	rows, err := BuildAvailabilityRows(provider, []DayRange{
		{Weekday: 1, StartTime: "09:00", EndTime: "12:00", Active: true},
		{Weekday: 1, StartTime: "14:00", EndTime: "18:00", Active: false},
	})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, provider, rows[0].ProviderID)
	assert.False(t, rows[1].Active)
}

func TestBuildAvailabilityRows_Rejects(t *testing.T) {
	tests := map[string]DayRange{
		"weekday high":  {Weekday: 7, StartTime: "09:00", EndTime: "10:00"},
		"weekday low":   {Weekday: -1, StartTime: "09:00", EndTime: "10:00"},
		"bad start":     {Weekday: 1, StartTime: "9:00", EndTime: "10:00"},
		"bad end":       {Weekday: 1, StartTime: "09:00", EndTime: "24:00"},
		"start = end":   {Weekday: 1, StartTime: "09:00", EndTime: "09:00"},
		"start after":   {Weekday: 1, StartTime: "11:00", EndTime: "10:00"},
		"empty strings": {Weekday: 1},
	}

	for name, d := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := BuildAvailabilityRows(uuid.New(), []DayRange{d})
			assert.ErrorIs(t, err, ErrInvalidAvailability)
		})
	}
}

func TestWeeklyMapFromRows_SkipsInactive(t *testing.T) {
	m := WeeklyMapFromRows([]models.WeeklyAvailability{
		{Weekday: 1, StartTime: "09:00", EndTime: "10:00", Active: true},
		{Weekday: 2, StartTime: "09:00", EndTime: "10:00", Active: false},
	})

	assert.Len(t, m[time.Monday], 1)
	assert.Empty(t, m[time.Tuesday])
}

func TestUniverseFromRows(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	u := UniverseFromRows([]models.WeeklyAvailability{
		{ProviderID: a, Weekday: 1, StartTime: "09:00", EndTime: "10:00", Active: true},
		{ProviderID: a, Weekday: 3, StartTime: "09:00", EndTime: "10:00", Active: true},
		{ProviderID: b, Weekday: 2, StartTime: "09:00", EndTime: "10:00", Active: false},
	})

	require.Contains(t, u, a)
	assert.NotContains(t, u, b)
	assert.Len(t, u[a], 2)
}
