package schedule

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mondayOnly(start, end string) WeeklyMap {
	return WeeklyMap{time.Monday: {{Start: start, End: end}}}
}

// wholeDay admits every start on the date.
func wholeDay(date time.Time) Window {
	return Window{Earliest: date, Latest: date.Add(24 * time.Hour)}
}

func TestGenerateSlotsForDate_FollowingMonday(t *testing.T) {
	now := at(2026, 10, 11, 8, 0) // Sunday
	w := testPolicy().ComputeWindow(now, nil)

	slots := GenerateSlotsForDate(mondayOnly("09:00", "10:00"), at(2026, 10, 12, 0, 0), w, 20)

	assert.Equal(t, []string{"09:00", "09:20", "09:40"}, slots)
}

func TestGenerateSlotsForDate_SameDayNeedsNotice(t *testing.T) {
	now := at(2026, 10, 12, 8, 50) // Monday, 10 minutes before opening
	w := testPolicy().ComputeWindow(now, patient())

	slots := GenerateSlotsForDate(mondayOnly("09:00", "10:00"), at(2026, 10, 12, 0, 0), w, 20)

	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestGenerateSlotsForDate_OperatorSameDay(t *testing.T) {
	now := at(2026, 10, 12, 8, 50)
	w := testPolicy().ComputeWindow(now, operator())

	slots := GenerateSlotsForDate(mondayOnly("09:00", "10:00"), at(2026, 10, 12, 0, 0), w, 20)

	assert.Equal(t, []string{"09:00", "09:20", "09:40"}, slots)
}

func TestGenerateSlotsForDate_RangeShorterThanSlot(t *testing.T) {
	date := at(2026, 10, 12, 0, 0)

	slots := GenerateSlotsForDate(mondayOnly("09:00", "09:15"), date, wholeDay(date), 20)

	assert.Empty(t, slots)
}

func TestGenerateSlotsForDate_QuantizationCount(t *testing.T) {
	date := at(2026, 10, 12, 0, 0)
	w := wholeDay(date)

	tests := []struct {
		start, end string
		d          int
	}{
		{"09:00", "10:00", 20},
		{"09:00", "10:00", 25},
		{"08:10", "12:35", 20},
		{"13:00", "13:20", 20},
		{"13:00", "13:19", 20},
		{"00:00", "23:59", 45},
		{"07:30", "09:00", 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s-%s/%d", tt.start, tt.end, tt.d), func(t *testing.T) {
			s, e := TimeToMinutes(tt.start), TimeToMinutes(tt.end)

			slots := GenerateSlotsForDate(mondayOnly(tt.start, tt.end), date, w, tt.d)

			require.Len(t, slots, (e-s)/tt.d)
			for _, slot := range slots {
				m := TimeToMinutes(slot)
				assert.GreaterOrEqual(t, m, s)
				assert.LessOrEqual(t, m+tt.d, e)
			}
		})
	}
}

func TestGenerateSlotsForDate_OverlappingRangesDeduplicate(t *testing.T) {
	date := at(2026, 10, 12, 0, 0)
	weekly := WeeklyMap{time.Monday: {
		{Start: "09:20", End: "10:20"},
		{Start: "09:00", End: "10:00"},
	}}

	slots := GenerateSlotsForDate(weekly, date, wholeDay(date), 20)

	assert.Equal(t, []string{"09:00", "09:20", "09:40", "10:00"}, slots)
}

func TestGenerateSlotsForDate_UnsortedRanges(t *testing.T) {
	date := at(2026, 10, 12, 0, 0)
	weekly := WeeklyMap{time.Monday: {
		{Start: "14:00", End: "15:00"},
		{Start: "09:00", End: "09:40"},
	}}

	slots := GenerateSlotsForDate(weekly, date, wholeDay(date), 20)

	assert.Equal(t, []string{"09:00", "09:20", "14:00", "14:20", "14:40"}, slots)
}

func TestGenerateSlotsForDate_NoData(t *testing.T) {
	date := at(2026, 10, 12, 0, 0)
	w := wholeDay(date)

	assert.Empty(t, GenerateSlotsForDate(nil, date, w, 20))
	assert.Empty(t, GenerateSlotsForDate(WeeklyMap{}, date, w, 20))
	assert.Empty(t, GenerateSlotsForDate(WeeklyMap{time.Tuesday: {{Start: "09:00", End: "10:00"}}}, date, w, 20))
	assert.Empty(t, GenerateSlotsForDate(mondayOnly("09:00", "10:00"), date, w, 0))
	assert.Empty(t, GenerateSlotsForDate(mondayOnly("10:00", "09:00"), date, w, 20))
}

func TestGenerateSlotsForDate_FiltersByWindow(t *testing.T) {
	date := at(2026, 10, 12, 0, 0)
	w := Window{Earliest: at(2026, 10, 12, 9, 20), Latest: at(2026, 10, 12, 9, 40)}

	slots := GenerateSlotsForDate(mondayOnly("09:00", "10:00"), date, w, 20)

	assert.Equal(t, []string{"09:20", "09:40"}, slots)
}

func TestWeeklyMap_Add(t *testing.T) {
	m := WeeklyMap{}
	m.Add(1, "09:00", "10:00")
	m.Add(7, "09:00", "10:00")
	m.Add(-1, "09:00", "10:00")

	assert.Len(t, m, 1)
	assert.False(t, m.IsEmpty())
	assert.True(t, WeeklyMap{time.Friday: nil}.IsEmpty())
}

func TestResolver_TimeOptions(t *testing.T) {
	date := at(2026, 10, 12, 0, 0)
	r := NewResolver(30, 7, NewLabeler("pt"))

	opts := r.TimeOptions(mondayOnly("12:00", "13:00"), date, wholeDay(date))

	assert.Equal(t, []TimeOption{
		{Value: "12:00", Label: "12:00 PM"},
		{Value: "12:30", Label: "12:30 PM"},
	}, opts)
}

func TestNewResolver_Defaults(t *testing.T) {
	r := NewResolver(0, -1, NewLabeler(""))

	assert.Equal(t, DefaultSlotMinutes, r.SlotMinutes)
	assert.Equal(t, DefaultHorizonDays, r.HorizonDays)
}
