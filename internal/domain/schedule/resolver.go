package schedule

import (
	"slices"
	"sort"
	"time"
)

const (
	DefaultSlotMinutes = 20
	DefaultHorizonDays = 7
)

// Range is one open [Start, End) block of a weekday, as "HH:MM".
type Range struct {
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

// WeeklyMap is a provider's recurring template keyed by weekday.
type WeeklyMap map[time.Weekday][]Range

// Add appends a range; weekdays outside 0-6 are ignored.
func (m WeeklyMap) Add(weekday int, start, end string) {
	if weekday < 0 || weekday > 6 {
		return
	}
	d := time.Weekday(weekday)
	m[d] = append(m[d], Range{Start: start, End: end})
}

func (m WeeklyMap) IsEmpty() bool {
	for _, ranges := range m {
		if len(ranges) > 0 {
			return false
		}
	}
	return true
}

type TimeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// GenerateSlotsForDate quantizes the weekday's ranges of date into
// slotMinutes starts and keeps the ones inside w. The result is ascending
// and free of duplicates; it is empty, never nil, when nothing qualifies.
func GenerateSlotsForDate(weekly WeeklyMap, date time.Time, w Window, slotMinutes int) []string {
	ranges := weekly[date.Weekday()]
	if len(ranges) == 0 || slotMinutes <= 0 {
		return []string{}
	}

	sorted := slices.Clone(ranges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return TimeToMinutes(sorted[i].Start) < TimeToMinutes(sorted[j].Start)
	})

	seen := make(map[string]struct{})
	var candidates []string
	for _, r := range sorted {
		start, end := TimeToMinutes(r.Start), TimeToMinutes(r.End)
		for m := start; m+slotMinutes <= end; m += slotMinutes {
			c := MinutesToTime(m)
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			candidates = append(candidates, c)
		}
	}
	sort.Strings(candidates)

	key := DateToKey(date)
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if IsWithinWindow(key, c, w) {
			out = append(out, c)
		}
	}
	return out
}

// Resolver carries the configured quantization, horizon and labels.
type Resolver struct {
	SlotMinutes int
	HorizonDays int
	Labels      Labeler
}

func NewResolver(slotMinutes, horizonDays int, labels Labeler) Resolver {
	if slotMinutes <= 0 {
		slotMinutes = DefaultSlotMinutes
	}
	if horizonDays < 0 {
		horizonDays = DefaultHorizonDays
	}
	return Resolver{SlotMinutes: slotMinutes, HorizonDays: horizonDays, Labels: labels}
}

func (r Resolver) Slots(weekly WeeklyMap, date time.Time, w Window) []string {
	return GenerateSlotsForDate(weekly, date, w, r.SlotMinutes)
}

func (r Resolver) TimeOptions(weekly WeeklyMap, date time.Time, w Window) []TimeOption {
	slots := r.Slots(weekly, date, w)
	out := make([]TimeOption, 0, len(slots))
	for _, s := range slots {
		out = append(out, TimeOption{Value: s, Label: FormatDisplayTime(s)})
	}
	return out
}
