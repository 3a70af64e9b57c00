package schedule

import "time"

type DateOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// GenerateDateOptions uses the default slot duration and labels.
func GenerateDateOptions(weekly WeeklyMap, w Window, horizonDays int, today time.Time) []DateOption {
	return NewResolver(DefaultSlotMinutes, horizonDays, NewLabeler("")).DateOptions(weekly, w, today)
}

// DateOptions lists today through today+HorizonDays, keeping only dates
// that resolve to at least one slot.
func (r Resolver) DateOptions(weekly WeeklyMap, w Window, today time.Time) []DateOption {
	out := []DateOption{}
	if weekly.IsEmpty() {
		return out
	}

	for offset := 0; offset <= r.HorizonDays; offset++ {
		date := time.Date(today.Year(), today.Month(), today.Day()+offset, 0, 0, 0, 0, today.Location())
		if len(r.Slots(weekly, date, w)) == 0 {
			continue
		}
		out = append(out, DateOption{
			Value: DateToKey(date),
			Label: r.Labels.Label(date),
		})
	}
	return out
}

func hasDate(options []DateOption, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// OffersTime reports whether value is one of the resolved time options.
func OffersTime(options []TimeOption, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}
