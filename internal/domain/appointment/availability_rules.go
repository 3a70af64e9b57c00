package appointment

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/therapy-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/therapy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/therapy-scheduler/internal/models"
)

var (
	ErrInvalidAvailability = httperr.ErrBusiness("invalid_availability")

	hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

type DayRange struct {
	Weekday   int
	StartTime string
	EndTime   string
	Active    bool
}

func IsHHMM(s string) bool {
	return hhmmPattern.MatchString(s)
}

// BuildAvailabilityRows validates a provider's weekly template and turns
// it into rows ready to replace the stored ones. Every range must be a
// valid weekday with start strictly before end.
func BuildAvailabilityRows(providerID uuid.UUID, days []DayRange) ([]models.WeeklyAvailability, error) {
	rows := make([]models.WeeklyAvailability, 0, len(days))

	for _, d := range days {
		if d.Weekday < 0 || d.Weekday > 6 {
			return nil, ErrInvalidAvailability
		}
		if !IsHHMM(d.StartTime) || !IsHHMM(d.EndTime) {
			return nil, ErrInvalidAvailability
		}
		if schedule.TimeToMinutes(d.StartTime) >= schedule.TimeToMinutes(d.EndTime) {
			return nil, ErrInvalidAvailability
		}

		rows = append(rows, models.WeeklyAvailability{
			ProviderID: providerID,
			Weekday:    d.Weekday,
			StartTime:  d.StartTime,
			EndTime:    d.EndTime,
			Active:     d.Active,
		})
	}

	return rows, nil
}
