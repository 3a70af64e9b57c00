package appointment

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/therapy-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/therapy-scheduler/internal/models"
)

// WeeklyMapFromRows builds one provider's template from active rows.
func WeeklyMapFromRows(rows []models.WeeklyAvailability) schedule.WeeklyMap {
	m := schedule.WeeklyMap{}
	for _, r := range rows {
		if !r.Active {
			continue
		}
		m.Add(r.Weekday, r.StartTime, r.EndTime)
	}
	return m
}

// UniverseFromRows groups active rows by provider. Providers whose rows
// are all inactive are left out.
func UniverseFromRows(rows []models.WeeklyAvailability) schedule.Universe {
	byProvider := map[uuid.UUID][]models.WeeklyAvailability{}
	for _, r := range rows {
		byProvider[r.ProviderID] = append(byProvider[r.ProviderID], r)
	}

	u := schedule.Universe{}
	for id, list := range byProvider {
		if m := WeeklyMapFromRows(list); !m.IsEmpty() {
			u[id] = m
		}
	}
	return u
}
