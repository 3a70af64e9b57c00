package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var testLoc = time.FixedZone("BRT", -3*60*60)

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, testLoc)
}

func patient() *Identity {
	return &Identity{ID: uuid.New(), Role: "patient"}
}

func operator() *Identity {
	return &Identity{ID: uuid.New(), Role: "operator"}
}

func testPolicy() Policy {
	return DefaultPolicy(NewRoleAuthorizer("operator"))
}

func TestComputeWindow_Standard(t *testing.T) {
	now := at(2026, 10, 11, 8, 0)

	for name, who := range map[string]*Identity{
		"anonymous":    nil,
		"patient":      patient(),
		"psychologist": {ID: uuid.New(), Role: "psychologist"},
	} {
		t.Run(name, func(t *testing.T) {
			w := testPolicy().ComputeWindow(now, who)
			assert.Equal(t, now.Add(24*time.Hour), w.Earliest)
			assert.Equal(t, now.Add(7*24*time.Hour), w.Latest)
		})
	}
}

func TestComputeWindow_PrivilegedBypass(t *testing.T) {
	now := at(2026, 10, 12, 8, 50)

	w := testPolicy().ComputeWindow(now, operator())
	assert.Equal(t, now, w.Earliest, "no notice for the operator")
	assert.Equal(t, now.Add(30*24*time.Hour), w.Latest)

	upper := &Identity{ID: uuid.New(), Role: "OPERATOR"}
	assert.Equal(t, now, testPolicy().ComputeWindow(now, upper).Earliest)
}

func TestComputeWindow_NoAuthorizer(t *testing.T) {
	now := at(2026, 10, 12, 8, 50)
	p := DefaultPolicy(nil)

	w := p.ComputeWindow(now, operator())
	assert.Equal(t, now.Add(24*time.Hour), w.Earliest)
}

func TestIsWithinWindow_InclusiveBounds(t *testing.T) {
	now := at(2026, 10, 11, 8, 0)
	w := testPolicy().ComputeWindow(now, nil)

	assert.True(t, IsWithinWindow("2026-10-12", "08:00", w), "earliest is inclusive")
	assert.True(t, IsWithinWindow("2026-10-18", "08:00", w), "latest is inclusive")
	assert.True(t, IsWithinWindow("2026-10-15", "13:20", w))

	assert.False(t, IsWithinWindow("2026-10-12", "07:59", w))
	assert.False(t, IsWithinWindow("2026-10-18", "08:01", w))
}

func TestIsWithinWindow_UnparseableIsFalse(t *testing.T) {
	w := Window{Earliest: at(2000, 1, 1, 0, 0), Latest: at(3000, 1, 1, 0, 0)}

	for _, tc := range []struct{ date, time string }{
		{"2026-13-01", "09:00"},
		{"2026-10-12", "25:00"},
		{"", ""},
		{"2026-10-12", ""},
		{"tomorrow", "09:00"},
	} {
		assert.False(t, IsWithinWindow(tc.date, tc.time, w), "%s %s", tc.date, tc.time)
	}
}

func TestIsWithinWindow_Monotonic(t *testing.T) {
	now := at(2026, 10, 11, 8, 0)
	w := testPolicy().ComputeWindow(now, nil)

	before := []string{"2026-10-11 09:00", "2026-10-12 06:00", "2026-10-12 07:40"}
	inside := []string{"2026-10-12 08:20", "2026-10-14 00:00", "2026-10-18 07:40"}
	after := []string{"2026-10-18 08:20", "2026-10-19 09:00", "2026-11-01 10:00"}

	check := func(values []string, want bool) {
		for _, v := range values {
			date, hm := v[:10], v[11:]
			assert.Equal(t, want, IsWithinWindow(date, hm, w), v)
		}
	}
	check(before, false)
	check(inside, true)
	check(after, false)
}
