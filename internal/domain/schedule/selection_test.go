package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	providerA = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	providerB = uuid.MustParse("00000000-0000-0000-0000-00000000000b")
)

func testUniverse() Universe {
	return Universe{
		providerA: mondayAndWednesday(),
		providerB: {time.Tuesday: {{Start: "15:00", End: "16:00"}}},
	}
}

func sundayMorning() (Resolver, Window, time.Time) {
	now := at(2026, 10, 11, 8, 0)
	return NewResolver(20, 7, NewLabeler("pt")), testPolicy().ComputeWindow(now, nil), now
}

func TestSelectProvider_EmptyUniverse(t *testing.T) {
	r, w, now := sundayMorning()
	prev := Selection{State: StateTimeSelected, ProviderID: providerA, Date: "2026-10-12", Time: "09:00"}

	sel := r.SelectProvider(prev, providerA, Universe{}, w, now)

	assert.Equal(t, StateNoProvider, sel.State)
	assert.ErrorIs(t, sel.Condition, ErrNoAvailabilityPublished)
	assert.Empty(t, sel.Date)
	assert.Empty(t, sel.Time)
	assert.Empty(t, sel.DateOptions)
	assert.Empty(t, sel.TimeOptions)
}

func TestSelectProvider_UnknownProvider(t *testing.T) {
	r, w, now := sundayMorning()

	sel := r.SelectProvider(Selection{}, uuid.New(), testUniverse(), w, now)

	assert.Equal(t, StateProviderSelected, sel.State)
	assert.ErrorIs(t, sel.Condition, ErrNoAvailabilityPublished)
}

func TestSelectProvider_NoDatesInWindow(t *testing.T) {
	now := at(2026, 10, 12, 8, 50)
	w := testPolicy().ComputeWindow(now, nil)
	r := NewResolver(20, 7, NewLabeler("pt"))
	universe := Universe{providerA: mondayOnly("09:00", "10:00")}

	sel := r.SelectProvider(Selection{}, providerA, universe, w, now)

	assert.Equal(t, StateProviderSelected, sel.State)
	assert.ErrorIs(t, sel.Condition, ErrNoDatesInWindow)
	assert.Empty(t, sel.DateOptions)
}

func TestSelectProvider_PicksFirstDateAndTime(t *testing.T) {
	r, w, now := sundayMorning()

	sel := r.SelectProvider(Selection{}, providerA, testUniverse(), w, now)

	require.NoError(t, sel.Condition)
	assert.Equal(t, StateTimeSelected, sel.State)
	assert.Equal(t, "2026-10-12", sel.Date)
	assert.Equal(t, "09:00", sel.Time)
	assert.Len(t, sel.DateOptions, 2)
	assert.Len(t, sel.TimeOptions, 3)
}

func TestSelectProvider_KeepsStillValidSelection(t *testing.T) {
	r, w, now := sundayMorning()
	prev := Selection{State: StateTimeSelected, ProviderID: providerB, Date: "2026-10-14", Time: "09:20"}

	sel := r.SelectProvider(prev, providerA, testUniverse(), w, now)

	assert.Equal(t, "2026-10-14", sel.Date)
	assert.Equal(t, "09:20", sel.Time)
	assert.Equal(t, StateTimeSelected, sel.State)
}

func TestSelectProvider_ResetsInvalidSelection(t *testing.T) {
	r, w, now := sundayMorning()
	prev := r.SelectProvider(Selection{}, providerA, testUniverse(), w, now)
	prev = r.SelectTime(prev, "09:40")

	sel := r.SelectProvider(prev, providerB, testUniverse(), w, now)

	assert.Equal(t, providerB, sel.ProviderID)
	assert.Equal(t, "2026-10-13", sel.Date)
	assert.Equal(t, "15:00", sel.Time)
}

func TestSelectProvider_Idempotent(t *testing.T) {
	r, w, now := sundayMorning()

	first := r.SelectProvider(Selection{}, providerA, testUniverse(), w, now)
	second := r.SelectProvider(Selection{}, providerA, testUniverse(), w, now)

	assert.Equal(t, first, second)
}

func TestSelectDate_NoTimes(t *testing.T) {
	r, w, now := sundayMorning()
	prev := r.SelectProvider(Selection{}, providerA, testUniverse(), w, now)

	sel := r.SelectDate(prev, "2026-10-13", testUniverse(), w)

	assert.Equal(t, StateDateSelected, sel.State)
	assert.ErrorIs(t, sel.Condition, ErrNoTimesForDate)
	assert.Empty(t, sel.Time)
	assert.Empty(t, sel.TimeOptions)
	assert.Equal(t, prev.DateOptions, sel.DateOptions)
}

func TestSelectDate_KeepsTime(t *testing.T) {
	r, w, now := sundayMorning()
	prev := r.SelectProvider(Selection{}, providerA, testUniverse(), w, now)
	prev = r.SelectTime(prev, "09:40")

	sel := r.SelectDate(prev, "2026-10-14", testUniverse(), w)

	require.NoError(t, sel.Condition)
	assert.Equal(t, "2026-10-14", sel.Date)
	assert.Equal(t, "09:40", sel.Time)
}

func TestSelectDate_Unparseable(t *testing.T) {
	r, w, now := sundayMorning()
	prev := r.SelectProvider(Selection{}, providerA, testUniverse(), w, now)

	sel := r.SelectDate(prev, "next monday", testUniverse(), w)

	assert.Equal(t, StateProviderSelected, sel.State)
	assert.ErrorIs(t, sel.Condition, ErrNoTimesForDate)
	assert.Empty(t, sel.Date)
}

func TestSelectDate_WithoutProvider(t *testing.T) {
	r, w, _ := sundayMorning()
	prev := Selection{State: StateNoProvider, Condition: ErrNoAvailabilityPublished}

	assert.Equal(t, prev, r.SelectDate(prev, "2026-10-12", testUniverse(), w))
}

func TestSelectTime(t *testing.T) {
	r, w, now := sundayMorning()
	prev := r.SelectProvider(Selection{}, providerA, testUniverse(), w, now)

	ok := r.SelectTime(prev, "09:20")
	assert.Equal(t, StateTimeSelected, ok.State)
	assert.Equal(t, "09:20", ok.Time)

	bad := r.SelectTime(prev, "09:10")
	assert.Equal(t, StateDateSelected, bad.State)
	assert.Empty(t, bad.Time)

	none := r.SelectTime(Selection{}, "09:20")
	assert.Equal(t, StateNoProvider, none.State)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "no_provider", StateNoProvider.String())
	assert.Equal(t, "provider_selected", StateProviderSelected.String())
	assert.Equal(t, "date_selected", StateDateSelected.String())
	assert.Equal(t, "time_selected", StateTimeSelected.String())
}
