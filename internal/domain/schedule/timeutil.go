package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	dateTimeLayout = DateLayout + " " + TimeLayout
)

// DateToKey formats the date's own calendar fields as YYYY-MM-DD.
// The value is never converted to UTC first.
func DateToKey(date time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", date.Year(), int(date.Month()), date.Day())
}

// ParseDateKey parses a YYYY-MM-DD key as midnight in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, key, loc)
}

// TimeToMinutes converts "HH:MM" to minutes after midnight. Empty or
// unreadable parts count as zero.
func TimeToMinutes(hm string) int {
	if hm == "" {
		return 0
	}
	h, m, _ := strings.Cut(hm, ":")
	hours, _ := strconv.Atoi(strings.TrimSpace(h))
	minutes, _ := strconv.Atoi(strings.TrimSpace(m))
	return hours*60 + minutes
}

// MinutesToTime is the inverse of TimeToMinutes. Hours are not wrapped,
// so 1500 becomes "25:00".
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatDisplayTime renders "HH:MM" as "hh:mm AM/PM".
func FormatDisplayTime(hm string) string {
	if hm == "" {
		return ""
	}
	total := TimeToMinutes(hm)
	h, m := (total/60)%24, total%60

	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h12, m, suffix)
}

func CapitalizeFirst(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return text
	}
	return cases.Upper(language.Und).String(string(r)) + text[size:]
}
