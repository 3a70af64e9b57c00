package schedule

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

type calendarNames struct {
	weekdays [7]string
	months   [12]string
	format   func(weekday string, day int, month string) string
}

var supportedLocales = []language.Tag{
	language.Portuguese,
	language.Spanish,
	language.English,
}

var localeNames = map[language.Tag]calendarNames{
	language.Portuguese: {
		weekdays: [7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
		months:   [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
		format: func(weekday string, day int, month string) string {
			return fmt.Sprintf("%s, %d de %s", weekday, day, month)
		},
	},
	language.Spanish: {
		weekdays: [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		months:   [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		format: func(weekday string, day int, month string) string {
			return fmt.Sprintf("%s, %d de %s", weekday, day, month)
		},
	},
	language.English: {
		weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		months:   [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		format: func(weekday string, day int, month string) string {
			return fmt.Sprintf("%s, %s %d", weekday, month, day)
		},
	},
}

var localeMatcher = language.NewMatcher(supportedLocales)

// Labeler renders "weekday, day month" date labels for one locale.
type Labeler struct {
	tag   language.Tag
	names calendarNames
}

// NewLabeler picks the closest supported locale; unknown input falls back
// to Portuguese.
func NewLabeler(locale string) Labeler {
	_, idx, _ := localeMatcher.Match(language.Make(locale))
	tag := supportedLocales[idx]
	return Labeler{tag: tag, names: localeNames[tag]}
}

func (l Labeler) Locale() string {
	if l.names.format == nil {
		return language.Portuguese.String()
	}
	return l.tag.String()
}

func (l Labeler) Label(date time.Time) string {
	names := l.names
	if names.format == nil {
		names = localeNames[language.Portuguese]
	}
	text := names.format(
		names.weekdays[date.Weekday()],
		date.Day(),
		names.months[date.Month()-1],
	)
	return CapitalizeFirst(text)
}
