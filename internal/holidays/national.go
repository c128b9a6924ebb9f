package holidays

import (
	"sort"
	"time"

	"fjacquet/pain-gen/internal/bankday"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/dk"
	"github.com/rickar/cal/v2/no"
	"github.com/rickar/cal/v2/se"
)

var nationalHolidays = map[string][]*cal.Holiday{
	"SE": se.Holidays,
	"NO": no.Holidays,
	"DK": dk.Holidays,
	"FI": finnishHolidays,
}

// NationalCountries lists the countries with a built-in public holiday calendar.
func NationalCountries() []string {
	out := make([]string, 0, len(nationalHolidays))
	for c := range nationalHolidays {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// calendarSet adapts a rickar calendar. Both the actual date and the
// observed date of a holiday count as closed.
type calendarSet struct {
	cal *cal.Calendar
}

func (s calendarSet) Contains(date time.Time) bool {
	actual, observed, _ := s.cal.IsHoliday(date)
	return actual || observed
}

// National returns the built-in public holiday set for country.
func National(country string) (bankday.HolidaySet, bool) {
	hs, ok := nationalHolidays[NormalizeCountry(country)]
	if !ok {
		return nil, false
	}
	c := &cal.Calendar{}
	c.AddHoliday(hs...)
	return calendarSet{cal: c}, true
}
