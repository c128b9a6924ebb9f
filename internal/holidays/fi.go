package holidays

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/aa"
)

// finnishHolidays are the days Finnish banks are closed. rickar/cal ships no
// Finnish calendar, so it is assembled from the shared definitions.
var finnishHolidays = []*cal.Holiday{
	aa.NewYear.Clone(&cal.Holiday{Name: "Uudenvuodenpäivä", Type: cal.ObservancePublic}),
	aa.Epiphany.Clone(&cal.Holiday{Name: "Loppiainen", Type: cal.ObservancePublic}),
	aa.GoodFriday.Clone(&cal.Holiday{Name: "Pitkäperjantai", Type: cal.ObservancePublic}),
	aa.EasterMonday.Clone(&cal.Holiday{Name: "Toinen pääsiäispäivä", Type: cal.ObservancePublic}),
	aa.WorkersDay.Clone(&cal.Holiday{Name: "Vappu", Type: cal.ObservancePublic}),
	aa.AscensionDay.Clone(&cal.Holiday{Name: "Helatorstai", Type: cal.ObservancePublic}),
	{
		// first Friday on or after 19-Jun
		Name:    "Juhannusaatto",
		Type:    cal.ObservancePublic,
		Month:   time.June,
		Day:     19,
		Offset:  1,
		Weekday: time.Friday,
		Func:    cal.CalcWeekdayFrom,
	},
	{
		Name:  "Itsenäisyyspäivä",
		Type:  cal.ObservancePublic,
		Month: time.December,
		Day:   6,
		Func:  cal.CalcDayOfMonth,
	},
	{
		Name:  "Jouluaatto",
		Type:  cal.ObservanceBank,
		Month: time.December,
		Day:   24,
		Func:  cal.CalcDayOfMonth,
	},
	aa.ChristmasDay.Clone(&cal.Holiday{Name: "Joulupäivä", Type: cal.ObservancePublic}),
	aa.ChristmasDay2.Clone(&cal.Holiday{Name: "Tapaninpäivä", Type: cal.ObservancePublic}),
}
