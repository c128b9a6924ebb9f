// Package holidays supplies the bank closing days behind bankday calendars:
// national public holidays plus extra dates read from a YAML file.
package holidays

import (
	"sort"
	"strings"
	"time"

	"fjacquet/pain-gen/internal/bankday"
	"fjacquet/pain-gen/internal/dateutils"
)

// Provider resolves the holiday set of a country (ISO 3166 alpha-2).
type Provider interface {
	ForCountry(country string) (bankday.HolidaySet, error)
}

// DateSet is an explicit set of dates with optional names.
type DateSet map[time.Time]string

// NewDateSet returns a set holding dates, unnamed.
func NewDateSet(dates ...time.Time) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s.Add(d, "")
	}
	return s
}

// Add inserts date under name. Times are reduced to their calendar date.
func (s DateSet) Add(date time.Time, name string) {
	s[dateutils.DateOf(date)] = name
}

// Contains reports whether date is in the set.
func (s DateSet) Contains(date time.Time) bool {
	_, ok := s[dateutils.DateOf(date)]
	return ok
}

// Name returns the name recorded for date.
func (s DateSet) Name(date time.Time) string {
	return s[dateutils.DateOf(date)]
}

// Dates returns the members in ascending order.
func (s DateSet) Dates() []time.Time {
	out := make([]time.Time, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Union contains a date when any member does.
type Union []bankday.HolidaySet

// Contains reports whether any member set contains date.
func (u Union) Contains(date time.Time) bool {
	for _, s := range u {
		if s != nil && s.Contains(date) {
			return true
		}
	}
	return false
}

// NormalizeCountry upper-cases and trims a country code.
func NormalizeCountry(country string) string {
	return strings.ToUpper(strings.TrimSpace(country))
}
