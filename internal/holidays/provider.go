package holidays

import (
	"fjacquet/pain-gen/internal/bankday"
	"fjacquet/pain-gen/internal/painerror"
)

// CalendarProvider merges national public holidays with extra closing days.
type CalendarProvider struct {
	national bool
	extra    map[string]DateSet
}

// NewProvider returns a provider. With national disabled every country is
// known and only the extra dates apply.
func NewProvider(national bool, extra map[string]DateSet) *CalendarProvider {
	normalized := make(map[string]DateSet, len(extra))
	for c, set := range extra {
		code := NormalizeCountry(c)
		merged, ok := normalized[code]
		if !ok {
			merged = DateSet{}
			normalized[code] = merged
		}
		for d, name := range set {
			merged.Add(d, name)
		}
	}
	return &CalendarProvider{national: national, extra: normalized}
}

// ForCountry returns the union of the national calendar and the extra dates
// for country. A country with neither fails with ErrUnknownCountry.
func (p *CalendarProvider) ForCountry(country string) (bankday.HolidaySet, error) {
	code := NormalizeCountry(country)
	extra, hasExtra := p.extra[code]

	if !p.national {
		if !hasExtra {
			return DateSet{}, nil
		}
		return extra, nil
	}

	national, hasNational := National(code)
	switch {
	case hasNational && hasExtra:
		return Union{national, extra}, nil
	case hasNational:
		return national, nil
	case hasExtra:
		return extra, nil
	default:
		return nil, &painerror.CalendarError{Kind: painerror.ErrUnknownCountry, Country: code}
	}
}

// Calendar is ForCountry wrapped in a bankday.Calendar.
func (p *CalendarProvider) Calendar(country string) (bankday.Calendar, error) {
	set, err := p.ForCountry(country)
	if err != nil {
		return bankday.Calendar{}, err
	}
	return bankday.NewCalendar(set), nil
}
