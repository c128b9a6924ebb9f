package holidays

import (
	"errors"
	"strings"
	"testing"
	"time"

	"fjacquet/pain-gen/internal/bankday"
	"fjacquet/pain-gen/internal/painerror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateSet(t *testing.T) {
	set := NewDateSet(day(2024, 1, 1))
	set.Add(time.Date(2024, 12, 24, 15, 30, 0, 0, time.FixedZone("CET", 3600)), "Christmas Eve")

	assert.True(t, set.Contains(day(2024, 1, 1)))
	assert.True(t, set.Contains(time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)))
	assert.True(t, set.Contains(day(2024, 12, 24)))
	assert.False(t, set.Contains(day(2024, 1, 2)))
	assert.Equal(t, "Christmas Eve", set.Name(day(2024, 12, 24)))
	assert.Equal(t, []time.Time{day(2024, 1, 1), day(2024, 12, 24)}, set.Dates())
}

func TestUnion(t *testing.T) {
	u := Union{NewDateSet(day(2024, 1, 1)), nil, NewDateSet(day(2024, 1, 2))}
	assert.True(t, u.Contains(day(2024, 1, 1)))
	assert.True(t, u.Contains(day(2024, 1, 2)))
	assert.False(t, u.Contains(day(2024, 1, 3)))
	assert.False(t, Union{}.Contains(day(2024, 1, 1)))
}

func TestNational(t *testing.T) {
	tests := []struct {
		country string
		holiday time.Time
		workday time.Time
	}{
		{"SE", day(2024, 1, 1), day(2024, 1, 2)},
		{"se", day(2024, 12, 25), day(2024, 12, 27)},
		{"NO", day(2024, 5, 17), day(2024, 5, 16)},
		{"DK", day(2024, 12, 25), day(2024, 12, 23)},
		{"FI", day(2024, 12, 6), day(2024, 12, 5)},
		{"FI midsummer eve", day(2024, 6, 21), day(2024, 6, 20)},
		{"FI good friday", day(2024, 3, 29), day(2024, 3, 28)},
		{"FI christmas eve", day(2024, 12, 24), day(2024, 12, 23)},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			set, ok := National(strings.Fields(tt.country)[0])
			require.True(t, ok)
			assert.True(t, set.Contains(tt.holiday))
			assert.False(t, set.Contains(tt.workday))
		})
	}

	_, ok := National("XX")
	assert.False(t, ok)
	assert.Equal(t, []string{"DK", "FI", "NO", "SE"}, NationalCountries())
}

func TestCalendarProvider(t *testing.T) {
	extra := map[string]DateSet{
		"se": NewDateSet(day(2024, 12, 24)),
		"XX": NewDateSet(day(2024, 3, 4)),
	}

	t.Run("national and extra are merged", func(t *testing.T) {
		p := NewProvider(true, extra)
		set, err := p.ForCountry("SE")
		require.NoError(t, err)
		assert.True(t, set.Contains(day(2024, 12, 24)))
		assert.True(t, set.Contains(day(2024, 12, 25)))
	})

	t.Run("file-only country is known", func(t *testing.T) {
		p := NewProvider(true, extra)
		set, err := p.ForCountry("xx")
		require.NoError(t, err)
		assert.True(t, set.Contains(day(2024, 3, 4)))
	})

	t.Run("unknown country", func(t *testing.T) {
		p := NewProvider(true, extra)
		_, err := p.ForCountry("ZZ")
		require.Error(t, err)
		assert.True(t, errors.Is(err, painerror.ErrUnknownCountry))

		var cerr *painerror.CalendarError
		require.True(t, errors.As(err, &cerr))
		assert.Equal(t, "ZZ", cerr.Country)
	})

	t.Run("national disabled", func(t *testing.T) {
		p := NewProvider(false, extra)
		set, err := p.ForCountry("SE")
		require.NoError(t, err)
		assert.True(t, set.Contains(day(2024, 12, 24)))
		assert.False(t, set.Contains(day(2024, 12, 25)))

		set, err = p.ForCountry("ZZ")
		require.NoError(t, err)
		assert.False(t, set.Contains(day(2024, 12, 25)))
	})

	t.Run("duplicate keys after normalisation are merged", func(t *testing.T) {
		p := NewProvider(false, map[string]DateSet{
			"NO": NewDateSet(day(2024, 1, 2)),
			"no": NewDateSet(day(2024, 1, 3)),
		})
		set, err := p.ForCountry("NO")
		require.NoError(t, err)
		assert.True(t, set.Contains(day(2024, 1, 2)))
		assert.True(t, set.Contains(day(2024, 1, 3)))
	})
}

func TestCalendarProvider_Calendar(t *testing.T) {
	p := NewProvider(true, nil)

	cal, err := p.Calendar("SE")
	require.NoError(t, err)
	assert.Equal(t, day(2024, 1, 2), cal.NextBankingDay(day(2023, 12, 29)))

	_, err = p.Calendar("ZZ")
	assert.Error(t, err)

	var _ Provider = p
	var _ bankday.HolidaySet = DateSet{}
}
