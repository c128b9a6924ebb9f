package painerror

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name: "payment level",
			err: &ValidationError{
				Kind:  ErrInvalidAmount,
				Index: 2,
				Field: "amount",
				Value: "-10",
			},
			expected: "invalid amount: payment 2: amount='-10'",
		},
		{
			name: "run level",
			err: &ValidationError{
				Kind:  ErrEmptyPaymentSet,
				Index: -1,
				Field: "payments",
				Value: "0",
			},
			expected: "empty payment set: payments='0'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestValidationError_Is(t *testing.T) {
	var err error = &ValidationError{Kind: ErrInvalidCurrency, Index: 0, Field: "currency", Value: "sek"}

	assert.True(t, errors.Is(err, ErrInvalidCurrency))
	assert.False(t, errors.Is(err, ErrInvalidAmount))

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "currency", verr.Field)
}

func TestCalendarError(t *testing.T) {
	t.Run("without window", func(t *testing.T) {
		err := &CalendarError{Kind: ErrNoBankingDayInMonth, Country: "SE", Year: 2024, Month: time.February}
		assert.Equal(t, "no banking day in month: SE 2024-02", err.Error())
		assert.ErrorIs(t, err, ErrNoBankingDayInMonth)
	})

	t.Run("with window", func(t *testing.T) {
		err := &CalendarError{
			Kind:    ErrInvertedBankingWindow,
			Country: "SE",
			Year:    2024,
			Month:   time.January,
			Floor:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Ceiling: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		}
		assert.Equal(t, "inverted banking window: SE 2024-01: last banking day 2024-01-31 precedes next banking day 2024-02-01", err.Error())
		assert.ErrorIs(t, err, ErrInvertedBankingWindow)
	})

	t.Run("country only", func(t *testing.T) {
		err := &CalendarError{Kind: ErrUnknownCountry, Country: "XX"}
		assert.Equal(t, "unknown holiday calendar country: 'XX'", err.Error())
		assert.ErrorIs(t, err, ErrUnknownCountry)
	})
}

func TestParseError(t *testing.T) {
	original := errors.New("can't convert")
	err := &ParseError{Source: "payments.csv", Row: 3, Field: "amount", Value: "abc", Err: original}

	assert.Equal(t, "payments.csv: row 3: failed to parse amount='abc': can't convert", err.Error())
	assert.Equal(t, original, err.Unwrap())
	assert.True(t, errors.Is(err, original))
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{
		FilePath:       "/tmp/payments.txt",
		ExpectedFormat: ".json, .csv or .xlsx",
		Msg:            "unsupported extension",
	}
	assert.Equal(t, "invalid format in file '/tmp/payments.txt': unsupported extension. Expected: .json, .csv or .xlsx", err.Error())
}
