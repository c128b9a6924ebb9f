// Package currencyutils provides common currency and decimal operations used throughout the application.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// MinorUnitPlaces is the number of fractional digits rendered for every amount.
const MinorUnitPlaces int32 = 2

var (
	currencyCode = regexp.MustCompile(`^[A-Z]{3}$`)
	// symbols, ISO codes and every flavour of space a spreadsheet export may carry
	amountNoise = regexp.MustCompile(`[€$£¥A-Za-z\s\x{00A0}\x{202F}]`)
)

// IsCurrencyCode reports whether code looks like an ISO 4217 alphabetic code.
func IsCurrencyCode(code string) bool {
	return currencyCode.MatchString(code)
}

// ParseAmount parses a string representation of an amount into a decimal value
// It handles formats like "1 234,56", "1.234,56", "1'234.56", "SEK 1234.56".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': empty", amountStr)
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount converts various amount spellings to a form decimal.NewFromString accepts
func StandardizeAmount(amountStr string) string {
	amountStr = amountNoise.ReplaceAllString(amountStr, "")
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	hasComma := strings.Contains(amountStr, ",")
	hasDot := strings.Contains(amountStr, ".")

	switch {
	case hasComma && hasDot:
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// 1.234,56
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// 1,234.56
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	case hasComma:
		parts := strings.Split(amountStr, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			amountStr = strings.Replace(amountStr, ",", ".", 1)
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	return amountStr
}

// FormatAmount renders an amount with exactly two fractional digits and no grouping.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MinorUnitPlaces)
}

// HasMinorUnitPrecision reports whether amount needs no rounding to be rendered
// with two fractional digits.
func HasMinorUnitPrecision(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(MinorUnitPlaces))
}

// IsPositive checks if an amount is strictly greater than zero
func IsPositive(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}

// Sum adds amounts exactly.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
