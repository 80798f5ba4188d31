package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol prefixes every formatted price.
const CurrencySymbol = "₱"

// ValidationError is a user-facing input problem. Msg is shown as-is in the page banner.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

const (
	msgPriceRequired = "Price required"
	msgPriceInvalid  = "Invalid price"
	msgPriceNegative = "Price cannot be negative"
	msgPriceTooLarge = "Price too large"
)

// ParsePrice converts user input such as " 1,249.50 " into minor units (124950).
// Thousands commas are dropped; the value is multiplied by 100 and rounded half to even.
// There is no business upper bound, but the result must fit int64 minor units:
// anything at or above 2^63 fails with "Price too large".
func ParsePrice(raw string) (int64, error) {
	txt := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if txt == "" {
		return 0, &ValidationError{Msg: msgPriceRequired}
	}
	value, err := strconv.ParseFloat(txt, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &ValidationError{Msg: msgPriceInvalid}
	}
	if value < 0 {
		return 0, &ValidationError{Msg: msgPriceNegative}
	}
	cents := math.RoundToEven(value * 100)
	if cents >= math.MaxInt64 {
		return 0, &ValidationError{Msg: msgPriceTooLarge}
	}
	return int64(cents), nil
}

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders minor units as "₱1,249.50".
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%s%s.%02d", CurrencySymbol, sign, pricePrinter.Sprintf("%d", cents/100), cents%100)
}
