package models

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Price is the normalized form of a listing's display price. Amount is 0
// when the source string carried no parseable number.
type Price struct {
	Amount   float64
	Currency string
	Display  string
}

// ParsePrice splits a free-text price ("$409.99", "USD 1,199") into a
// numeric amount and a currency token. An empty input is not an error; it
// simply yields a zero amount.
func ParsePrice(price string) (float64, string, error) {
	price = strings.TrimSpace(price)

	if price == "" {
		return 0, "", nil
	}

	currency, number := "", ""

	for _, char := range price {
		currency, number = processCharacter(char, currency, number)
	}

	float, err := strconv.ParseFloat(number, 64)

	if err != nil {
		return 0, "", err
	}

	return float, currency, nil
}

// NormalizePrice wraps ParsePrice, keeping the original display string for
// listings whose price text cannot be parsed. Parseable prices get a
// compacted display so "$ 409.99" and "$409.99" come out the same.
func NormalizePrice(display string) Price {
	display = strings.TrimSpace(display)

	amount, currency, err := ParsePrice(display)
	if err != nil {
		return Price{Display: display}
	}
	return Price{Amount: amount, Currency: currency, Display: compactDisplay(display)}
}

// compactDisplay removes interior whitespace from symbol-prefixed prices.
// Letter-prefixed currencies ("USD 409") keep their spacing.
func compactDisplay(display string) string {
	runes := []rune(display)
	if len(runes) == 0 || unicode.IsLetter(runes[0]) {
		return display
	}
	return strings.Join(strings.Fields(display), "")
}

// FormatPriceRange renders a catalog min/max price pair the way listings
// display it, e.g. "$350 - $400".
func FormatPriceRange(min, max int) string {
	if min == max {
		return fmt.Sprintf("$%d", min)
	}
	return fmt.Sprintf("$%d - $%d", min, max)
}

func processCharacter(char rune, currency, number string) (string, string) {
	if isSpaceOrPlus(char) {
		return currency, number
	} else if isSeparatorChar(char) {
		number += "."
	} else if unicode.IsDigit(char) {
		number += string(char)
	} else {
		currency += string(char)
	}
	return currency, number
}

func isSeparatorChar(char rune) bool {
	return char == '.' || char == ','
}

func isSpaceOrPlus(char rune) bool {
	return char == ' ' || char == '+'
}
