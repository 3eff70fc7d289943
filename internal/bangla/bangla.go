// Package bangla renders amounts the way the mosque's public dashboard
// displays them: grouped decimal numbers with Bengali digits and a
// trailing taka glyph.
package bangla

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// The two tables are exact inverses of each other. Substitution only
// touches the ten digit characters, everything else passes through.
var toBangla = map[rune]rune{
	'0': '০', '1': '১', '2': '২', '3': '৩', '4': '৪',
	'5': '৫', '6': '৬', '7': '৭', '8': '৮', '9': '৯',
}

var toEnglish = map[rune]rune{
	'০': '0', '১': '1', '২': '2', '৩': '3', '৪': '4',
	'৫': '5', '৬': '6', '৭': '7', '৮': '8', '৯': '9',
}

var printer = message.NewPrinter(language.English)

// ToBanglaDigits replaces every ASCII digit in s with its Bengali
// counterpart.
func ToBanglaDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if b, ok := toBangla[r]; ok {
			return b
		}
		return r
	}, s)
}

// ToEnglishDigits replaces every Bengali digit in s with its ASCII
// counterpart. It is the inverse of ToBanglaDigits and is used to parse
// user input back into numeric values.
func ToEnglishDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if e, ok := toEnglish[r]; ok {
			return e
		}
		return r
	}, s)
}

// Taka formats an amount with the given number of fraction digits,
// thousands grouping and the taka glyph, e.g. "১,২৩৪.৫০৳".
// Negative amounts keep their sign so deficits render distinctly.
//
// Grouping works on the exact decimal digits. Amounts near the
// DECIMAL(20,8) ceiling do not survive a float64 round-trip.
func Taka(amount decimal.Decimal, frac int) string {
	fixed := amount.StringFixed(int32(frac))

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		intPart = printer.Sprint(number.Decimal(n))
	}

	if hasFrac {
		intPart += "." + fracPart
	}

	return ToBanglaDigits(sign+intPart) + "৳"
}
