package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Wilfredo1970/Finanzas/internal/models"
)

// amountPattern is one amount-recognizing rule plus the currency it
// implies when it matches.
type amountPattern struct {
	re       *regexp.Regexp
	currency models.Currency
}

// Amount pattern families, tried in order. A family that matches but whose
// captured numeral fails normalization (or is not positive) yields to the
// next family, not to the next line.
var amountPatterns = []amountPattern{
	// $1.234.567,89 or $1,234.56
	{regexp.MustCompile(`\$\s*([0-9]{1,3}(?:[.,][0-9]{3})*(?:[.,][0-9]{2})?)`), models.CLP},
	// bare grouped number, optionally $-suffixed
	{regexp.MustCompile(`([0-9]{1,3}(?:[.,][0-9]{3})*(?:[.,][0-9]{2})?)\s*\$?`), models.CLP},
	// USD 123.45
	{regexp.MustCompile(`(?i)USD?\s*([0-9]+(?:[.,][0-9]{2})?)`), models.USD},
	// CLP 123,456
	{regexp.MustCompile(`(?i)CLP?\s*([0-9.,]+)`), models.CLP},
}

// NormalizeNumeral turns a raw numeric token (digits with '.' and/or ','
// separators) into a decimal value, deciding which separator is grouping
// and which is the decimal point:
//
//	"1.234.567" -> 1234567
//	"1,234.56"  -> 1234.56
//	"7,050.00"  -> 7050.00
//	"45,000"    -> 45000
//
// When both separators appear, the later one is the decimal point. A lone
// separator followed by more than two digits is grouping.
func NormalizeNumeral(token string) (decimal.Decimal, bool) {
	s := token
	dot := strings.LastIndex(s, ".")
	comma := strings.LastIndex(s, ",")
	switch {
	case dot >= 0 && comma >= 0:
		if dot > comma {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		}
	case comma >= 0:
		s = strings.ReplaceAll(s, ",", ".")
		s = stripGroupingDots(s)
	case dot >= 0:
		s = stripGroupingDots(s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func stripGroupingDots(s string) string {
	last := strings.LastIndex(s, ".")
	if last < 0 {
		return s
	}
	if strings.Count(s, ".") > 1 || len(s)-last-1 > 2 {
		return strings.ReplaceAll(s, ".", "")
	}
	return s
}

// ExtractAmount finds a positive amount in a line and returns it together
// with the initial currency guess implied by the matching pattern family
// and the literal matched substring. Reports ok=false only after every
// family has been exhausted.
func ExtractAmount(line string) (amount decimal.Decimal, guess models.Currency, matched string, ok bool) {
	for _, fam := range amountPatterns {
		m := fam.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value, valid := NormalizeNumeral(m[1])
		if !valid || !value.IsPositive() {
			continue
		}
		return value, fam.currency, m[0], true
	}
	return decimal.Decimal{}, models.CLP, "", false
}

// usdTokenPattern matches "usd" or "us" as whole tokens. A plain substring
// test would misfire on words like SUBSCRIPTION.
var usdTokenPattern = regexp.MustCompile(`(?i)\b(usd|us)\b`)

// usdBilledBrands are services billed in USD whose statement amounts are
// small enough that a CLP reading would be implausible.
var usdBilledBrands = []string{"openai", "spotify", "netflix", "apple"}

var usdSmallAmount = decimal.NewFromInt(1000)

// InferCurrency refines the initial currency guess from line-local
// context. It never consults document-level bank detection.
func InferCurrency(line string, amount decimal.Decimal, guess models.Currency) models.Currency {
	lower := strings.ToLower(line)
	if usdTokenPattern.MatchString(lower) {
		return models.USD
	}
	if amount.LessThan(usdSmallAmount) {
		for _, brand := range usdBilledBrands {
			if strings.Contains(lower, brand) {
				return models.USD
			}
		}
	}
	return guess
}
