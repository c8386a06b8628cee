package scraper

import (
	"strings"
	"unicode"

	apperr "edelgado544/ecomscraper/pkg/errors"
)

// symbolCurrencies maps unambiguous currency symbols to ISO codes.
// "$" is ambiguous and resolved through the profile and domain.
var symbolCurrencies = map[rune]string{
	'€': "EUR",
	'£': "GBP",
}

// NormalizePrice parses locale-formatted price text into a canonical
// decimal-text amount plus a currency code. A trailing 3-letter code takes
// precedence over a symbol; the amount keeps arbitrary precision as text and
// is never run through a float. Fails with a price error when no digit
// survives the cleanup; callers recover by omitting the field.
func NormalizePrice(raw string, profile SiteProfile, domain string) (string, string, error) {
	compact := stripWhitespace(raw)
	if compact == "" {
		return "", "", apperr.NewPrice("empty price text", nil)
	}

	currency := detectCurrency(compact, profile, domain)

	// Keep only digits and separator candidates
	var cleaned strings.Builder
	for _, r := range compact {
		if unicode.IsDigit(r) || r == ',' || r == '.' {
			cleaned.WriteRune(r)
		}
	}

	amount := resolveSeparators(cleaned.String())
	if !strings.ContainsFunc(amount, unicode.IsDigit) {
		return "", "", apperr.NewPrice("no digits in price text: "+raw, nil)
	}

	return amount, currency, nil
}

// detectCurrency picks the currency for a price string. Precedence: trailing
// 3-letter code, unambiguous symbol, profile override, domain TLD hint, USD.
func detectCurrency(compact string, profile SiteProfile, domain string) string {
	if code, ok := trailingCode(compact); ok {
		return code
	}
	for symbol, code := range symbolCurrencies {
		if strings.ContainsRune(compact, symbol) {
			return code
		}
	}
	return currencyForDomain(profile, domain)
}

// trailingCode reports a trailing 3-letter alphabetic code such as "USD"
func trailingCode(s string) (string, bool) {
	runes := []rune(s)
	n := len(runes)
	if n < 3 {
		return "", false
	}
	for i := n - 3; i < n; i++ {
		if !unicode.IsLetter(runes[i]) {
			return "", false
		}
	}
	// A longer trailing word is not a currency code
	if n > 3 && unicode.IsLetter(runes[n-4]) {
		return "", false
	}
	return strings.ToUpper(string(runes[n-3:])), true
}

// currencyForDomain infers the currency when the text carries no explicit
// indicator, or resolves the ambiguous "$" symbol
func currencyForDomain(profile SiteProfile, domain string) string {
	if profile.Currency != "" {
		return profile.Currency
	}
	switch {
	case strings.Contains(domain, ".com.ar"):
		return "ARS"
	case strings.Contains(domain, ".mx"):
		return "MXN"
	case strings.Contains(domain, ".es"), strings.Contains(domain, ".fr"), strings.Contains(domain, ".de"):
		return "EUR"
	}
	return "USD"
}

// resolveSeparators disambiguates decimal from grouping separators. When both
// "," and "." appear, the rightmost is the decimal separator and the other is
// grouping. A lone separator type is decimal only when exactly two digits
// follow its single occurrence; otherwise it is grouping and removed.
func resolveSeparators(s string) string {
	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		decimal, grouping := ".", ","
		if lastComma > lastDot {
			decimal, grouping = ",", "."
		}
		s = strings.ReplaceAll(s, grouping, "")
		// Earlier occurrences of the decimal char are grouping too
		if c := strings.Count(s, decimal); c > 1 {
			s = strings.Replace(s, decimal, "", c-1)
		}
		return strings.Replace(s, decimal, ".", 1)

	case lastComma >= 0:
		if strings.Count(s, ",") == 1 && len(s)-lastComma-1 == 2 {
			return strings.Replace(s, ",", ".", 1)
		}
		return strings.ReplaceAll(s, ",", "")

	case lastDot >= 0:
		if strings.Count(s, ".") == 1 && len(s)-lastDot-1 == 2 {
			return s
		}
		return strings.ReplaceAll(s, ".", "")
	}
	return s
}

// stripWhitespace removes every whitespace rune
func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
