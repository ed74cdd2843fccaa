package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Plural categories as defined by Unicode CLDR. They double as key suffixes:
// "items_one", "items_few", "items_other".
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// PluralCategory returns the CLDR cardinal category of n for the given locale.
func PluralCategory(locale string, n int) string {
	if n < 0 {
		n = -n
	}

	switch plural.Cardinal.MatchPlural(language.Make(locale), n, 0, 0, 0, 0) {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}
