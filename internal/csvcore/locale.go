package csvcore

// Locale carries the decimal/group separators and currency symbols the
// numeric parser (§4.5) accepts for one configured locale. Grounded on
// golang.org/x/text/language + golang.org/x/text/currency: the table is
// derived once per locale tag rather than hand-rolled per-country data,
// the way the corpus's x/text-dependent repos resolve locale-sensitive
// formatting.

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Locale is an immutable numeric-formatting profile.
type Locale struct {
	Tag          language.Tag
	DecimalSep   byte
	GroupSep     byte // 0 means grouping is not recognized
	CurrencySyms []string
}

// CLocale is the POSIX "C" locale: '.' decimal point, no grouping, no
// currency symbol, matching spec.md §4.5's stated fallback.
func CLocale() Locale {
	return Locale{Tag: language.Und, DecimalSep: '.'}
}

// NewLocale resolves tagName (e.g. "en_US", "de_DE") via
// golang.org/x/text/language and golang.org/x/text/currency into a Locale.
// Separators follow the common Western convention for the tag's region
// except where the region is known to swap them (comma-decimal locales).
func NewLocale(tagName string) (Locale, error) {
	tag, err := language.Parse(normalizeTag(tagName))
	if err != nil {
		return Locale{}, &LookupError{Kind: "locale", Name: tagName}
	}

	loc := Locale{Tag: tag, DecimalSep: '.', GroupSep: ','}
	if usesCommaDecimal(tag) {
		loc.DecimalSep = ','
		loc.GroupSep = '.'
	}

	if unit, err := currency.FromTag(tag); err == nil {
		sym := currency.Symbol(unit).String()
		if sym != "" {
			loc.CurrencySyms = append(loc.CurrencySyms, sym)
		}
		narrow := currency.NarrowSymbol(unit).String()
		if narrow != "" && narrow != sym {
			loc.CurrencySyms = append(loc.CurrencySyms, narrow)
		}
	}
	return loc, nil
}

func normalizeTag(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

// usesCommaDecimal reports whether tag's region conventionally writes
// decimals with a comma (most of continental Europe and Latin America).
func usesCommaDecimal(tag language.Tag) bool {
	base, _ := tag.Base()
	switch base.String() {
	case "de", "fr", "es", "it", "pt", "nl", "pl", "ru", "tr", "sv", "fi", "da", "nb", "cs", "sk", "ro", "el":
		return true
	}
	return false
}
