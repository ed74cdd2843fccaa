package i18n

import (
	"slices"
	"strings"
)

// Translator is a request-scoped view over a Table: a fixed locale and the
// ordered namespaces a route needs. The table's default namespace is always
// appended as the last fallback.
type Translator struct {
	table      *Table
	locale     string
	namespaces []string
}

// NewTranslator creates a translator for locale and namespaces.
// An unsupported locale falls back to the table default.
func NewTranslator(table *Table, locale string, namespaces ...string) *Translator {
	if table == nil {
		panic("i18n: table is not provided")
	}

	if matched, ok := table.Match(locale); ok {
		locale = matched
	} else {
		locale = table.DefaultLocale()
	}

	ns := make([]string, 0, len(namespaces)+1)
	for _, n := range namespaces {
		if n != "" && !slices.Contains(ns, n) {
			ns = append(ns, n)
		}
	}
	if !slices.Contains(ns, table.DefaultNamespace()) {
		ns = append(ns, table.DefaultNamespace())
	}

	return &Translator{table: table, locale: locale, namespaces: ns}
}

// Locale returns the translator's locale.
func (t *Translator) Locale() string {
	return t.locale
}

// Namespaces returns the lookup order of namespaces.
func (t *Translator) Namespaces() []string {
	return slices.Clone(t.namespaces)
}

// WithNamespaces returns a translator for the same locale over ns.
func (t *Translator) WithNamespaces(ns ...string) *Translator {
	return NewTranslator(t.table, t.locale, ns...)
}

// Locales returns the supported locales of the underlying table.
func (t *Translator) Locales() []string {
	return t.table.Locales()
}

// T translates key. A "ns:key" form restricts the lookup to one namespace.
// Returns the key itself when no translation exists.
func (t *Translator) T(key string, placeholders ...M) string {
	text, ok := t.resolve(key)
	if !ok {
		return key
	}
	return ReplacePlaceholders(text, mergePlaceholders(placeholders...))
}

// Tn translates key using the plural form of n for the translator's locale.
// It tries key_{form}, then key_other, then key. n is available as {{count}}.
func (t *Translator) Tn(key string, n int, placeholders ...M) string {
	values := M{"count": n}
	for _, p := range placeholders {
		for k, v := range p {
			values[k] = v
		}
	}

	form := PluralCategory(t.locale, n)
	candidates := []string{key + "_" + form}
	if form != PluralOther {
		candidates = append(candidates, key+"_"+PluralOther)
	}
	candidates = append(candidates, key)

	for _, c := range candidates {
		if text, ok := t.find(c); ok {
			return ReplacePlaceholders(text, values)
		}
	}

	t.reportMissing(key)
	return key
}

// Exists reports whether key resolves in any candidate namespace or locale.
func (t *Translator) Exists(key string) bool {
	_, ok := t.find(key)
	return ok
}

func (t *Translator) resolve(key string) (string, bool) {
	if text, ok := t.find(key); ok {
		return text, true
	}
	t.reportMissing(key)
	return "", false
}

func (t *Translator) find(key string) (string, bool) {
	namespaces := t.namespaces
	if ns, k, ok := strings.Cut(key, ":"); ok && ns != "" {
		namespaces, key = []string{ns}, k
	}

	for _, ns := range namespaces {
		if text, ok := t.table.lookup(t.locale, ns, key); ok {
			return text, true
		}
	}
	return "", false
}

func (t *Translator) reportMissing(key string) {
	ns := t.namespaces[0]
	if n, k, ok := strings.Cut(key, ":"); ok && n != "" {
		ns, key = n, k
	}
	t.table.missing(t.locale, ns, key)
}
