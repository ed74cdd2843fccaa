package i18n

import (
	"slices"
	"sort"
)

// Bundle holds the namespace -> key -> text mapping for one locale.
// It is built once by New and never mutated afterwards.
type Bundle struct {
	locale     string
	namespaces map[string]map[string]string
}

// Locale returns the locale the bundle belongs to.
func (b *Bundle) Locale() string {
	return b.locale
}

// Namespaces returns the namespace names in sorted order.
func (b *Bundle) Namespaces() []string {
	names := make([]string, 0, len(b.namespaces))
	for ns := range b.namespaces {
		names = append(names, ns)
	}
	sort.Strings(names)
	return names
}

// HasNamespace reports whether the bundle carries the namespace.
func (b *Bundle) HasNamespace(ns string) bool {
	_, ok := b.namespaces[ns]
	return ok
}

// Lookup returns the raw text stored under ns and key.
func (b *Bundle) Lookup(ns, key string) (string, bool) {
	keys, ok := b.namespaces[ns]
	if !ok {
		return "", false
	}
	text, ok := keys[key]
	return text, ok
}

// Len returns the total number of keys across all namespaces.
func (b *Bundle) Len() int {
	n := 0
	for _, keys := range b.namespaces {
		n += len(keys)
	}
	return n
}

// Keys returns the sorted keys of one namespace.
func (b *Bundle) Keys(ns string) []string {
	keys := make([]string, 0, len(b.namespaces[ns]))
	for k := range b.namespaces[ns] {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
