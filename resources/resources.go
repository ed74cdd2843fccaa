// Package resources embeds the locale files served by cmd/server.
package resources

import (
	"embed"
	"io/fs"

	"github.com/dmitrymomot/ssrkit/pkg/i18n"
)

//go:embed locales
var embedded embed.FS

// Locales holds {locale}/{namespace}.json files rooted at the locale directories.
var Locales = mustSub(embedded, "locales")

// Supported lists the locales shipped with the application, default first.
var Supported = []string{"en", "sk"}

// Language describes a locale for the language switcher.
type Language struct {
	Code string
	Name string
	Flag string
}

// Languages returns the switcher entries in Supported order.
func Languages() []Language {
	return []Language{
		{Code: "en", Name: "English", Flag: "🇺🇸"},
		{Code: "sk", Name: "Slovensky", Flag: "🇸🇰"},
	}
}

// NewTable loads the embedded locales. Extra options are applied last.
func NewTable(opts ...i18n.Option) (*i18n.Table, error) {
	base := []i18n.Option{
		i18n.WithJSONDir(Locales),
		i18n.WithLocales(Supported...),
		i18n.WithDefaultLocale(Supported[0]),
	}
	return i18n.New(append(base, opts...)...)
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
