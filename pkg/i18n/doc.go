// Package i18n provides locale resources, locale negotiation and
// request-scoped translation for server-rendered pages.
//
// A Table is built once at startup from in-memory maps or from a directory
// of {locale}/{namespace}.json (or .yaml) files. It is immutable afterwards
// and shared by reference between requests:
//
//	table, err := i18n.New(
//		i18n.WithLocales("en", "sk"),
//		i18n.WithDefaultLocale("en"),
//		i18n.WithDir(locales),
//	)
//
// New fails with ErrMissingBundle when a supported locale has no resources.
//
// # Negotiation
//
// A Negotiator picks the request locale from the "lng" query parameter, the
// "lng" cookie and the Accept-Language header, in that order. A source only
// counts when it names a supported locale; region subtags are stripped, so
// "sk-SK" selects "sk". Without a usable signal the default locale is used.
//
//	n := i18n.NewNegotiator(table)
//	locale := n.Negotiate(r)
//
// # Translation
//
// A Translator binds a locale and the namespaces a route needs. Keys are
// looked up namespace by namespace ("common" last), and within a namespace
// from the exact locale to its base language to the default locale.
//
//	tr := i18n.NewTranslator(table, "sk", "home")
//	tr.T("title")                       // home:title, then common:title
//	tr.T("common:nav.home")             // one namespace only
//	tr.T("greeting", i18n.M{"name": "Jana"})
//	tr.Tn("items", 3)                    // items_few in Slovak
//
// Plural categories come from CLDR data in golang.org/x/text/feature/plural
// and are used as key suffixes: items_one, items_few, items_other.
//
// Render code reads the translator from the context with T, Tn and
// TranslatorFromContext.
package i18n
