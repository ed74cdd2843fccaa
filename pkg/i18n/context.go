package i18n

import "context"

// TranslatorKey is the context key the Translator is stored under.
type TranslatorKey struct{}

// WithTranslator returns a copy of ctx carrying tr.
func WithTranslator(ctx context.Context, tr *Translator) context.Context {
	return context.WithValue(ctx, TranslatorKey{}, tr)
}

// TranslatorFromContext returns the translator stored in ctx, or nil.
func TranslatorFromContext(ctx context.Context) *Translator {
	tr, _ := ctx.Value(TranslatorKey{}).(*Translator)
	return tr
}

// T translates key with the translator in ctx.
// Without a translator the key is returned unchanged.
func T(ctx context.Context, key string, placeholders ...M) string {
	if tr := TranslatorFromContext(ctx); tr != nil {
		return tr.T(key, placeholders...)
	}
	return key
}

// Tn is the plural form of T.
func Tn(ctx context.Context, key string, n int, placeholders ...M) string {
	if tr := TranslatorFromContext(ctx); tr != nil {
		return tr.Tn(key, n, placeholders...)
	}
	return key
}

// Locale returns the locale of the translator in ctx, or "".
func Locale(ctx context.Context) string {
	if tr := TranslatorFromContext(ctx); tr != nil {
		return tr.Locale()
	}
	return ""
}
