package i18n

import "errors"

var (
	ErrEmptyLocale    = errors.New("i18n: locale cannot be empty")
	ErrEmptyNamespace = errors.New("i18n: namespace cannot be empty")
	ErrMissingBundle  = errors.New("i18n: no resource bundle for supported locale")
	ErrUnsupported    = errors.New("i18n: default locale is not in the supported set")
	ErrInvalidFile    = errors.New("i18n: invalid translation file")
)
