// Package locale provides the game's translated messages.
package locale

import (
	_ "embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
)

// DefaultLanguage is used when no locale is configured
const DefaultLanguage = "en"

//go:embed default.po
var defaultPo []byte

var current gotext.Translator

var activeLang = DefaultLanguage

// Normalize parses a locale such as "en_GB.UTF-8" or "de-AT" into its base language
func Normalize(lang string) (string, error) {
	if lang == "" {
		return DefaultLanguage, nil
	}
	tag, err := language.Parse(trimEncoding(lang))
	if err != nil {
		return "", fmt.Errorf("unknown locale %q: %w", lang, err)
	}
	base, _ := tag.Base()
	return base.String(), nil
}

func trimEncoding(lang string) string {
	for i, r := range lang {
		if r == '.' || r == '@' {
			return lang[:i]
		}
	}
	return lang
}

// Init loads the messages for the given language.
// Only English ships with the game; other languages fall back to it.
func Init(lang string) {
	base, err := Normalize(lang)
	if err != nil {
		base = DefaultLanguage
	}

	po := gotext.NewPo()
	po.Parse(defaultPo)

	current = po
	activeLang = base
}

// T returns the translated message for key. vars fill the verbs of the
// translated message; the key itself is never a format.
func T(key string, vars ...any) string {
	if current == nil {
		Init(DefaultLanguage)
	}
	return current.Get(key, vars...)
}

// Language returns the active language
func Language() string {
	return activeLang
}
