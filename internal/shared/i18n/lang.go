// Package i18n holds the two display languages (English and Arabic) and the
// fixed label catalogue used by price breakdowns.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang represents a supported language
type Lang string

const (
	EN Lang = "en"
	AR Lang = "ar"
)

// Default is the language used when nothing else matches.
const Default = EN

var matcher = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.Arabic,
})

// DetectLang picks a language from an Accept-Language header value.
func DetectLang(acceptLanguage string) Lang {
	if strings.TrimSpace(acceptLanguage) == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	if idx == 1 {
		return AR
	}
	return EN
}

// ParseLang parses an explicit lang parameter; ok is false for anything
// other than en/ar.
func ParseLang(s string) (Lang, bool) {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case EN:
		return EN, true
	case AR:
		return AR, true
	}
	return Default, false
}

// Resolve prefers an explicit lang value and falls back to the header.
func Resolve(explicit, acceptLanguage string) Lang {
	if lang, ok := ParseLang(explicit); ok {
		return lang
	}
	return DetectLang(acceptLanguage)
}

// Dir is the text direction for the language.
func (l Lang) Dir() string {
	if l == AR {
		return "rtl"
	}
	return "ltr"
}
