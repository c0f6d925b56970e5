package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the three content languages. Default content lives in the
// suffix-less columns and is English.
type Locale string

const (
	Default Locale = "en"
	Ru      Locale = "ru"
	Uz      Locale = "uz"
)

// CookieName remembers the visitor's last landing language.
const CookieName = "NEXT_LOCALE"

// Supported lists locales in routing preference order.
var Supported = []Locale{Uz, Ru, Default}

var matcher = language.NewMatcher([]language.Tag{language.Uzbek, language.Russian, language.English})

func (l Locale) String() string {
	return string(l)
}

// ParseLocale maps codes such as "ru", "ru-RU" or "uz-Latn" onto a Locale.
// Anything else yields Default and false.
func ParseLocale(code string) (Locale, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Default, false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return Default, false
	}
	base, conf := tag.Base()
	if conf != language.Exact {
		return Default, false
	}
	switch base.String() {
	case "en":
		return Default, true
	case "ru":
		return Ru, true
	case "uz":
		return Uz, true
	}
	return Default, false
}

// Negotiate picks the landing language for a visitor without one in the URL:
// cookie first, then Accept-Language, then fallback.
func Negotiate(cookie, acceptLanguage string, fallback Locale) Locale {
	if l, ok := ParseLocale(cookie); ok {
		return l
	}
	if accept := strings.TrimSpace(acceptLanguage); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			if _, idx, conf := matcher.Match(tags...); conf != language.No {
				return Supported[idx]
			}
		}
	}
	return fallback
}
