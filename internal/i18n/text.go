package i18n

import (
	"sort"
	"strings"
)

// Text holds one translatable field across all locale columns.
type Text struct {
	Default string `json:"en"`
	Ru      string `json:"ru"`
	Uz      string `json:"uz"`
}

// OptText builds a Text from nullable columns.
func OptText(def, ru, uz *string) Text {
	return Text{Default: deref(def), Ru: deref(ru), Uz: deref(uz)}
}

// In returns the value for l, falling back to the default column when the
// localized one is blank.
func (t Text) In(l Locale) string {
	var v string
	switch l {
	case Ru:
		v = t.Ru
	case Uz:
		v = t.Uz
	default:
		return t.Default
	}
	if strings.TrimSpace(v) == "" {
		return t.Default
	}
	return v
}

// Translatable is implemented by content rows with locale columns. The map is
// the row's field lookup table, keyed by the field's base (default-locale) name.
type Translatable interface {
	Translations() map[string]Text
}

// Project resolves each named field of row to a single value for loc.
// Unknown field names resolve to "".
func Project(row Translatable, fields []string, loc Locale) map[string]string {
	table := row.Translations()
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f] = table[f].In(loc)
	}
	return out
}

// ProjectAll projects every translatable field of row.
func ProjectAll(row Translatable, loc Locale) map[string]string {
	return Project(row, Fields(row), loc)
}

// Fields returns the translatable field names of row in sorted order.
func Fields(row Translatable) []string {
	table := row.Translations()
	out := make([]string, 0, len(table))
	for k := range table {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
