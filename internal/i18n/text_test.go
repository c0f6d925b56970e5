package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	title, titleRu, titleUz string
	body                    *string
}

func (r row) Translations() map[string]Text {
	return map[string]Text{
		"title": {Default: r.title, Ru: r.titleRu, Uz: r.titleUz},
		"body":  OptText(r.body, nil, nil),
	}
}

func TestProjectSelectsLocaleColumn(t *testing.T) {
	r := row{title: "Mission", titleRu: "Миссия", titleUz: "Vazifa"}

	assert.Equal(t, map[string]string{"title": "Mission"}, Project(r, []string{"title"}, Default))
	assert.Equal(t, map[string]string{"title": "Миссия"}, Project(r, []string{"title"}, Ru))
	assert.Equal(t, map[string]string{"title": "Vazifa"}, Project(r, []string{"title"}, Uz))
}

func TestProjectUnsupportedLocaleUsesDefault(t *testing.T) {
	r := row{title: "Mission", titleRu: "Миссия", titleUz: "Vazifa"}
	loc, _ := ParseLocale("fr")

	assert.Equal(t, "Mission", Project(r, []string{"title"}, loc)["title"])
	assert.Equal(t, "Mission", Project(r, []string{"title"}, Locale("xx"))["title"])
}

func TestProjectMissingLocalizedValueFallsBack(t *testing.T) {
	body := "Text"
	r := row{title: "Mission", titleRu: "  ", body: &body}

	got := ProjectAll(r, Ru)
	assert.Equal(t, "Mission", got["title"])
	assert.Equal(t, "Text", got["body"])
}

func TestProjectUnknownFieldIsEmpty(t *testing.T) {
	got := Project(row{title: "x"}, []string{"nope"}, Uz)
	assert.Equal(t, "", got["nope"])
}

func TestFieldsSorted(t *testing.T) {
	assert.Equal(t, []string{"body", "title"}, Fields(row{}))
}
