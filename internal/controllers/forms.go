package controllers

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jomboydon/landing_backend/internal/assets"
	"github.com/jomboydon/landing_backend/internal/i18n"
)

// parseForm reads the request form before any field lookup. gin's lookups
// drop parse errors, so a truncated or malformed body would otherwise read
// as a form with nothing sent. Oversized bodies keep their
// *http.MaxBytesError for respondError.
func parseForm(c *gin.Context) error {
	_, err := c.MultipartForm()
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	log.Printf("%s %s: parse form: %v", c.Request.Method, c.FullPath(), err)
	return invalid("invalid form data")
}

// formValue is one submitted form field; Present distinguishes "sent empty"
// from "not sent".
type formValue struct {
	Value   string
	Present bool
}

func postValue(c *gin.Context, keys ...string) formValue {
	for _, k := range keys {
		if v, ok := c.GetPostForm(k); ok {
			return formValue{Value: v, Present: true}
		}
	}
	return formValue{}
}

func (v formValue) set(dst *string) {
	if v.Present {
		*dst = v.Value
	}
}

// setOpt stores an empty submission as NULL.
func (v formValue) setOpt(dst **string) {
	if !v.Present {
		return
	}
	if strings.TrimSpace(v.Value) == "" {
		*dst = nil
		return
	}
	s := v.Value
	*dst = &s
}

// localizedValue is a translatable field as submitted by the admin forms,
// which always send every locale at once.
type localizedValue map[i18n.Locale]formValue

// localeKeys lists the form keys accepted for the l column of a field. Both
// spellings used by the admin forms are accepted: "name_ru" and "nameRu".
// names holds the field name followed by any section-prefixed aliases,
// e.g. "title", "heroTitle".
func localeKeys(l i18n.Locale, names ...string) []string {
	keys := make([]string, 0, 2*len(names))
	for _, n := range names {
		switch l {
		case i18n.Ru:
			keys = append(keys, n+"_ru", n+"Ru")
		case i18n.Uz:
			keys = append(keys, n+"_uz", n+"Uz")
		default:
			keys = append(keys, n)
		}
	}
	return keys
}

func postLocalized(c *gin.Context, names ...string) localizedValue {
	out := make(localizedValue, 3)
	for _, l := range []i18n.Locale{i18n.Default, i18n.Ru, i18n.Uz} {
		out[l] = postValue(c, localeKeys(l, names...)...)
	}
	return out
}

func (lv localizedValue) set(def, ru, uz *string) {
	lv[i18n.Default].set(def)
	lv[i18n.Ru].set(ru)
	lv[i18n.Uz].set(uz)
}

func (lv localizedValue) setOpt(def, ru, uz **string) {
	lv[i18n.Default].setOpt(def)
	lv[i18n.Ru].setOpt(ru)
	lv[i18n.Uz].setOpt(uz)
}

// currentRef checks a "current file" field echoed back by the admin forms.
// It may only name the file the row already references.
func currentRef(v formValue, field string, stored assets.Ref) error {
	if !v.Present || strings.TrimSpace(v.Value) == "" {
		return nil
	}
	if !assets.Ref(v.Value).Same(stored) {
		return invalid(field + " does not match the stored file")
	}
	return nil
}

func parsePrice(v formValue) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
	if err != nil || price < 0 {
		return 0, invalid("price must be a non-negative number")
	}
	return price, nil
}

// formFile returns the uploaded file under key, ignoring empty parts that
// browsers send for untouched file inputs.
func formFile(c *gin.Context, key string) (*multipart.FileHeader, bool) {
	fh, err := c.FormFile(key)
	if err != nil || fh == nil || fh.Size == 0 {
		return nil, false
	}
	return fh, true
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, invalid("invalid id")
	}
	return uint(id), nil
}
