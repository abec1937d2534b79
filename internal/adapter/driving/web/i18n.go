package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "nucampsite_lang"
)

// DefaultLanguage is the canonical locale; its catalog defines every key.
var DefaultLanguage = language.English

//go:embed locales/*.yaml
var localeFS embed.FS

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Translator owns the UI message catalog and negotiates the request language.
type Translator struct {
	catalog   *catalog.Builder
	supported []language.Tag
	matcher   language.Matcher
}

// NewTranslator loads the embedded locale catalogs.
func NewTranslator() (*Translator, error) {
	return LoadTranslator(localeFS)
}

// LoadTranslator loads locales/*.yaml from fsys. The default language must be
// present.
func LoadTranslator(fsys fs.FS) (*Translator, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale catalogs found")
	}
	sort.Strings(paths)

	builder := catalog.NewBuilder(catalog.Fallback(DefaultLanguage))
	supported := []language.Tag{DefaultLanguage}
	hasDefault := false

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read locale catalog %s: %w", path, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse locale catalog %s: %w", path, err)
		}
		tag, err := language.Parse(strings.TrimSpace(file.Locale))
		if err != nil {
			return nil, fmt.Errorf("locale catalog %s: parse locale %q: %w", path, file.Locale, err)
		}
		for key, msg := range file.Messages {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("locale catalog %s: set %q: %w", path, key, err)
			}
		}
		if tag == DefaultLanguage {
			hasDefault = true
			continue
		}
		supported = append(supported, tag)
	}
	if !hasDefault {
		return nil, fmt.Errorf("default locale %s is not defined in catalogs", DefaultLanguage)
	}

	return &Translator{
		catalog:   builder,
		supported: supported,
		matcher:   language.NewMatcher(supported),
	}, nil
}

// Supported returns the supported language tags, default first.
func (t *Translator) Supported() []language.Tag {
	return append([]language.Tag(nil), t.supported...)
}

// Printer returns a message printer for tag backed by the UI catalog.
func (t *Translator) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(t.catalog))
}

// Match maps arbitrary tags onto the closest supported language.
func (t *Translator) Match(tags ...language.Tag) language.Tag {
	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLanguage
	}
	return t.supported[index]
}

// ResolveTag determines the language for the request: the lang query
// parameter, then the language cookie, then Accept-Language. The bool reports
// whether the query parameter selected it and should be persisted.
func (t *Translator) ResolveTag(r *http.Request) (language.Tag, bool) {
	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if tag, err := language.Parse(value); err == nil {
			return t.Match(tag), true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, err := language.Parse(cookie.Value); err == nil {
			return t.Match(tag), false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return t.Match(tags...), false
		}
	}

	return DefaultLanguage, false
}

// setLanguageCookie persists the selected language on the response.
func setLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
