// Package templates holds the templ components that render the HTML GUI.
package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer translates UI strings. *message.Printer satisfies it.
type Localizer interface {
	Sprintf(key message.Reference, a ...any) string
}

// untranslated formats keys as-is when no Localizer is supplied.
var untranslated = message.NewPrinter(language.English)

// T translates key with loc, or formats it untranslated when loc is nil.
func T(loc Localizer, key string, args ...any) string {
	if loc == nil {
		loc = untranslated
	}
	return loc.Sprintf(key, args...)
}

// Text translates msg when the catalog holds it and otherwise returns msg
// verbatim. Unlike T, msg is never read as a format string.
func Text(loc Localizer, msg string) string {
	return T(loc, strings.ReplaceAll(msg, "%", "%%"))
}

// htmlWriter writes markup and keeps the first error, so component bodies
// read top to bottom without an error check per line.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

// raw writes trusted markup verbatim.
func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

// text writes HTML-escaped text.
func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with the value escaped.
func (hw *htmlWriter) attr(name, value string) {
	hw.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// href writes an href attribute after URL sanitization.
func (hw *htmlWriter) href(url string) {
	hw.attr("href", string(templ.URL(url)))
}

// src writes a src attribute after URL sanitization.
func (hw *htmlWriter) src(url string) {
	hw.attr("src", string(templ.URL(url)))
}

// component renders a child component in place.
func (hw *htmlWriter) component(c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(hw.ctx, hw.w)
}

// fadeAttrs returns the class and style for an animated entry. Animations are
// a presentation capability only; with animate false nothing is added.
func fadeAttrs(animate bool, index int) (class, style string) {
	if !animate {
		return "", ""
	}
	return " fade-in", fmt.Sprintf("animation-delay: %dms", index*staggerStepMillis)
}

// staggerStepMillis spaces successive entries of a staggered list.
const staggerStepMillis = 100
