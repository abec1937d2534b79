// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/ericfisherdev/nucampsite/internal/adapter/driving/web/templates"
	vm "github.com/ericfisherdev/nucampsite/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/nucampsite/internal/application"
	"github.com/ericfisherdev/nucampsite/internal/domain/model"
	"github.com/ericfisherdev/nucampsite/internal/domain/port/driven"
)

const (
	errMessCampsites = "Unable to load campsites. Please try again later."
	errMessPartners  = "Unable to load partners. Please try again later."
)

// Options carries the presentation settings of the GUI.
type Options struct {
	// BaseURL prefixes every relative image reference.
	BaseURL string
	// Animations enables fade and stagger classes.
	Animations bool
	// SecureCookies marks the CSRF cookie Secure.
	SecureCookies bool
}

// Handler is the web GUI driving adapter that serves HTML via templ components.
type Handler struct {
	directory  *application.DirectoryService
	comments   application.CommentPoster
	translator *Translator
	opts       Options
	logger     *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	directory *application.DirectoryService,
	comments application.CommentPoster,
	translator *Translator,
	opts Options,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		directory:  directory,
		comments:   comments,
		translator: translator,
		opts:       opts,
		logger:     logger,
	}
}

// Home renders the featured campsite, promotion and partner.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localize(w, r)
	page := vm.PageViewModel{Lang: lang, ActivePath: "/"}

	if h.directory.IsLoading() {
		h.render(w, r, http.StatusOK, page, loc, templates.Home(vm.HomeViewModel{IsLoading: true}, loc))
		return
	}

	highlights, err := h.directory.Highlights(r.Context())
	if err != nil {
		h.logger.Error("failed to load highlights", "error", err)
		h.render(w, r, http.StatusInternalServerError, page, loc,
			templates.Home(vm.HomeViewModel{ErrMess: errMessCampsites}, loc))
		return
	}

	props := toHomeViewModel(highlights, h.opts.BaseURL)
	props.Animations = h.opts.Animations
	h.render(w, r, http.StatusOK, page, loc, templates.Home(props, loc))
}

// Directory renders the campsite directory.
func (h *Handler) Directory(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localize(w, r)
	page := vm.PageViewModel{Title: loc.Sprintf("Directory"), Lang: lang, ActivePath: "/directory"}

	if h.directory.IsLoading() {
		h.render(w, r, http.StatusOK, page, loc, templates.Loading(loc))
		return
	}

	campsites, err := h.directory.Directory(r.Context())
	if err != nil {
		h.logger.Error("failed to list campsites", "error", err)
		h.render(w, r, http.StatusInternalServerError, page, loc,
			templates.Directory(vm.DirectoryViewModel{ErrMess: errMessCampsites}, loc))
		return
	}

	props := vm.DirectoryViewModel{
		Campsites:  toCampsiteViewModels(campsites, h.opts.BaseURL),
		Animations: h.opts.Animations,
	}
	h.render(w, r, http.StatusOK, page, loc, templates.Directory(props, loc))
}

// CampsiteInfo renders the campsite detail view. The comment modal is open
// when the request carries comment=open.
func (h *Handler) CampsiteInfo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseCampsiteID(w, r)
	if !ok {
		return
	}

	loc, lang := h.localize(w, r)
	props := h.directory.Detail(r.Context(), id)

	form := newCommentFormViewModel(id, csrfToken(w, r, h.opts.SecureCookies))
	form.Open = r.URL.Query().Get("comment") == "open"

	h.renderDetail(w, r, detailStatus(props), props, form, loc, lang)
}

// SubmitComment handles the comment modal's form POST. Invalid input
// re-renders the open modal with the field errors; a posted comment
// redirects back to the detail page.
func (h *Handler) SubmitComment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseCampsiteID(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if !validateCSRF(r) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	rating := model.MinRating
	if raw := strings.TrimSpace(r.PostFormValue("rating")); raw != "" {
		parsed, err := model.ParseRating(raw)
		if err != nil {
			http.Error(w, "invalid rating", http.StatusBadRequest)
			return
		}
		rating = parsed
	}
	author := r.PostFormValue("author")
	text := r.PostFormValue("text")

	loc, lang := h.localize(w, r)
	props := h.directory.Detail(r.Context(), id)
	if props.IsLoading || props.ErrMess != "" || props.Campsite == nil {
		status := detailStatus(props)
		if props.IsLoading {
			status = http.StatusServiceUnavailable
		}
		form := newCommentFormViewModel(id, csrfToken(w, r, h.opts.SecureCookies))
		h.renderDetail(w, r, status, props, form, loc, lang)
		return
	}

	commentForm := application.NewCommentForm(id, h.comments)
	commentForm.Open()

	fieldErrs, err := commentForm.Submit(r.Context(), rating, author, text)
	if len(fieldErrs) > 0 {
		form := newCommentFormViewModel(id, csrfToken(w, r, h.opts.SecureCookies))
		form.Open = commentForm.IsOpen()
		form.Rating = int(rating)
		form.Author = author
		form.Text = text
		form.AuthorErrors = fieldErrs.For(application.FieldAuthor).Messages()
		h.renderDetail(w, r, http.StatusUnprocessableEntity, props, form, loc, lang)
		return
	}
	if err != nil {
		if errors.Is(err, driven.ErrCampsiteNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("failed to post comment", "campsite_id", id, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, detailPath(id), http.StatusSeeOther)
}

// About renders the about page with the partner list.
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localize(w, r)
	page := vm.PageViewModel{Title: loc.Sprintf("About"), Lang: lang, ActivePath: "/about"}

	if h.directory.IsLoading() {
		h.render(w, r, http.StatusOK, page, loc, templates.Loading(loc))
		return
	}

	props := vm.AboutViewModel{Animations: h.opts.Animations}
	status := http.StatusOK
	partners, err := h.directory.Partners(r.Context())
	if err != nil {
		h.logger.Error("failed to list partners", "error", err)
		props.ErrMess = errMessPartners
		status = http.StatusInternalServerError
	} else {
		props.Partners = toPartnerViewModels(partners, h.opts.BaseURL)
	}

	h.render(w, r, status, page, loc, templates.About(props, loc))
}

func (h *Handler) renderDetail(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	props application.DetailProps,
	form vm.CommentFormViewModel,
	loc *message.Printer,
	lang string,
) {
	page := vm.PageViewModel{Lang: lang, ActivePath: "/directory"}
	if props.Campsite != nil && props.ErrMess == "" && !props.IsLoading {
		page.Title = props.Campsite.Name
	}

	info := toCampsiteInfoViewModel(props, form, h.opts.BaseURL, h.opts.Animations)
	h.render(w, r, status, page, loc, templates.CampsiteInfo(info, loc))
}

// render buffers the page so the status code can still change on a
// rendering error.
func (h *Handler) render(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	page vm.PageViewModel,
	loc *message.Printer,
	body templ.Component,
) {
	var buf bytes.Buffer
	if err := templates.Layout(page, loc, body).Render(r.Context(), &buf); err != nil {
		h.logger.Error("failed to render page", "path", r.URL.Path, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}

// localize resolves the request language and returns its printer.
func (h *Handler) localize(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := h.translator.ResolveTag(r)
	if persist {
		setLanguageCookie(w, tag)
	}
	return h.translator.Printer(tag), tag.String()
}

// detailStatus maps the detail view's branch onto an HTTP status.
func detailStatus(props application.DetailProps) int {
	switch {
	case props.IsLoading:
		return http.StatusOK
	case props.ErrMess != "":
		return http.StatusInternalServerError
	case props.Campsite == nil:
		return http.StatusNotFound
	default:
		return http.StatusOK
	}
}

func parseCampsiteID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 0 {
		http.Error(w, "invalid campsite id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
