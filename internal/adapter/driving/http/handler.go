// Package httphandler implements the JSON REST API driving adapter.
package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ericfisherdev/nucampsite/internal/application"
	"github.com/ericfisherdev/nucampsite/internal/domain/model"
	"github.com/ericfisherdev/nucampsite/internal/domain/port/driven"
)

// maxBodyBytes caps the size of a comment request body.
const maxBodyBytes = 64 << 10

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	directory *application.DirectoryService
	comments  *application.CommentService
	logger    *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	directory *application.DirectoryService,
	comments *application.CommentService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		directory: directory,
		comments:  comments,
		logger:    logger,
	}
}

// RegisterAPIRoutes registers the /api/v1 routes on mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/campsites", h.ListCampsites)
	mux.HandleFunc("GET /api/v1/campsites/{id}", h.GetCampsite)
	mux.HandleFunc("GET /api/v1/campsites/{id}/comments", h.ListComments)
	mux.HandleFunc("POST /api/v1/campsites/{id}/comments", h.AddComment)
	mux.HandleFunc("GET /api/v1/partners", h.ListPartners)
	mux.HandleFunc("GET /api/v1/promotions", h.ListPromotions)
	mux.HandleFunc("GET /api/v1/health", h.Health)
}

// ApplyMiddleware wraps handler with recovery, request id and logging.
func ApplyMiddleware(handler http.Handler, logger *slog.Logger) http.Handler {
	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, handler)
	wrapped = requestIDMiddleware(wrapped)
	wrapped = loggingMiddleware(logger, wrapped)

	return wrapped
}

// ListCampsites returns every campsite.
func (h *Handler) ListCampsites(w http.ResponseWriter, r *http.Request) {
	if h.writeLoading(w) {
		return
	}

	campsites, err := h.directory.Directory(r.Context())
	if err != nil {
		h.logger.Error("failed to list campsites", "request_id", RequestID(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]CampsiteResponse, 0, len(campsites))
	for _, c := range campsites {
		resp = append(resp, toCampsiteResponse(c))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetCampsite returns a single campsite by id.
func (h *Handler) GetCampsite(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if h.writeLoading(w) {
		return
	}

	campsite, err := h.directory.Campsite(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to get campsite", "campsite_id", id, "request_id", RequestID(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if campsite == nil {
		writeError(w, http.StatusNotFound, "campsite not found")
		return
	}

	writeJSON(w, http.StatusOK, toCampsiteResponse(*campsite))
}

// ListComments returns a campsite's comments in display order.
func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if h.writeLoading(w) {
		return
	}

	campsite, err := h.directory.Campsite(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to get campsite", "campsite_id", id, "request_id", RequestID(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if campsite == nil {
		writeError(w, http.StatusNotFound, "campsite not found")
		return
	}

	comments, err := h.comments.ListComments(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to list comments", "campsite_id", id, "request_id", RequestID(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		resp = append(resp, toCommentResponse(c))
	}

	writeJSON(w, http.StatusOK, resp)
}

// AddComment posts a comment to a campsite.
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if h.writeLoading(w) {
		return
	}

	var req AddCommentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rating := model.Rating(req.Rating)
	if !rating.Valid() {
		writeError(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	comment, err := h.comments.AddComment(r.Context(), model.CommentInput{
		CampsiteID: id,
		Rating:     rating,
		Author:     req.Author,
		Text:       req.Text,
	})
	if err != nil {
		var fieldErrs application.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			writeJSON(w, http.StatusUnprocessableEntity, toValidationErrorResponse(fieldErrs))
		case errors.Is(err, driven.ErrCampsiteNotFound):
			writeError(w, http.StatusNotFound, "campsite not found")
		default:
			h.logger.Error("failed to add comment", "campsite_id", id, "request_id", RequestID(r.Context()), "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(comment))
}

// ListPartners returns every partner.
func (h *Handler) ListPartners(w http.ResponseWriter, r *http.Request) {
	if h.writeLoading(w) {
		return
	}

	partners, err := h.directory.Partners(r.Context())
	if err != nil {
		h.logger.Error("failed to list partners", "request_id", RequestID(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]PartnerResponse, 0, len(partners))
	for _, p := range partners {
		resp = append(resp, toPartnerResponse(p))
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListPromotions returns every promotion.
func (h *Handler) ListPromotions(w http.ResponseWriter, r *http.Request) {
	if h.writeLoading(w) {
		return
	}

	promotions, err := h.directory.Promotions(r.Context())
	if err != nil {
		h.logger.Error("failed to list promotions", "request_id", RequestID(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]PromotionResponse, 0, len(promotions))
	for _, p := range promotions {
		resp = append(resp, toPromotionResponse(p))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Health reports "ok" once the catalog is loaded and "loading" (503) before.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	status, code := "ok", http.StatusOK
	if h.directory.IsLoading() {
		status, code = "loading", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status: status,
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// writeLoading writes a 503 while the catalog is still loading.
func (h *Handler) writeLoading(w http.ResponseWriter) bool {
	if !h.directory.IsLoading() {
		return false
	}
	w.Header().Set("Retry-After", "1")
	writeError(w, http.StatusServiceUnavailable, "loading")
	return true
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 0 {
		writeError(w, http.StatusBadRequest, "invalid campsite id")
		return 0, false
	}
	return id, true
}
