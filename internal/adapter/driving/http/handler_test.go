package httphandler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httphandler "github.com/ericfisherdev/nucampsite/internal/adapter/driving/http"
	"github.com/ericfisherdev/nucampsite/internal/application"
	"github.com/ericfisherdev/nucampsite/internal/domain/model"
	"github.com/ericfisherdev/nucampsite/internal/domain/port/driven"
)

// --- Mock implementations ---

type mockCampsiteStore struct {
	campsites []model.Campsite
	err       error
}

func (m *mockCampsiteStore) List(_ context.Context) ([]model.Campsite, error) {
	return m.campsites, m.err
}
func (m *mockCampsiteStore) Get(_ context.Context, id int64) (*model.Campsite, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.campsites {
		if m.campsites[i].ID == id {
			c := m.campsites[i]
			return &c, nil
		}
	}
	return nil, nil
}

type mockCommentStore struct {
	comments []model.Comment
	listErr  error
	addErr   error
	added    []model.Comment
}

func (m *mockCommentStore) ListByCampsite(_ context.Context, campsiteID int64) ([]model.Comment, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []model.Comment{}
	for _, c := range m.comments {
		if c.CampsiteID == campsiteID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (m *mockCommentStore) Add(_ context.Context, c model.Comment) (model.Comment, error) {
	if m.addErr != nil {
		return model.Comment{}, m.addErr
	}
	c.ID = int64(len(m.comments) + len(m.added))
	m.added = append(m.added, c)
	return c, nil
}

type mockPartnerStore struct {
	partners []model.Partner
	err      error
}

func (m *mockPartnerStore) List(_ context.Context) ([]model.Partner, error) {
	return m.partners, m.err
}

type mockPromotionStore struct {
	promotions []model.Promotion
	err        error
}

func (m *mockPromotionStore) List(_ context.Context) ([]model.Promotion, error) {
	return m.promotions, m.err
}

// --- Test helpers ---

type stores struct {
	campsites  *mockCampsiteStore
	comments   *mockCommentStore
	partners   *mockPartnerStore
	promotions *mockPromotionStore
	loading    bool
}

var testDate = time.Date(2018, 10, 25, 16, 30, 0, 0, time.UTC)

func defaultStores() *stores {
	return &stores{
		campsites: &mockCampsiteStore{campsites: []model.Campsite{
			{ID: 0, Name: "React Lake Campground", Image: "images/react-lake.svg", Elevation: 1233, Description: "Lakeside."},
			{ID: 1, Name: "Chrome River Campground", Image: "images/chrome-river.svg", Elevation: 877, Featured: true},
		}},
		comments: &mockCommentStore{comments: []model.Comment{
			{ID: 0, CampsiteID: 0, Rating: 5, Text: "What a magnificent view!", Author: "Tinus Lorvaldes", Date: testDate},
			{ID: 1, CampsiteID: 0, Rating: 4, Text: "Lovely.", Author: "Jonas Ebos", Date: testDate},
			{ID: 2, CampsiteID: 1, Rating: 3, Text: "Noisy.", Author: "Mac Wolfe", Date: testDate},
		}},
		partners:   &mockPartnerStore{partners: []model.Partner{{ID: 0, Name: "Bootstrap Outfitters", Featured: true}}},
		promotions: &mockPromotionStore{promotions: []model.Promotion{{ID: 0, Name: "Mountain Adventure", Cost: 1299}}},
	}
}

func setupMux(s *stores) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ready := application.NewReadiness()
	if !s.loading {
		ready.MarkReady()
	}
	directory := application.NewDirectoryService(s.campsites, s.comments, s.partners, s.promotions, ready, logger)
	comments := application.NewCommentService(s.comments, logger)

	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, httphandler.NewHandler(directory, comments, logger))
	return httphandler.ApplyMiddleware(mux, logger)
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	err := json.NewDecoder(rec.Body).Decode(v)
	require.NoError(t, err)
}

// --- Tests ---

func TestListCampsites(t *testing.T) {
	tests := []struct {
		name       string
		modify     func(s *stores)
		wantStatus int
		wantLen    int
	}{
		{name: "two campsites", wantStatus: http.StatusOK, wantLen: 2},
		{
			name:       "empty list",
			modify:     func(s *stores) { s.campsites.campsites = nil },
			wantStatus: http.StatusOK,
			wantLen:    0,
		},
		{
			name:       "store error",
			modify:     func(s *stores) { s.campsites.err = errors.New("db fail") },
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "loading",
			modify:     func(s *stores) { s.loading = true },
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := defaultStores()
			if tt.modify != nil {
				tt.modify(s)
			}

			rec := serve(setupMux(s), http.MethodGet, "/api/v1/campsites", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var resp []map[string]any
				decodeJSON(t, rec, &resp)
				assert.Len(t, resp, tt.wantLen)
			}
		})
	}
}

func TestGetCampsite(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantError  string
	}{
		{name: "found", path: "/api/v1/campsites/1", wantStatus: http.StatusOK},
		{name: "not found", path: "/api/v1/campsites/9", wantStatus: http.StatusNotFound, wantError: "campsite not found"},
		{name: "invalid id", path: "/api/v1/campsites/abc", wantStatus: http.StatusBadRequest, wantError: "invalid campsite id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(setupMux(defaultStores()), http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp map[string]any
			decodeJSON(t, rec, &resp)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, resp["error"])
				return
			}
			assert.Equal(t, "Chrome River Campground", resp["name"])
			assert.Equal(t, float64(877), resp["elevation"])
			assert.Equal(t, true, resp["featured"])
		})
	}
}

func TestListComments(t *testing.T) {
	rec := serve(setupMux(defaultStores()), http.MethodGet, "/api/v1/campsites/0/comments", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []map[string]any
	decodeJSON(t, rec, &resp)
	require.Len(t, resp, 2)
	assert.Equal(t, float64(0), resp[0]["id"])
	assert.Equal(t, float64(1), resp[1]["id"])
	assert.Equal(t, "Tinus Lorvaldes", resp[0]["author"])
	assert.Equal(t, "2018-10-25T16:30:00.000Z", resp[0]["date"])
}

func TestListComments_UnknownCampsite(t *testing.T) {
	rec := serve(setupMux(defaultStores()), http.MethodGet, "/api/v1/campsites/7/comments", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddComment(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		addErr     error
		wantStatus int
		wantError  string
		wantFields map[string]any
	}{
		{
			name:       "valid",
			path:       "/api/v1/campsites/1/comments",
			body:       `{"rating": 4, "author": " Al ", "text": "Great river."}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "author too short",
			path:       "/api/v1/campsites/1/comments",
			body:       `{"rating": 4, "author": "A", "text": ""}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "validation failed",
			wantFields: map[string]any{"author": []any{"Must be at least 2 characters"}},
		},
		{
			name:       "author too long",
			path:       "/api/v1/campsites/1/comments",
			body:       `{"rating": 2, "author": "Abcdefghijklmnop"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "validation failed",
			wantFields: map[string]any{"author": []any{"Must be 15 characters or less"}},
		},
		{
			name:       "invalid rating",
			path:       "/api/v1/campsites/1/comments",
			body:       `{"rating": 6, "author": "Al"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "rating must be between 1 and 5",
		},
		{
			name:       "invalid JSON",
			path:       "/api/v1/campsites/1/comments",
			body:       `not json`,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request body",
		},
		{
			name:       "unknown campsite",
			path:       "/api/v1/campsites/9/comments",
			body:       `{"rating": 5, "author": "Al"}`,
			addErr:     fmt.Errorf("insert comment: %w", driven.ErrCampsiteNotFound),
			wantStatus: http.StatusNotFound,
			wantError:  "campsite not found",
		},
		{
			name:       "store error",
			path:       "/api/v1/campsites/1/comments",
			body:       `{"rating": 5, "author": "Al"}`,
			addErr:     errors.New("disk full"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := defaultStores()
			s.comments.addErr = tt.addErr

			rec := serve(setupMux(s), http.MethodPost, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp map[string]any
			decodeJSON(t, rec, &resp)

			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, float64(1), resp["campsiteId"])
				assert.Equal(t, float64(4), resp["rating"])
				assert.Equal(t, "Al", resp["author"])
				assert.NotEmpty(t, resp["date"])
				require.Len(t, s.comments.added, 1)
				return
			}

			assert.Equal(t, tt.wantError, resp["error"])
			if tt.wantFields != nil {
				assert.Equal(t, tt.wantFields, resp["fields"])
			}
			assert.Empty(t, s.comments.added)
		})
	}
}

func TestListPartnersAndPromotions(t *testing.T) {
	mux := setupMux(defaultStores())

	rec := serve(mux, http.MethodGet, "/api/v1/partners", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var partners []map[string]any
	decodeJSON(t, rec, &partners)
	require.Len(t, partners, 1)
	assert.Equal(t, "Bootstrap Outfitters", partners[0]["name"])

	rec = serve(mux, http.MethodGet, "/api/v1/promotions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var promotions []map[string]any
	decodeJSON(t, rec, &promotions)
	require.Len(t, promotions, 1)
	assert.Equal(t, float64(1299), promotions[0]["cost"])
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		loading    bool
		wantStatus int
		wantBody   string
	}{
		{name: "ready", wantStatus: http.StatusOK, wantBody: "ok"},
		{name: "loading", loading: true, wantStatus: http.StatusServiceUnavailable, wantBody: "loading"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := defaultStores()
			s.loading = tt.loading

			rec := serve(setupMux(s), http.MethodGet, "/api/v1/health", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp map[string]any
			decodeJSON(t, rec, &resp)
			assert.Equal(t, tt.wantBody, resp["status"])
			assert.NotEmpty(t, resp["time"])
		})
	}
}

func TestRequestID(t *testing.T) {
	mux := setupMux(defaultStores())

	rec := serve(mux, http.MethodGet, "/api/v1/health", "")
	assert.Len(t, rec.Header().Get(httphandler.RequestIDHeader), 36, "generated ids are UUIDs")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set(httphandler.RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(httphandler.RequestIDHeader))
}
