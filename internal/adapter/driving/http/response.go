package httphandler

import (
	"encoding/json"
	"net/http"

	"github.com/ericfisherdev/nucampsite/internal/application"
	"github.com/ericfisherdev/nucampsite/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists field messages for a rejected comment.
type ValidationErrorResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields"`
}

// CampsiteResponse is the JSON representation of a campsite.
type CampsiteResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Elevation   int    `json:"elevation"`
	Featured    bool   `json:"featured"`
	Description string `json:"description"`
}

// CommentResponse is the JSON representation of a comment.
type CommentResponse struct {
	ID         int64  `json:"id"`
	CampsiteID int64  `json:"campsiteId"`
	Rating     int    `json:"rating"`
	Text       string `json:"text"`
	Author     string `json:"author"`
	Date       string `json:"date"`
}

// PartnerResponse is the JSON representation of a partner.
type PartnerResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Featured    bool   `json:"featured"`
	Description string `json:"description"`
}

// PromotionResponse is the JSON representation of a promotion.
type PromotionResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Featured    bool   `json:"featured"`
	Cost        int    `json:"cost"`
	Description string `json:"description"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// AddCommentRequest is the JSON body for the add comment endpoint.
type AddCommentRequest struct {
	Rating int    `json:"rating"`
	Author string `json:"author"`
	Text   string `json:"text"`
}

func toCampsiteResponse(c model.Campsite) CampsiteResponse {
	return CampsiteResponse{
		ID:          c.ID,
		Name:        c.Name,
		Image:       c.Image,
		Elevation:   c.Elevation,
		Featured:    c.Featured,
		Description: c.Description,
	}
}

// toCommentResponse formats the date as RFC 3339 in UTC with milliseconds.
func toCommentResponse(c model.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		CampsiteID: c.CampsiteID,
		Rating:     int(c.Rating),
		Text:       c.Text,
		Author:     c.Author,
		Date:       c.Date.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

func toPartnerResponse(p model.Partner) PartnerResponse {
	return PartnerResponse{
		ID:          p.ID,
		Name:        p.Name,
		Image:       p.Image,
		Featured:    p.Featured,
		Description: p.Description,
	}
}

func toPromotionResponse(p model.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:          p.ID,
		Name:        p.Name,
		Image:       p.Image,
		Featured:    p.Featured,
		Cost:        p.Cost,
		Description: p.Description,
	}
}

func toValidationErrorResponse(errs application.FieldErrors) ValidationErrorResponse {
	fields := make(map[string][]string)
	for _, e := range errs {
		fields[e.Field] = append(fields[e.Field], e.Message)
	}
	return ValidationErrorResponse{
		Error:  "validation failed",
		Fields: fields,
	}
}
