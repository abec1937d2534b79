package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ericfisherdev/nucampsite/internal/domain/model"
	"github.com/ericfisherdev/nucampsite/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CommentStore = (*CommentRepo)(nil)

// CommentRepo is the SQLite implementation of the CommentStore port interface.
type CommentRepo struct {
	db *DB
}

// NewCommentRepo creates a new CommentRepo backed by the given DB.
func NewCommentRepo(db *DB) *CommentRepo {
	return &CommentRepo{db: db}
}

// ListByCampsite returns a campsite's comments in insertion order.
func (r *CommentRepo) ListByCampsite(ctx context.Context, campsiteID int64) ([]model.Comment, error) {
	const query = `
		SELECT id, campsite_id, rating, text, author, date
		FROM comments
		WHERE campsite_id = ?
		ORDER BY id
	`

	rows, err := r.db.Reader.QueryContext(ctx, query, campsiteID)
	if err != nil {
		return nil, fmt.Errorf("list comments for campsite %d: %w", campsiteID, err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	return comments, nil
}

// Add inserts a comment and returns it with the assigned ID. Returns
// ErrCampsiteNotFound when the campsite does not exist.
func (r *CommentRepo) Add(ctx context.Context, comment model.Comment) (model.Comment, error) {
	const query = `
		INSERT INTO comments (campsite_id, rating, text, author, date)
		VALUES (?, ?, ?, ?, ?)
	`

	date := comment.Date
	if date.IsZero() {
		date = time.Now()
	}
	comment.Date = date.UTC()

	result, err := r.db.Writer.ExecContext(ctx, query,
		comment.CampsiteID, int(comment.Rating), comment.Text, comment.Author, formatTime(comment.Date),
	)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint") {
			return model.Comment{}, fmt.Errorf("add comment to campsite %d: %w", comment.CampsiteID, driven.ErrCampsiteNotFound)
		}
		return model.Comment{}, fmt.Errorf("add comment to campsite %d: %w", comment.CampsiteID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Comment{}, fmt.Errorf("read comment id: %w", err)
	}
	comment.ID = id

	return comment, nil
}

func scanComment(s scanner) (*model.Comment, error) {
	var c model.Comment
	var rating int
	var date string

	if err := s.Scan(&c.ID, &c.CampsiteID, &rating, &c.Text, &c.Author, &date); err != nil {
		return nil, err
	}
	c.Rating = model.Rating(rating)

	parsed, err := model.ParseTimestamp(date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}
	c.Date = parsed

	return &c, nil
}

// formatTime renders timestamps in the layout stored in TEXT columns.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
