package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ericfisherdev/nucampsite/internal/domain/model"
	"github.com/ericfisherdev/nucampsite/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CampsiteStore = (*CampsiteRepo)(nil)

// CampsiteRepo is the SQLite implementation of the CampsiteStore port interface.
type CampsiteRepo struct {
	db *DB
}

// NewCampsiteRepo creates a new CampsiteRepo backed by the given DB.
func NewCampsiteRepo(db *DB) *CampsiteRepo {
	return &CampsiteRepo{db: db}
}

// List returns all campsites ordered by ID.
func (r *CampsiteRepo) List(ctx context.Context) ([]model.Campsite, error) {
	const query = `SELECT id, name, image, elevation, featured, description FROM campsites ORDER BY id`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list campsites: %w", err)
	}
	defer rows.Close()

	campsites := []model.Campsite{}
	for rows.Next() {
		c, err := scanCampsite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan campsite: %w", err)
		}
		campsites = append(campsites, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate campsites: %w", err)
	}

	return campsites, nil
}

// Get retrieves a campsite by ID. Returns nil, nil if it does not exist.
func (r *CampsiteRepo) Get(ctx context.Context, id int64) (*model.Campsite, error) {
	const query = `SELECT id, name, image, elevation, featured, description FROM campsites WHERE id = ?`

	c, err := scanCampsite(r.db.Reader.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get campsite %d: %w", id, err)
	}

	return c, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCampsite(s scanner) (*model.Campsite, error) {
	var c model.Campsite
	if err := s.Scan(&c.ID, &c.Name, &c.Image, &c.Elevation, &c.Featured, &c.Description); err != nil {
		return nil, err
	}
	return &c, nil
}
