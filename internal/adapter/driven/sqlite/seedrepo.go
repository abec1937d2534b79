package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ericfisherdev/nucampsite/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.Seeder = (*SeedRepo)(nil)

// SeedRepo loads the initial catalog into an empty database.
type SeedRepo struct {
	db *DB
}

// NewSeedRepo creates a new SeedRepo backed by the given DB.
func NewSeedRepo(db *DB) *SeedRepo {
	return &SeedRepo{db: db}
}

// Seed inserts all seed rows in a single transaction. A database that already
// holds campsites is left untouched and seeded is false.
func (r *SeedRepo) Seed(ctx context.Context, data driven.SeedData) (seeded bool, err error) {
	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM campsites`).Scan(&count); err != nil {
		return false, fmt.Errorf("count campsites: %w", err)
	}
	if count > 0 {
		return false, tx.Rollback()
	}

	if err := insertSeedRows(ctx, tx, data); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed transaction: %w", err)
	}

	return true, nil
}

func insertSeedRows(ctx context.Context, tx *sql.Tx, data driven.SeedData) error {
	for _, c := range data.Campsites {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO campsites (id, name, image, elevation, featured, description) VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.Image, c.Elevation, c.Featured, c.Description,
		)
		if err != nil {
			return fmt.Errorf("seed campsite %d: %w", c.ID, err)
		}
	}

	for _, c := range data.Comments {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO comments (id, campsite_id, rating, text, author, date) VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, c.CampsiteID, int(c.Rating), c.Text, c.Author, formatTime(c.Date),
		)
		if err != nil {
			return fmt.Errorf("seed comment %d: %w", c.ID, err)
		}
	}

	for _, p := range data.Partners {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO partners (id, name, image, featured, description) VALUES (?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Image, p.Featured, p.Description,
		)
		if err != nil {
			return fmt.Errorf("seed partner %d: %w", p.ID, err)
		}
	}

	for _, p := range data.Promotions {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO promotions (id, name, image, featured, cost, description) VALUES (?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Image, p.Featured, p.Cost, p.Description,
		)
		if err != nil {
			return fmt.Errorf("seed promotion %d: %w", p.ID, err)
		}
	}

	return nil
}
