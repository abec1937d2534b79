package sqlite

import (
	"context"
	"fmt"

	"github.com/ericfisherdev/nucampsite/internal/domain/model"
	"github.com/ericfisherdev/nucampsite/internal/domain/port/driven"
)

// Compile-time interface satisfaction checks.
var (
	_ driven.PartnerStore   = (*PartnerRepo)(nil)
	_ driven.PromotionStore = (*PromotionRepo)(nil)
)

// PartnerRepo is the SQLite implementation of the PartnerStore port interface.
type PartnerRepo struct {
	db *DB
}

// NewPartnerRepo creates a new PartnerRepo backed by the given DB.
func NewPartnerRepo(db *DB) *PartnerRepo {
	return &PartnerRepo{db: db}
}

// List returns all partners ordered by ID.
func (r *PartnerRepo) List(ctx context.Context) ([]model.Partner, error) {
	const query = `SELECT id, name, image, featured, description FROM partners ORDER BY id`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()

	partners := []model.Partner{}
	for rows.Next() {
		var p model.Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.Image, &p.Featured, &p.Description); err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		partners = append(partners, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate partners: %w", err)
	}

	return partners, nil
}

// PromotionRepo is the SQLite implementation of the PromotionStore port interface.
type PromotionRepo struct {
	db *DB
}

// NewPromotionRepo creates a new PromotionRepo backed by the given DB.
func NewPromotionRepo(db *DB) *PromotionRepo {
	return &PromotionRepo{db: db}
}

// List returns all promotions ordered by ID.
func (r *PromotionRepo) List(ctx context.Context) ([]model.Promotion, error) {
	const query = `SELECT id, name, image, featured, cost, description FROM promotions ORDER BY id`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	defer rows.Close()

	promotions := []model.Promotion{}
	for rows.Next() {
		var p model.Promotion
		if err := rows.Scan(&p.ID, &p.Name, &p.Image, &p.Featured, &p.Cost, &p.Description); err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		promotions = append(promotions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate promotions: %w", err)
	}

	return promotions, nil
}
