package driven

import (
	"context"

	"github.com/ericfisherdev/nucampsite/internal/domain/model"
)

// SeedData is the full initial catalog loaded into an empty store.
type SeedData struct {
	Campsites  []model.Campsite
	Comments   []model.Comment
	Partners   []model.Partner
	Promotions []model.Promotion
}

// Seeder loads initial data. Implementations must leave a store that already
// holds campsites untouched and report seeded=false in that case.
type Seeder interface {
	Seed(ctx context.Context, data SeedData) (seeded bool, err error)
}
