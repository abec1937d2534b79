package driven

import (
	"context"

	"github.com/ericfisherdev/nucampsite/internal/domain/model"
)

// CampsiteStore defines the driven port for reading campsites.
// Get returns (nil, nil) when no campsite has the given ID.
type CampsiteStore interface {
	List(ctx context.Context) ([]model.Campsite, error)
	Get(ctx context.Context, id int64) (*model.Campsite, error)
}
