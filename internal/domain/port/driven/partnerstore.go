package driven

import (
	"context"

	"github.com/ericfisherdev/nucampsite/internal/domain/model"
)

// PartnerStore defines the driven port for reading partners.
type PartnerStore interface {
	List(ctx context.Context) ([]model.Partner, error)
}

// PromotionStore defines the driven port for reading promotions.
type PromotionStore interface {
	List(ctx context.Context) ([]model.Promotion, error)
}
