package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ericfisherdev/nucampsite/internal/domain/model"
	"github.com/ericfisherdev/nucampsite/internal/domain/port/driven"
)

// User-facing messages placed in DetailProps.ErrMess. Store errors are logged,
// never shown.
const (
	ErrMessCampsite = "Unable to load campsite details. Please try again later."
	ErrMessComments = "Unable to load comments. Please try again later."
)

// DetailProps is everything the campsite detail view consumes.
// A nil Comments slice means comments are absent and the list is not rendered.
type DetailProps struct {
	IsLoading bool
	ErrMess   string
	Campsite  *model.Campsite
	Comments  []model.Comment
}

// Highlights holds the featured items shown on the home page. Any of them may
// be nil when nothing is featured.
type Highlights struct {
	Campsite  *model.Campsite
	Promotion *model.Promotion
	Partner   *model.Partner
}

// DirectoryService is the read side of the data provider. It depends only on
// port interfaces.
type DirectoryService struct {
	campsiteStore  driven.CampsiteStore
	commentStore   driven.CommentStore
	partnerStore   driven.PartnerStore
	promotionStore driven.PromotionStore
	readiness      *Readiness
	logger         *slog.Logger
}

// NewDirectoryService creates a DirectoryService with the required dependencies.
func NewDirectoryService(
	campsiteStore driven.CampsiteStore,
	commentStore driven.CommentStore,
	partnerStore driven.PartnerStore,
	promotionStore driven.PromotionStore,
	readiness *Readiness,
	logger *slog.Logger,
) *DirectoryService {
	return &DirectoryService{
		campsiteStore:  campsiteStore,
		commentStore:   commentStore,
		partnerStore:   partnerStore,
		promotionStore: promotionStore,
		readiness:      readiness,
		logger:         logger,
	}
}

// IsLoading reports whether the initial catalog load is still running.
func (s *DirectoryService) IsLoading() bool {
	return s.readiness.IsLoading()
}

// Detail assembles the detail view props for one campsite. It never returns
// an error: failures become ErrMess and a missing campsite leaves Campsite nil.
func (s *DirectoryService) Detail(ctx context.Context, campsiteID int64) DetailProps {
	if s.readiness.IsLoading() {
		return DetailProps{IsLoading: true}
	}

	campsite, err := s.campsiteStore.Get(ctx, campsiteID)
	if err != nil {
		s.logger.Error("failed to load campsite", "campsite_id", campsiteID, "error", err)
		return DetailProps{ErrMess: ErrMessCampsite}
	}
	if campsite == nil {
		return DetailProps{}
	}

	comments, err := s.commentStore.ListByCampsite(ctx, campsiteID)
	if err != nil {
		s.logger.Error("failed to load comments", "campsite_id", campsiteID, "error", err)
		return DetailProps{ErrMess: ErrMessComments, Campsite: campsite}
	}
	if comments == nil {
		comments = []model.Comment{}
	}

	return DetailProps{Campsite: campsite, Comments: comments}
}

// Directory lists every campsite.
func (s *DirectoryService) Directory(ctx context.Context) ([]model.Campsite, error) {
	campsites, err := s.campsiteStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campsites: %w", err)
	}
	return campsites, nil
}

// Campsite returns one campsite, or nil if it does not exist.
func (s *DirectoryService) Campsite(ctx context.Context, id int64) (*model.Campsite, error) {
	campsite, err := s.campsiteStore.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campsite %d: %w", id, err)
	}
	return campsite, nil
}

// Partners lists every partner.
func (s *DirectoryService) Partners(ctx context.Context) ([]model.Partner, error) {
	partners, err := s.partnerStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	return partners, nil
}

// Promotions lists every promotion.
func (s *DirectoryService) Promotions(ctx context.Context) ([]model.Promotion, error) {
	promotions, err := s.promotionStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	return promotions, nil
}

// Highlights picks the first featured campsite, promotion and partner.
func (s *DirectoryService) Highlights(ctx context.Context) (*Highlights, error) {
	campsites, err := s.Directory(ctx)
	if err != nil {
		return nil, err
	}
	promotions, err := s.Promotions(ctx)
	if err != nil {
		return nil, err
	}
	partners, err := s.Partners(ctx)
	if err != nil {
		return nil, err
	}

	h := &Highlights{}
	for i := range campsites {
		if campsites[i].Featured {
			h.Campsite = &campsites[i]
			break
		}
	}
	for i := range promotions {
		if promotions[i].Featured {
			h.Promotion = &promotions[i]
			break
		}
	}
	for i := range partners {
		if partners[i].Featured {
			h.Partner = &partners[i]
			break
		}
	}

	return h, nil
}
