package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ericfisherdev/nucampsite/internal/domain/model"
	"github.com/ericfisherdev/nucampsite/internal/domain/port/driven"
)

// Compile-time interface satisfaction checks.
var (
	_ driven.CampsiteStore  = (*Store)(nil)
	_ driven.CommentStore   = (*Store)(nil)
	_ driven.Seeder         = (*Store)(nil)
	_ driven.PartnerStore   = PartnerView{}
	_ driven.PromotionStore = PromotionView{}
)

// ErrCollectionFailed wraps the ErrMess recorded by a *_FAILED action.
var ErrCollectionFailed = errors.New("collection failed to load")

// ErrCollectionLoading is returned by reads while campsites are still loading.
var ErrCollectionLoading = errors.New("collection is loading")

// Store holds the catalog state. Reads take a snapshot under a read lock;
// writes go through Dispatch.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore creates a Store in InitialState.
func NewStore() *Store {
	return &Store{state: InitialState()}
}

// Dispatch applies an action and returns the resulting state.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, action)
	return s.state
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// List returns every campsite.
func (s *Store) List(_ context.Context) ([]model.Campsite, error) {
	c := s.State().Campsites
	if err := collectionErr("campsites", c.IsLoading, c.ErrMess); err != nil {
		return nil, err
	}
	out := make([]model.Campsite, len(c.Items))
	copy(out, c.Items)
	return out, nil
}

// Get returns the campsite with the given ID, or nil if none exists.
func (s *Store) Get(_ context.Context, id int64) (*model.Campsite, error) {
	c := s.State().Campsites
	if err := collectionErr("campsites", c.IsLoading, c.ErrMess); err != nil {
		return nil, err
	}
	for _, campsite := range c.Items {
		if campsite.ID == id {
			found := campsite
			return &found, nil
		}
	}
	return nil, nil
}

// ListByCampsite returns the campsite's comments in insertion order.
func (s *Store) ListByCampsite(_ context.Context, campsiteID int64) ([]model.Comment, error) {
	c := s.State().Comments
	if err := collectionErr("comments", c.IsLoading, c.ErrMess); err != nil {
		return nil, err
	}
	out := []model.Comment{}
	for _, comment := range c.Items {
		if comment.CampsiteID == campsiteID {
			out = append(out, comment)
		}
	}
	return out, nil
}

// Add assigns the next comment ID and dispatches AddComment. The existence
// check and the dispatch happen under one lock so IDs are never reused.
func (s *Store) Add(_ context.Context, comment model.Comment) (model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	known := false
	for _, c := range s.state.Campsites.Items {
		if c.ID == comment.CampsiteID {
			known = true
			break
		}
	}
	if !known {
		return model.Comment{}, fmt.Errorf("add comment to campsite %d: %w", comment.CampsiteID, driven.ErrCampsiteNotFound)
	}

	var nextID int64
	for _, c := range s.state.Comments.Items {
		if c.ID >= nextID {
			nextID = c.ID + 1
		}
	}
	comment.ID = nextID
	comment.Date = comment.Date.UTC()

	s.state = Reduce(s.state, Action{Type: AddComment, Comment: comment})
	return comment, nil
}

// Seed dispatches the add actions for each collection. A store that already
// holds campsites is left untouched.
func (s *Store) Seed(_ context.Context, data driven.SeedData) (bool, error) {
	if len(s.State().Campsites.Items) > 0 {
		return false, nil
	}

	s.Dispatch(Action{Type: AddCampsites, Campsites: data.Campsites})
	s.Dispatch(Action{Type: AddComments, Comments: data.Comments})
	s.Dispatch(Action{Type: AddPartners, Partners: data.Partners})
	s.Dispatch(Action{Type: AddPromotions, Promotions: data.Promotions})
	return true, nil
}

// Partners returns a PartnerStore view over the store.
func (s *Store) Partners() PartnerView { return PartnerView{store: s} }

// Promotions returns a PromotionStore view over the store.
func (s *Store) Promotions() PromotionView { return PromotionView{store: s} }

// PartnerView adapts Store to PartnerStore; Store's own List serves campsites.
type PartnerView struct{ store *Store }

// List returns every partner.
func (v PartnerView) List(_ context.Context) ([]model.Partner, error) {
	c := v.store.State().Partners
	if err := collectionErr("partners", c.IsLoading, c.ErrMess); err != nil {
		return nil, err
	}
	out := make([]model.Partner, len(c.Items))
	copy(out, c.Items)
	return out, nil
}

// PromotionView adapts Store to PromotionStore.
type PromotionView struct{ store *Store }

// List returns every promotion.
func (v PromotionView) List(_ context.Context) ([]model.Promotion, error) {
	c := v.store.State().Promotions
	if err := collectionErr("promotions", c.IsLoading, c.ErrMess); err != nil {
		return nil, err
	}
	out := make([]model.Promotion, len(c.Items))
	copy(out, c.Items)
	return out, nil
}

func collectionErr(name string, loading bool, errMess string) error {
	if errMess != "" {
		return fmt.Errorf("%s: %w: %s", name, ErrCollectionFailed, errMess)
	}
	if loading {
		return fmt.Errorf("%s: %w", name, ErrCollectionLoading)
	}
	return nil
}
