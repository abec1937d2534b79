// Package memory implements the data provider ports on an in-process state
// tree updated by an action-keyed reducer.
package memory

import (
	"slices"

	"github.com/ericfisherdev/nucampsite/internal/domain/model"
)

// ActionType identifies a state transition.
type ActionType string

const (
	CampsitesLoading ActionType = "CAMPSITES_LOADING"
	CampsitesFailed  ActionType = "CAMPSITES_FAILED"
	AddCampsites     ActionType = "ADD_CAMPSITES"

	CommentsFailed ActionType = "COMMENTS_FAILED"
	AddComments    ActionType = "ADD_COMMENTS"
	AddComment     ActionType = "ADD_COMMENT"

	PartnersFailed   ActionType = "PARTNERS_FAILED"
	AddPartners      ActionType = "ADD_PARTNERS"
	PromotionsFailed ActionType = "PROMOTIONS_FAILED"
	AddPromotions    ActionType = "ADD_PROMOTIONS"
)

// Action is a state transition request. Only the payload field matching Type
// is read.
type Action struct {
	Type       ActionType
	ErrMess    string
	Campsites  []model.Campsite
	Comments   []model.Comment
	Comment    model.Comment
	Partners   []model.Partner
	Promotions []model.Promotion
}

// Collection is one slice of the state tree with its load status.
type Collection[T any] struct {
	IsLoading bool
	ErrMess   string
	Items     []T
}

// State is the whole catalog held by the store.
type State struct {
	Campsites  Collection[model.Campsite]
	Comments   Collection[model.Comment]
	Partners   Collection[model.Partner]
	Promotions Collection[model.Promotion]
}

// InitialState is the state before any data has arrived: campsites are
// loading and every collection is empty.
func InitialState() State {
	return State{
		Campsites:  Collection[model.Campsite]{IsLoading: true, Items: []model.Campsite{}},
		Comments:   Collection[model.Comment]{Items: []model.Comment{}},
		Partners:   Collection[model.Partner]{Items: []model.Partner{}},
		Promotions: Collection[model.Promotion]{Items: []model.Promotion{}},
	}
}

// Reduce returns the state that results from applying action to state. It
// never modifies its inputs; unknown action types return state unchanged.
func Reduce(state State, action Action) State {
	switch action.Type {
	case CampsitesLoading:
		state.Campsites = Collection[model.Campsite]{IsLoading: true, Items: []model.Campsite{}}
	case CampsitesFailed:
		state.Campsites = Collection[model.Campsite]{ErrMess: action.ErrMess, Items: []model.Campsite{}}
	case AddCampsites:
		state.Campsites = Collection[model.Campsite]{Items: slices.Clone(action.Campsites)}

	case CommentsFailed:
		state.Comments = Collection[model.Comment]{ErrMess: action.ErrMess, Items: []model.Comment{}}
	case AddComments:
		state.Comments = Collection[model.Comment]{Items: slices.Clone(action.Comments)}
	case AddComment:
		items := make([]model.Comment, 0, len(state.Comments.Items)+1)
		items = append(items, state.Comments.Items...)
		items = append(items, action.Comment)
		state.Comments = Collection[model.Comment]{Items: items}

	case PartnersFailed:
		state.Partners = Collection[model.Partner]{ErrMess: action.ErrMess, Items: []model.Partner{}}
	case AddPartners:
		state.Partners = Collection[model.Partner]{Items: slices.Clone(action.Partners)}

	case PromotionsFailed:
		state.Promotions = Collection[model.Promotion]{ErrMess: action.ErrMess, Items: []model.Promotion{}}
	case AddPromotions:
		state.Promotions = Collection[model.Promotion]{Items: slices.Clone(action.Promotions)}
	}

	return state
}
