// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// CampsiteInfoViewModel holds everything the campsite detail view renders.
// Exactly one branch is rendered, checked in order: IsLoading, ErrMess,
// Campsite, nothing.
type CampsiteInfoViewModel struct {
	IsLoading bool
	ErrMess   string
	Campsite  *CampsiteViewModel

	// Comments is nil when comments are absent; the list (and the form) is
	// then not rendered. An empty non-nil slice renders the heading and form.
	Comments []CommentViewModel
	Form     CommentFormViewModel

	Animations bool
}

// CampsiteViewModel holds presentation-ready data for a campsite card.
type CampsiteViewModel struct {
	ID              int64
	Name            string
	ImageURL        string
	Elevation       int
	DescriptionHTML string
	DetailPath      string
}

// CommentViewModel holds presentation-ready data for one comment entry.
type CommentViewModel struct {
	ID     int64
	Key    string // Stable element id, "comment-<id>".
	Rating int
	Text   string
	Author string
	Date   string // Already formatted, e.g. "Mar 05, 2021".
}

// CommentFormViewModel holds the comment modal state and the values to
// re-display after a rejected submission.
type CommentFormViewModel struct {
	Open         bool
	ActionURL    string // POST target
	OpenURL      string // link that opens the modal
	CloseURL     string // cancel / dismiss target
	CSRFToken    string
	Ratings      []int
	Rating       int
	Author       string
	Text         string
	AuthorErrors []string
}

// DirectoryViewModel lists campsites for the directory page.
type DirectoryViewModel struct {
	ErrMess    string
	Campsites  []CampsiteViewModel
	Animations bool
}

// CardViewModel is a generic featured item on the home page.
type CardViewModel struct {
	Title           string
	Name            string
	ImageURL        string
	DescriptionHTML string
	Link            string
}

// HomeViewModel holds the featured campsite, promotion and partner. Missing
// features are omitted from Cards.
type HomeViewModel struct {
	IsLoading  bool
	ErrMess    string
	Cards      []CardViewModel
	Animations bool
}

// PartnerViewModel holds presentation-ready data for one partner.
type PartnerViewModel struct {
	ID              int64
	Name            string
	ImageURL        string
	DescriptionHTML string
}

// AboutViewModel lists partners for the about page.
type AboutViewModel struct {
	ErrMess    string
	Partners   []PartnerViewModel
	Animations bool
}

// PageViewModel is the chrome around every page.
type PageViewModel struct {
	Title      string
	Lang       string
	ActivePath string
}
