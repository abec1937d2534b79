package model

// Campsite represents a campground listed in the directory. Campsites are
// owned by the data provider; views only read them.
type Campsite struct {
	ID          int64
	Name        string
	Image       string // Relative reference, prefixed with the configured base URL when rendered.
	Elevation   int
	Featured    bool
	Description string
}
