package model

// Partner is an organization featured on the about and home pages.
type Partner struct {
	ID          int64
	Name        string
	Image       string
	Featured    bool
	Description string
}
