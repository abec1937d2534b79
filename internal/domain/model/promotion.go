package model

// Promotion is a time-limited offer shown on the home page.
type Promotion struct {
	ID          int64
	Name        string
	Image       string
	Featured    bool
	Cost        int
	Description string
}
