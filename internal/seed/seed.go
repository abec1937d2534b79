// Package seed provides the initial campsite catalog embedded in the binary.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ericfisherdev/nucampsite/internal/domain/model"
	"github.com/ericfisherdev/nucampsite/internal/domain/port/driven"
)

//go:embed data.yaml
var embeddedData []byte

type campsiteRecord struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Image       string `yaml:"image"`
	Elevation   int    `yaml:"elevation"`
	Featured    bool   `yaml:"featured"`
	Description string `yaml:"description"`
}

type commentRecord struct {
	ID         int64  `yaml:"id"`
	CampsiteID int64  `yaml:"campsiteId"`
	Rating     int    `yaml:"rating"`
	Text       string `yaml:"text"`
	Author     string `yaml:"author"`
	Date       string `yaml:"date"`
}

type partnerRecord struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Image       string `yaml:"image"`
	Featured    bool   `yaml:"featured"`
	Description string `yaml:"description"`
}

type promotionRecord struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Image       string `yaml:"image"`
	Featured    bool   `yaml:"featured"`
	Cost        int    `yaml:"cost"`
	Description string `yaml:"description"`
}

type document struct {
	Campsites  []campsiteRecord  `yaml:"campsites"`
	Comments   []commentRecord   `yaml:"comments"`
	Partners   []partnerRecord   `yaml:"partners"`
	Promotions []promotionRecord `yaml:"promotions"`
}

// Load parses the embedded catalog.
func Load() (driven.SeedData, error) {
	return Parse(embeddedData)
}

// Parse decodes a YAML catalog document into seed data.
func Parse(raw []byte) (driven.SeedData, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return driven.SeedData{}, fmt.Errorf("decode seed data: %w", err)
	}

	data := driven.SeedData{
		Campsites:  make([]model.Campsite, 0, len(doc.Campsites)),
		Comments:   make([]model.Comment, 0, len(doc.Comments)),
		Partners:   make([]model.Partner, 0, len(doc.Partners)),
		Promotions: make([]model.Promotion, 0, len(doc.Promotions)),
	}

	for _, c := range doc.Campsites {
		data.Campsites = append(data.Campsites, model.Campsite{
			ID:          c.ID,
			Name:        c.Name,
			Image:       c.Image,
			Elevation:   c.Elevation,
			Featured:    c.Featured,
			Description: c.Description,
		})
	}

	for _, c := range doc.Comments {
		rating := model.Rating(c.Rating)
		if !rating.Valid() {
			return driven.SeedData{}, fmt.Errorf("comment %d: %w", c.ID, model.ErrInvalidRating)
		}
		date, err := model.ParseTimestamp(c.Date)
		if err != nil {
			return driven.SeedData{}, fmt.Errorf("comment %d date: %w", c.ID, err)
		}
		data.Comments = append(data.Comments, model.Comment{
			ID:         c.ID,
			CampsiteID: c.CampsiteID,
			Rating:     rating,
			Text:       c.Text,
			Author:     c.Author,
			Date:       date,
		})
	}

	for _, p := range doc.Partners {
		data.Partners = append(data.Partners, model.Partner{
			ID:          p.ID,
			Name:        p.Name,
			Image:       p.Image,
			Featured:    p.Featured,
			Description: p.Description,
		})
	}

	for _, p := range doc.Promotions {
		data.Promotions = append(data.Promotions, model.Promotion{
			ID:          p.ID,
			Name:        p.Name,
			Image:       p.Image,
			Featured:    p.Featured,
			Cost:        p.Cost,
			Description: p.Description,
		})
	}

	return data, nil
}
