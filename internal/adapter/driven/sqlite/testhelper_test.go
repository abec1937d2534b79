package sqlite

import (
	"context"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/ericfisherdev/nucampsite/internal/domain/model"
	"github.com/ericfisherdev/nucampsite/internal/domain/port/driven"
)

// setupTestDB creates a named shared in-memory SQLite database for testing.
// Writer and reader connections share the same in-memory database via cache=shared.
// A unique name derived from t.Name() isolates parallel tests.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Percent-encode the test name so it cannot be read as DSN query parameters.
	safeName := url.PathEscape(t.Name())
	// WAL mode is not applicable to in-memory databases; omit journal_mode pragma.
	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)&_pragma=cache_size(-64000)",
		safeName,
	)

	db, err := open(context.Background(), dsn, dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := RunMigrations(db.Writer); err != nil {
		_ = db.Close()
		t.Fatalf("run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })

	return db
}

// testSeed is a small catalog shared by repository tests.
func testSeed() driven.SeedData {
	return driven.SeedData{
		Campsites: []model.Campsite{
			{ID: 0, Name: "React Lake Campground", Image: "images/react-lake.jpg", Elevation: 1233, Description: "Lakeside."},
			{ID: 1, Name: "Chrome River Campground", Image: "images/chrome-river.jpg", Elevation: 877, Featured: true, Description: "Riverside."},
		},
		Comments: []model.Comment{
			{ID: 0, CampsiteID: 0, Rating: 5, Text: "What a view!", Author: "Tinus", Date: time.Date(2018, 10, 25, 16, 30, 0, 0, time.UTC)},
			{ID: 1, CampsiteID: 0, Rating: 4, Text: "Heritage site.", Author: "Jonas", Date: time.Date(2013, 6, 3, 6, 15, 0, 0, time.UTC)},
		},
		Partners: []model.Partner{
			{ID: 0, Name: "Bootstrap Outfitters", Image: "images/bootstrap-logo.png"},
			{ID: 1, Name: "Node Outdoor Apparel", Image: "images/node-logo.png", Featured: true},
		},
		Promotions: []model.Promotion{
			{ID: 0, Name: "Mountain Adventure", Image: "images/breadcrumb-trail.jpg", Featured: true, Cost: 1299},
		},
	}
}

// seedTestDB loads testSeed into db.
func seedTestDB(t *testing.T, db *DB) {
	t.Helper()

	seeded, err := NewSeedRepo(db).Seed(context.Background(), testSeed())
	if err != nil {
		t.Fatalf("seed test db: %v", err)
	}
	if !seeded {
		t.Fatalf("seed test db: expected empty database")
	}
}
