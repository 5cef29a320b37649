package scraper

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"kai-ticket-watcher/config"
	"kai-ticket-watcher/utils"
)

func testRoute() config.RoutePreference {
	return config.RoutePreference{
		Origin:        "PSE",
		Destination:   "LPN",
		DepartureDate: time.Date(2025, time.December, 24, 0, 0, 0, 0, time.UTC),
	}
}

func writeFixture(t *testing.T, name, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestSnapshotSource_FetchJSON(t *testing.T) {
	path := writeFixture(t, "snapshot.json", `[
		{
			"origin": "pse",
			"destination": "lpn",
			"date_label": "24 Dec 2025",
			"rows": [
				{"name": "Taksaka", "class": "Eksekutif - AA", "time_range": "08:00-12:30 (4j 30m)", "price": "Rp 350.000", "availability": "Tersedia 12 kursi"},
				{"name": "Bengawan", "class": "Ekonomi", "time_range": "11:00-19:10", "price": "Rp 74.000", "availability": "Habis"}
			]
		}
	]`)

	source := NewSnapshotSource(path, utils.NewLogger(false))
	summary, rows, err := source.Fetch(context.Background(), testRoute())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].NameText != "Taksaka" || rows[0].AvailabilityText != "Tersedia 12 kursi" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if summary.DateLabel != "24 Dec 2025" {
		t.Errorf("expected the snapshot date label, got %q", summary.DateLabel)
	}
}

func TestSnapshotSource_FetchYAML(t *testing.T) {
	path := writeFixture(t, "snapshot.yml", `
- origin: PSE
  destination: LPN
  rows:
    - name: Taksaka
      class: Eksekutif
      time_range: "08:00-12:30"
      price: "Rp 350.000"
      availability: Tersedia
`)

	source := NewSnapshotSource(path, utils.NewLogger(false))
	summary, rows, err := source.Fetch(context.Background(), testRoute())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	// No date label in the file: fall back to the route's date
	if summary.DateLabel != "24 Dec 2025" {
		t.Errorf("expected fallback date label, got %q", summary.DateLabel)
	}
}

func TestSnapshotSource_RouteLabelOverridesStationLabels(t *testing.T) {
	path := writeFixture(t, "snapshot.json", `[
		{"origin": "PSE", "destination": "LPN", "route_label": "PASAR SENEN -> LEMPUYANGAN", "rows": []}
	]`)

	source := NewSnapshotSource(path, utils.NewLogger(false))
	summary, _, err := source.Fetch(context.Background(), testRoute())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if summary.OriginLabel != "PASAR SENEN" || summary.DestinationLabel != "LEMPUYANGAN" {
		t.Errorf("expected labels from route_label, got %+v", summary)
	}
}

func TestSnapshotSource_UnmatchedRoute(t *testing.T) {
	path := writeFixture(t, "snapshot.json", `[{"origin": "GMR", "destination": "BD", "rows": []}]`)

	source := NewSnapshotSource(path, utils.NewLogger(false))
	summary, rows, err := source.Fetch(context.Background(), testRoute())
	if err != nil {
		t.Fatalf("an unmatched route is not an error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
	if summary.OriginLabel != "PSE" || summary.DestinationLabel != "LPN" {
		t.Errorf("expected fallback summary labels, got %+v", summary)
	}
}

func TestSnapshotSource_MissingFile(t *testing.T) {
	source := NewSnapshotSource(filepath.Join(t.TempDir(), "nope.json"), utils.NewLogger(false))
	if _, _, err := source.Fetch(context.Background(), testRoute()); err == nil {
		t.Error("a missing snapshot file should return an error")
	}
}
