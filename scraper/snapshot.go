package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"kai-ticket-watcher/config"
	"kai-ticket-watcher/models"
	"kai-ticket-watcher/services"
	"kai-ticket-watcher/utils"
)

// snapshotEntry mirrors one captured search in a snapshot file
type snapshotEntry struct {
	Origin      string        `json:"origin" yaml:"origin"`
	Destination string        `json:"destination" yaml:"destination"`
	RouteLabel  string        `json:"route_label" yaml:"route_label"` // e.g. "PASAR SENEN -> LEMPUYANGAN", as the site header shows it
	DateLabel   string        `json:"date_label" yaml:"date_label"`
	Rows        []snapshotRow `json:"rows" yaml:"rows"`
}

type snapshotRow struct {
	Name         string `json:"name" yaml:"name"`
	Class        string `json:"class" yaml:"class"`
	TimeRange    string `json:"time_range" yaml:"time_range"`
	Duration     string `json:"duration" yaml:"duration"`
	Price        string `json:"price" yaml:"price"`
	Availability string `json:"availability" yaml:"availability"`
}

// SnapshotSource reads captured search results from a JSON or YAML file. It
// stands in for the browser-driven scraper, which lives outside this module.
type SnapshotSource struct {
	path   string
	logger *utils.Logger
}

// NewSnapshotSource creates a source backed by the given snapshot file
func NewSnapshotSource(path string, logger *utils.Logger) *SnapshotSource {
	return &SnapshotSource{path: path, logger: logger}
}

// Fetch returns the captured rows for the route. Origin and destination are
// matched case-insensitively; a route without a snapshot entry yields no rows
// and no error.
func (s *SnapshotSource) Fetch(_ context.Context, route config.RoutePreference) (models.SearchSummary, []models.RawTrainRow, error) {
	entries, err := s.load()
	if err != nil {
		return FallbackSummary(route), nil, err
	}

	for _, entry := range entries {
		if !strings.EqualFold(strings.TrimSpace(entry.Origin), route.Origin) ||
			!strings.EqualFold(strings.TrimSpace(entry.Destination), route.Destination) {
			continue
		}

		summary := models.SearchSummary{
			OriginLabel:      entry.Origin,
			DestinationLabel: entry.Destination,
			DateLabel:        entry.DateLabel,
		}
		if entry.RouteLabel != "" {
			if origin, destination := services.SplitRouteText(entry.RouteLabel); origin != nil {
				summary.OriginLabel = *origin
				if destination != nil {
					summary.DestinationLabel = *destination
				}
			}
		}
		if summary.DateLabel == "" {
			summary.DateLabel = route.DepartureDate.Format("02 Jan 2006")
		}

		rows := make([]models.RawTrainRow, 0, len(entry.Rows))
		for _, row := range entry.Rows {
			rows = append(rows, models.RawTrainRow{
				NameText:         row.Name,
				ClassText:        row.Class,
				TimeRangeText:    row.TimeRange,
				DurationText:     row.Duration,
				PriceText:        row.Price,
				AvailabilityText: row.Availability,
			})
		}
		return summary, rows, nil
	}

	s.logger.Debug("Snapshot has no entry for %s -> %s", route.Origin, route.Destination)
	return FallbackSummary(route), nil, nil
}

func (s *SnapshotSource) load() ([]snapshotEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var entries []snapshotEntry
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parsing snapshot: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parsing snapshot: %w", err)
		}
	}
	return entries, nil
}
